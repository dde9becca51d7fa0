package entities

import (
	"errors"
	"time"
)

// Notification representa um aviso ao usuário, criado como efeito
// colateral da atribuição de uma tarefa a outra pessoa.
type Notification struct {
	ID        string
	UserID    string
	TaskID    string
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time

	TaskTitulo string
	TaskStatus TaskStatus
}

// Validate valida regras de negócio da entidade Notification
func (n *Notification) Validate() error {
	if n.UserID == "" {
		return errors.New("user_id is required")
	}
	if n.TaskID == "" {
		return errors.New("task_id is required")
	}
	if n.Title == "" {
		return errors.New("title is required")
	}
	return nil
}
