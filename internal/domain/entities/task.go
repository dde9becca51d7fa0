package entities

import (
	"errors"
	"time"
)

// TaskStatus representa o estágio de uma tarefa
type TaskStatus string

const (
	TaskStatusNova        TaskStatus = "nova"
	TaskStatusEmAndamento TaskStatus = "em_andamento"
	TaskStatusConcluida   TaskStatus = "concluida"
	TaskStatusArquivada   TaskStatus = "arquivada"
	TaskStatusLixeira     TaskStatus = "lixeira"
)

// IsValid verifica se o status é um dos cinco valores aceitos
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusNova, TaskStatusEmAndamento, TaskStatusConcluida,
		TaskStatusArquivada, TaskStatusLixeira:
		return true
	}
	return false
}

// Task representa uma tarefa atribuível a um usuário.
// Exclusão é soft: a tarefa vai para a lixeira e só some do banco
// com a exclusão permanente ou o esvaziamento da lixeira.
type Task struct {
	ID         string
	Titulo     string
	Descricao  string
	Status     TaskStatus
	Priority   Priority
	DueDate    string
	AssignedTo *string
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	AssignedUser  *UserRef
	CreatedByUser *UserRef
}

// ApplyDefaults preenche os valores iniciais de uma tarefa recém-criada.
// Sem responsável explícito, a tarefa fica com quem a criou.
func (t *Task) ApplyDefaults() {
	if t.Status == "" {
		t.Status = TaskStatusNova
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.AssignedTo == nil || *t.AssignedTo == "" {
		creator := t.CreatedBy
		t.AssignedTo = &creator
	}
}

// Validate valida regras de negócio da entidade Task
func (t *Task) Validate() error {
	if t.Titulo == "" {
		return errors.New("titulo is required")
	}
	if t.DueDate == "" {
		return errors.New("due_date is required")
	}
	if !t.Status.IsValid() {
		return errors.New("invalid status")
	}
	if !t.Priority.IsValid() {
		return errors.New("invalid priority")
	}
	return nil
}

// IsAssignedToOther indica se a tarefa foi atribuída a alguém que não o criador
func (t *Task) IsAssignedToOther() bool {
	return t.AssignedTo != nil && *t.AssignedTo != t.CreatedBy
}
