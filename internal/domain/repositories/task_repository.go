package repositories

import (
	"context"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
)

// TaskUpdate contém os campos atualizáveis de uma tarefa.
// Campos nil são ignorados (update parcial).
type TaskUpdate struct {
	Titulo     *string
	Descricao  *string
	Status     *entities.TaskStatus
	Priority   *entities.Priority
	DueDate    *string
	AssignedTo *string
}

// TaskRepository define a interface para persistência de tarefas
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	FindByID(ctx context.Context, id string) (*entities.Task, error)
	Update(ctx context.Context, id string, update TaskUpdate) (*entities.Task, error)
	List(ctx context.Context) ([]*entities.Task, error)
	Delete(ctx context.Context, id string) error
	DeleteByStatus(ctx context.Context, status entities.TaskStatus) error
}
