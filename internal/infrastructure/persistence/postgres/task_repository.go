package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/repositories"
)

// TaskRepository implementa repositories.TaskRepository
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository cria um novo TaskRepository
func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) error {
	model := toTaskModel(task)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateError("tasks.create", err)
	}

	task.ID = model.ID
	task.CreatedAt = time.Unix(model.CreatedAt, 0)
	task.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*entities.Task, error) {
	var model TaskModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError("tasks.find_by_id", err)
	}

	return toTaskEntity(&model), nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, update repositories.TaskUpdate) (*entities.Task, error) {
	values := map[string]interface{}{}

	if update.Titulo != nil {
		values["titulo"] = *update.Titulo
	}
	if update.Descricao != nil {
		values["descricao"] = *update.Descricao
	}
	if update.Status != nil {
		values["status"] = string(*update.Status)
	}
	if update.Priority != nil {
		values["priority"] = string(*update.Priority)
	}
	if update.DueDate != nil {
		values["due_date"] = *update.DueDate
	}
	if update.AssignedTo != nil {
		values["assigned_to"] = *update.AssignedTo
	}

	db := dbFromContext(ctx, r.db)
	if len(values) > 0 {
		result := db.Model(&TaskModel{}).Where("id = ?", id).Updates(values)
		if result.Error != nil {
			return nil, translateError("tasks.update", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, nil
		}
	}

	return r.FindByID(ctx, id)
}

func (r *TaskRepository) List(ctx context.Context) ([]*entities.Task, error) {
	var models []*TaskModel

	db := dbFromContext(ctx, r.db)
	if err := db.Model(&TaskModel{}).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, translateError("tasks.list", err)
	}

	tasks := make([]*entities.Task, 0, len(models))
	for _, model := range models {
		tasks = append(tasks, toTaskEntity(model))
	}
	return tasks, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).Delete(&TaskModel{}).Error; err != nil {
		return translateError("tasks.delete", err)
	}
	return nil
}

// DeleteByStatus remove permanentemente todas as tarefas no status
// informado. Usado pelo esvaziamento da lixeira; é idempotente.
func (r *TaskRepository) DeleteByStatus(ctx context.Context, status entities.TaskStatus) error {
	db := dbFromContext(ctx, r.db)
	if err := db.Where("status = ?", string(status)).Delete(&TaskModel{}).Error; err != nil {
		return translateError("tasks.delete_by_status", err)
	}
	return nil
}

// Conversores
func toTaskModel(task *entities.Task) *TaskModel {
	return &TaskModel{
		ID:         task.ID,
		Titulo:     task.Titulo,
		Descricao:  task.Descricao,
		Status:     string(task.Status),
		Priority:   string(task.Priority),
		DueDate:    task.DueDate,
		AssignedTo: task.AssignedTo,
		CreatedBy:  task.CreatedBy,
	}
}

func toTaskEntity(model *TaskModel) *entities.Task {
	return &entities.Task{
		ID:         model.ID,
		Titulo:     model.Titulo,
		Descricao:  model.Descricao,
		Status:     entities.TaskStatus(model.Status),
		Priority:   entities.Priority(model.Priority),
		DueDate:    model.DueDate,
		AssignedTo: model.AssignedTo,
		CreatedBy:  model.CreatedBy,
		CreatedAt:  time.Unix(model.CreatedAt, 0),
		UpdatedAt:  time.Unix(model.UpdatedAt, 0),
	}
}
