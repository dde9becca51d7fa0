package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/repositories"
)

// NotificationRepository implementa repositories.NotificationRepository
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository cria um novo NotificationRepository
func NewNotificationRepository(db *gorm.DB) repositories.NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	model := &NotificationModel{
		ID:      notification.ID,
		UserID:  notification.UserID,
		TaskID:  notification.TaskID,
		Title:   notification.Title,
		Message: notification.Message,
		Read:    false,
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateError("notifications.create", err)
	}

	notification.ID = model.ID
	notification.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id string) (*entities.Notification, error) {
	var model NotificationModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError("notifications.find_by_id", err)
	}

	return toNotificationEntity(&model), nil
}

// ListByUser retorna as notificações do usuário, mais recentes primeiro,
// com título e status da tarefa associada resolvidos em lote
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, filters repositories.NotificationFilters) ([]*entities.Notification, error) {
	var models []*NotificationModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&NotificationModel{}).Where("user_id = ?", userID).Order("created_at DESC")
	if filters.OnlyUnread {
		query = query.Where("read = ?", false)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, translateError("notifications.list_by_user", err)
	}

	taskIDs := make([]string, 0, len(models))
	for _, model := range models {
		taskIDs = append(taskIDs, model.TaskID)
	}

	tasksByID := map[string]*TaskModel{}
	if len(taskIDs) > 0 {
		var tasks []*TaskModel
		if err := db.Where("id IN ?", taskIDs).Find(&tasks).Error; err != nil {
			return nil, translateError("notifications.load_tasks", err)
		}
		for _, task := range tasks {
			tasksByID[task.ID] = task
		}
	}

	notifications := make([]*entities.Notification, 0, len(models))
	for _, model := range models {
		notification := toNotificationEntity(model)
		if task, ok := tasksByID[model.TaskID]; ok {
			notification.TaskTitulo = task.Titulo
			notification.TaskStatus = entities.TaskStatus(task.Status)
		}
		notifications = append(notifications, notification)
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	if err := db.Model(&NotificationModel{}).Where("id = ?", id).Update("read", true).Error; err != nil {
		return translateError("notifications.mark_read", err)
	}
	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).Delete(&NotificationModel{}).Error; err != nil {
		return translateError("notifications.delete", err)
	}
	return nil
}

// Conversores
func toNotificationEntity(model *NotificationModel) *entities.Notification {
	return &entities.Notification{
		ID:        model.ID,
		UserID:    model.UserID,
		TaskID:    model.TaskID,
		Title:     model.Title,
		Message:   model.Message,
		Read:      model.Read,
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}
}
