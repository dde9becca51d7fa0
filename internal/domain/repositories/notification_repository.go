package repositories

import (
	"context"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
)

// NotificationFilters contém filtros para listagem de notificações
type NotificationFilters struct {
	OnlyUnread bool
}

// NotificationRepository define a interface para persistência de notificações
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
	FindByID(ctx context.Context, id string) (*entities.Notification, error)
	ListByUser(ctx context.Context, userID string, filters NotificationFilters) ([]*entities.Notification, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
