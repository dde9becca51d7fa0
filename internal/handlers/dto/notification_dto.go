package dto

import (
	"time"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
)

// NotificationResponse representa a resposta de uma notificação
type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TaskID    string    `json:"task_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`

	TaskTitulo string `json:"task_titulo,omitempty"`
	TaskStatus string `json:"task_status,omitempty"`
}

// ToNotificationResponse converte uma entidade Notification
func ToNotificationResponse(notification *entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         notification.ID,
		UserID:     notification.UserID,
		TaskID:     notification.TaskID,
		Title:      notification.Title,
		Message:    notification.Message,
		Read:       notification.Read,
		CreatedAt:  notification.CreatedAt,
		TaskTitulo: notification.TaskTitulo,
		TaskStatus: string(notification.TaskStatus),
	}
}

// ToNotificationResponses converte uma lista de entidades Notification
func ToNotificationResponses(notifications []*entities.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = ToNotificationResponse(notification)
	}
	return responses
}
