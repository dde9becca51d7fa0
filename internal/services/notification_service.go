package services

import (
	"context"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/errors"
	"github.com/ccjb/compliance-backend/internal/domain/ports"
	"github.com/ccjb/compliance-backend/internal/domain/repositories"
)

// NotificationService contém a lógica de negócio para notificações
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	pusher           ports.NotificationPusher
	logger           ports.Logger
}

// NewNotificationService cria um novo NotificationService.
// pusher é opcional (nil desliga o push em tempo real).
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	pusher ports.NotificationPusher,
	logger ports.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		pusher:           pusher,
		logger:           logger,
	}
}

// NotifyAssignment cria a notificação de tarefa atribuída.
// O chamador decide se a falha é fatal — na criação de tarefas ela é
// apenas logada, nunca repassada ao usuário final.
func (s *NotificationService) NotifyAssignment(ctx context.Context, recipientID, taskID, tituloTarefa string) error {
	notification := &entities.Notification{
		UserID:  recipientID,
		TaskID:  taskID,
		Title:   "Nova tarefa atribuída",
		Message: "Você recebeu uma nova tarefa: " + tituloTarefa,
	}

	if err := notification.Validate(); err != nil {
		return errors.NewValidationError("", err.Error())
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return err
	}

	if s.pusher != nil {
		s.pusher.Push(notification)
	}

	s.logger.Info("assignment notification created",
		"recipient", recipientID,
		"task_id", taskID,
	)
	return nil
}

// List retorna todas as notificações do usuário autenticado
func (s *NotificationService) List(ctx context.Context, actorID string) ([]*entities.Notification, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}
	return s.notificationRepo.ListByUser(ctx, actorID, repositories.NotificationFilters{})
}

// ListUnread retorna apenas as notificações não lidas do usuário
func (s *NotificationService) ListUnread(ctx context.Context, actorID string) ([]*entities.Notification, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}
	return s.notificationRepo.ListByUser(ctx, actorID, repositories.NotificationFilters{OnlyUnread: true})
}

// MarkRead marca uma notificação como lida. Só o destinatário pode.
func (s *NotificationService) MarkRead(ctx context.Context, actorID, id string) error {
	if actorID == "" {
		return errors.ErrNotAuthenticated
	}

	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if notification == nil {
		return errors.ErrNotificationNotFound
	}
	if notification.UserID != actorID {
		return errors.ErrForbidden
	}

	return s.notificationRepo.MarkRead(ctx, id)
}

// Delete exclui uma notificação. Só o destinatário pode.
func (s *NotificationService) Delete(ctx context.Context, actorID, id string) error {
	if actorID == "" {
		return errors.ErrNotAuthenticated
	}

	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if notification == nil {
		return errors.ErrNotificationNotFound
	}
	if notification.UserID != actorID {
		return errors.ErrForbidden
	}

	return s.notificationRepo.Delete(ctx, id)
}
