package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ccjb/compliance-backend/internal/domain/ports"
	"github.com/ccjb/compliance-backend/internal/handlers/dto"
	"github.com/ccjb/compliance-backend/internal/handlers/middleware"
	"github.com/ccjb/compliance-backend/internal/services"
)

// NotificationHandler lida com requisições HTTP de notificações
type NotificationHandler struct {
	notificationService *services.NotificationService
	logger              ports.Logger
}

// NewNotificationHandler cria um novo NotificationHandler
func NewNotificationHandler(notificationService *services.NotificationService, logger ports.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// ListNotifications lista as notificações do usuário autenticado.
// ?unread=true retorna só as não lidas.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actorID := middleware.ActorID(c)

	var err error
	var notifications []dto.NotificationResponse

	if c.Query("unread") == "true" {
		result, listErr := h.notificationService.ListUnread(c.Request.Context(), actorID)
		err = listErr
		notifications = dto.ToNotificationResponses(result)
	} else {
		result, listErr := h.notificationService.List(c.Request.Context(), actorID)
		err = listErr
		notifications = dto.ToNotificationResponses(result)
	}

	if err != nil {
		h.logger.Warn("notification listing degraded to empty", "error", err)
		c.JSON(http.StatusOK, []dto.NotificationResponse{})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead marca uma notificação como lida
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	if err := h.notificationService.MarkRead(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteNotification exclui uma notificação
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	if err := h.notificationService.Delete(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
