package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/ports"
	"github.com/ccjb/compliance-backend/internal/handlers/dto"
	"github.com/ccjb/compliance-backend/internal/handlers/middleware"
	"github.com/ccjb/compliance-backend/internal/services"
)

// TaskHandler lida com requisições HTTP relacionadas a tarefas
type TaskHandler struct {
	taskService *services.TaskService
	logger      ports.Logger
}

// NewTaskHandler cria um novo TaskHandler
func NewTaskHandler(taskService *services.TaskService, logger ports.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// CreateTask cria uma nova tarefa
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), middleware.ActorID(c), services.CreateTaskInput{
		Titulo:     req.Titulo,
		Descricao:  req.Descricao,
		Priority:   entities.Priority(req.Priority),
		DueDate:    req.DueDate,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

// ListTasks lista todas as tarefas. Falha de leitura degrada para
// lista vazia, mesmo contrato do quadro de empresas.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.List(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		h.logger.Warn("task listing degraded to empty", "error", err)
		c.JSON(http.StatusOK, []dto.TaskResponse{})
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponses(tasks))
}

// UpdateTask aplica um update parcial em uma tarefa
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c)
		return
	}

	input := services.UpdateTaskInput{
		Titulo:     req.Titulo,
		Descricao:  req.Descricao,
		DueDate:    req.DueDate,
		AssignedTo: req.AssignedTo,
	}
	if req.Priority != nil {
		priority := entities.Priority(*req.Priority)
		input.Priority = &priority
	}

	task, err := h.taskService.Update(c.Request.Context(), middleware.ActorID(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// UpdateTaskStatus troca o status da tarefa
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c)
		return
	}

	task, err := h.taskService.UpdateStatus(
		c.Request.Context(),
		middleware.ActorID(c),
		c.Param("id"),
		entities.TaskStatus(req.Status),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// MoveTaskToTrash envia a tarefa para a lixeira
func (h *TaskHandler) MoveTaskToTrash(c *gin.Context) {
	task, err := h.taskService.MoveToTrash(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// RestoreTask devolve a tarefa da lixeira ou do arquivo para nova
func (h *TaskHandler) RestoreTask(c *gin.Context) {
	task, err := h.taskService.RestoreFromTrash(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// DeleteTask remove a tarefa do banco em definitivo
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.taskService.DeletePermanently(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// EmptyTrash remove em definitivo todas as tarefas na lixeira
func (h *TaskHandler) EmptyTrash(c *gin.Context) {
	if err := h.taskService.EmptyTrash(c.Request.Context(), middleware.ActorID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
