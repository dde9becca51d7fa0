package dto

import (
	"time"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
)

// CreateTaskRequest representa a requisição para criar uma tarefa
type CreateTaskRequest struct {
	Titulo     string  `json:"titulo" binding:"required,min=2,max=255"`
	Descricao  string  `json:"descricao" binding:"omitempty,max=5000"`
	Priority   string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate    string  `json:"due_date" binding:"required"`
	AssignedTo *string `json:"assigned_to" binding:"omitempty,uuid"`
}

// UpdateTaskRequest representa a requisição de atualização parcial
type UpdateTaskRequest struct {
	Titulo     *string `json:"titulo" binding:"omitempty,min=2,max=255"`
	Descricao  *string `json:"descricao" binding:"omitempty,max=5000"`
	Priority   *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate    *string `json:"due_date" binding:"omitempty"`
	AssignedTo *string `json:"assigned_to" binding:"omitempty,uuid"`
}

// UpdateTaskStatusRequest representa a requisição de troca de status
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=nova em_andamento concluida arquivada lixeira"`
}

// TaskResponse representa a resposta de uma tarefa
type TaskResponse struct {
	ID         string    `json:"id"`
	Titulo     string    `json:"titulo"`
	Descricao  string    `json:"descricao,omitempty"`
	Status     string    `json:"status"`
	Priority   string    `json:"priority"`
	DueDate    string    `json:"due_date"`
	AssignedTo *string   `json:"assigned_to,omitempty"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	AssignedUser  *UserRefResponse `json:"assigned_user,omitempty"`
	CreatedByUser *UserRefResponse `json:"created_by_user,omitempty"`
}

// ToTaskResponse converte uma entidade Task para TaskResponse
func ToTaskResponse(task *entities.Task) TaskResponse {
	return TaskResponse{
		ID:            task.ID,
		Titulo:        task.Titulo,
		Descricao:     task.Descricao,
		Status:        string(task.Status),
		Priority:      string(task.Priority),
		DueDate:       task.DueDate,
		AssignedTo:    task.AssignedTo,
		CreatedBy:     task.CreatedBy,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
		AssignedUser:  ToUserRefResponse(task.AssignedUser),
		CreatedByUser: ToUserRefResponse(task.CreatedByUser),
	}
}

// ToTaskResponses converte uma lista de entidades Task
func ToTaskResponses(tasks []*entities.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}
