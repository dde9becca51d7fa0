package services

import (
	"context"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/errors"
	"github.com/ccjb/compliance-backend/internal/domain/ports"
	"github.com/ccjb/compliance-backend/internal/domain/repositories"
)

// TaskService contém a lógica de negócio para tarefas
type TaskService struct {
	taskRepo            repositories.TaskRepository
	userRepo            repositories.UserRepository
	notificationService *NotificationService
	logger              ports.Logger
}

// NewTaskService cria um novo TaskService
func NewTaskService(
	taskRepo repositories.TaskRepository,
	userRepo repositories.UserRepository,
	notificationService *NotificationService,
	logger ports.Logger,
) *TaskService {
	return &TaskService{
		taskRepo:            taskRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
		logger:              logger,
	}
}

// CreateTaskInput representa os dados para criar uma tarefa
type CreateTaskInput struct {
	Titulo     string
	Descricao  string
	Priority   entities.Priority
	DueDate    string
	AssignedTo *string
}

// Create cria uma tarefa. Sem responsável explícito, ela fica com o
// criador. Atribuição a outra pessoa gera uma notificação; falha na
// notificação é logada e não derruba a criação.
func (s *TaskService) Create(ctx context.Context, actorID string, input CreateTaskInput) (*entities.Task, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	task := &entities.Task{
		Titulo:     input.Titulo,
		Descricao:  input.Descricao,
		Priority:   input.Priority,
		DueDate:    input.DueDate,
		AssignedTo: input.AssignedTo,
		CreatedBy:  actorID,
	}
	task.ApplyDefaults()

	if err := task.Validate(); err != nil {
		return nil, errors.NewValidationError("", err.Error())
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	if task.IsAssignedToOther() {
		if err := s.notificationService.NotifyAssignment(ctx, *task.AssignedTo, task.ID, task.Titulo); err != nil {
			s.logger.Error("failed to create assignment notification",
				"task_id", task.ID,
				"recipient", *task.AssignedTo,
				"error", err,
			)
		}
	}

	if err := s.resolveUsers(ctx, []*entities.Task{task}); err != nil {
		s.logger.Warn("failed to resolve task users", "task_id", task.ID, "error", err)
	}

	s.logger.Info("task created", "task_id", task.ID, "titulo", task.Titulo)
	return task, nil
}

// List retorna todas as tarefas com os dados de responsável e criador
func (s *TaskService) List(ctx context.Context, actorID string) ([]*entities.Task, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.resolveUsers(ctx, tasks); err != nil {
		s.logger.Warn("failed to resolve task users", "error", err)
	}
	return tasks, nil
}

// UpdateTaskInput representa os campos atualizáveis de uma tarefa
type UpdateTaskInput struct {
	Titulo     *string
	Descricao  *string
	Priority   *entities.Priority
	DueDate    *string
	AssignedTo *string
}

// Update atualiza campos da tarefa. Reatribuição a um usuário diferente
// do atual também gera notificação.
func (s *TaskService) Update(ctx context.Context, actorID, id string, input UpdateTaskInput) (*entities.Task, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	if input.Priority != nil && !input.Priority.IsValid() {
		return nil, errors.NewValidationError("priority", "invalid priority")
	}

	existing, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.ErrTaskNotFound
	}

	task, err := s.taskRepo.Update(ctx, id, repositories.TaskUpdate{
		Titulo:     input.Titulo,
		Descricao:  input.Descricao,
		Priority:   input.Priority,
		DueDate:    input.DueDate,
		AssignedTo: input.AssignedTo,
	})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.ErrTaskNotFound
	}

	reassigned := input.AssignedTo != nil && *input.AssignedTo != actorID &&
		(existing.AssignedTo == nil || *existing.AssignedTo != *input.AssignedTo)
	if reassigned {
		if err := s.notificationService.NotifyAssignment(ctx, *input.AssignedTo, task.ID, task.Titulo); err != nil {
			s.logger.Error("failed to create assignment notification",
				"task_id", task.ID,
				"recipient", *input.AssignedTo,
				"error", err,
			)
		}
	}

	if err := s.resolveUsers(ctx, []*entities.Task{task}); err != nil {
		s.logger.Warn("failed to resolve task users", "task_id", task.ID, "error", err)
	}
	return task, nil
}

// UpdateStatus troca o status da tarefa sem grafo de transições: valida
// apenas que o valor pertence ao enum. Pulos como nova→arquivada são
// aceitos, comportamento observado do sistema que este substitui.
func (s *TaskService) UpdateStatus(ctx context.Context, actorID, id string, status entities.TaskStatus) (*entities.Task, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}
	if !status.IsValid() {
		return nil, errors.NewValidationError("status", "invalid status")
	}

	task, err := s.taskRepo.Update(ctx, id, repositories.TaskUpdate{Status: &status})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.ErrTaskNotFound
	}
	return task, nil
}

// MoveToTrash envia a tarefa para a lixeira (soft delete)
func (s *TaskService) MoveToTrash(ctx context.Context, actorID, id string) (*entities.Task, error) {
	return s.UpdateStatus(ctx, actorID, id, entities.TaskStatusLixeira)
}

// RestoreFromTrash devolve a tarefa da lixeira para o status nova.
// O destino é sempre nova, não o status anterior.
func (s *TaskService) RestoreFromTrash(ctx context.Context, actorID, id string) (*entities.Task, error) {
	return s.UpdateStatus(ctx, actorID, id, entities.TaskStatusNova)
}

// RestoreFromArchive devolve a tarefa arquivada para o status nova
func (s *TaskService) RestoreFromArchive(ctx context.Context, actorID, id string) (*entities.Task, error) {
	return s.UpdateStatus(ctx, actorID, id, entities.TaskStatusNova)
}

// DeletePermanently remove a tarefa do banco em definitivo
func (s *TaskService) DeletePermanently(ctx context.Context, actorID, id string) error {
	if actorID == "" {
		return errors.ErrNotAuthenticated
	}

	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return errors.ErrTaskNotFound
	}

	return s.taskRepo.Delete(ctx, id)
}

// EmptyTrash remove em definitivo todas as tarefas na lixeira.
// Chamada repetida é no-op.
func (s *TaskService) EmptyTrash(ctx context.Context, actorID string) error {
	if actorID == "" {
		return errors.ErrNotAuthenticated
	}
	return s.taskRepo.DeleteByStatus(ctx, entities.TaskStatusLixeira)
}

// resolveUsers preenche AssignedUser e CreatedByUser em lote
func (s *TaskService) resolveUsers(ctx context.Context, tasks []*entities.Task) error {
	idSet := map[string]struct{}{}
	for _, task := range tasks {
		idSet[task.CreatedBy] = struct{}{}
		if task.AssignedTo != nil {
			idSet[*task.AssignedTo] = struct{}{}
		}
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if user, ok := users[task.CreatedBy]; ok {
			task.CreatedByUser = user.Ref()
		}
		if task.AssignedTo != nil {
			if user, ok := users[*task.AssignedTo]; ok {
				task.AssignedUser = user.Ref()
			}
		}
	}
	return nil
}
