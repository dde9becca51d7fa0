package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/errors"
	"github.com/ccjb/compliance-backend/internal/domain/ports"
	"github.com/ccjb/compliance-backend/internal/domain/repositories"
	"github.com/ccjb/compliance-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(userRepo repositories.UserRepository, logger ports.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
	Role     entities.Role
}

// CreateUser cria um novo usuário com a senha hasheada via bcrypt.
// Só admins criam usuários.
func (s *UserService) CreateUser(ctx context.Context, actorID string, input CreateUserInput) (*entities.User, error) {
	actor, err := s.requireActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, errors.ErrForbidden
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.NewValidationError("email", "malformed email")
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	if len(input.Password) < 8 {
		return nil, errors.NewValidationError("password", "password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = entities.RoleUser
	}

	user := &entities.User{
		Email:        email,
		Name:         input.Name,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := user.Validate(); err != nil {
		return nil, errors.NewValidationError("", err.Error())
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID, "email", email.String())
	return user, nil
}

// GetProfile busca o perfil de um usuário por ID
func (s *UserService) GetProfile(ctx context.Context, actorID, id string) (*entities.User, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfileInput representa os campos editáveis do perfil
type UpdateProfileInput struct {
	Name      *string
	AvatarURL *string
	Role      *entities.Role
}

// UpdateProfile atualiza os campos de exibição do perfil.
// Mudança de role exige que o ator seja admin.
func (s *UserService) UpdateProfile(ctx context.Context, actorID, id string, input UpdateProfileInput) (*entities.User, error) {
	actor, err := s.requireActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if actorID != id && !actor.IsAdmin() {
		return nil, errors.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.AvatarURL != nil {
		user.AvatarURL = input.AvatarURL
	}
	if input.Role != nil {
		if !actor.IsAdmin() {
			return nil, errors.ErrForbidden
		}
		user.Role = *input.Role
	}

	if err := user.Validate(); err != nil {
		return nil, errors.NewValidationError("", err.Error())
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers lista os usuários do sistema, para seletores de atribuição
func (s *UserService) ListUsers(ctx context.Context, actorID string, filters repositories.UserFilters) ([]*entities.User, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}
	return s.userRepo.List(ctx, filters)
}

func (s *UserService) requireActor(ctx context.Context, actorID string) (*entities.User, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, errors.ErrNotAuthenticated
	}
	return actor, nil
}
