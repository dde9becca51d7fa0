package entities

import (
	"errors"
	"time"

	"github.com/ccjb/compliance-backend/internal/domain/valueobjects"
)

// User representa um usuário do sistema.
// O cadastro nasce no provedor de identidade; aqui só os campos de
// exibição (nome, avatar) e o role são mutáveis.
type User struct {
	ID           string
	Email        valueobjects.Email
	Name         string
	PasswordHash string
	Role         Role
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRef é a projeção enxuta de usuário embutida nos agregados
// (autor de fluxo/nota/parecer, responsável por tarefa)
type UserRef struct {
	ID        string
	Name      string
	Email     string
	AvatarURL *string
}

// Ref retorna a projeção enxuta do usuário
func (u *User) Ref() *UserRef {
	return &UserRef{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email.String(),
		AvatarURL: u.AvatarURL,
	}
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if len(u.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if u.Role != RoleAdmin && u.Role != RoleUser {
		return errors.New("invalid role")
	}

	return nil
}
