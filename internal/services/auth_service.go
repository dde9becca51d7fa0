package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/errors"
	"github.com/ccjb/compliance-backend/internal/domain/ports"
	"github.com/ccjb/compliance-backend/internal/domain/repositories"
	"github.com/ccjb/compliance-backend/internal/infrastructure/config"
)

// AuthService autentica usuários e emite/valida tokens de acesso
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.JWTConfig
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(userRepo repositories.UserRepository, cfg *config.JWTConfig, logger ports.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
		logger:   logger,
	}
}

// LoginResult carrega o token emitido e o usuário autenticado
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entities.User
}

// Login valida as credenciais e emite um token JWT HS256.
// Usuário inexistente e senha incorreta retornam o mesmo erro.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user authenticated", "user_id", user.ID)
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// GenerateToken emite um JWT HS256 para o usuário
func (s *AuthService) GenerateToken(user *entities.User) (string, time.Time, error) {
	expiry, err := time.ParseDuration(s.cfg.AccessExpiry)
	if err != nil {
		expiry = 24 * time.Hour
	}
	expiresAt := time.Now().Add(expiry)

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email.String(),
		"role":  string(user.Role),
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken verifica a assinatura e a expiração do token e retorna
// o id do usuário (claim sub)
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrNotAuthenticated
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.ErrNotAuthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.ErrNotAuthenticated
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.ErrNotAuthenticated
	}
	return sub, nil
}

// CurrentUser retorna o usuário autenticado
func (s *AuthService) CurrentUser(ctx context.Context, actorID string) (*entities.User, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	user, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrNotAuthenticated
	}
	return user, nil
}
