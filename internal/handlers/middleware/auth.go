package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// ActorIDContextKey é a chave do id do usuário autenticado no contexto do Gin
	ActorIDContextKey = "actor_id"
)

// TokenValidator valida um token de acesso e retorna o id do usuário
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// AuthMiddleware valida o token Bearer das requisições protegidas
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// RequireAuth exige um token Bearer válido e injeta o id do usuário no contexto
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"type":   "/problems/unauthorized",
				"title":  "Unauthorized",
				"status": http.StatusUnauthorized,
			})
			return
		}

		actorID, err := m.validator.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"type":   "/problems/unauthorized",
				"title":  "Unauthorized",
				"status": http.StatusUnauthorized,
			})
			return
		}

		c.Set(ActorIDContextKey, actorID)
		c.Next()
	}
}

// extractToken lê o token do header Authorization ou, para o handshake
// WebSocket (onde browsers não mandam headers), do query parameter
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}

// ActorID retorna o id do usuário autenticado da requisição
func ActorID(c *gin.Context) string {
	return c.GetString(ActorIDContextKey)
}
