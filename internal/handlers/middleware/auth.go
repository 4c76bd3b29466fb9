package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/holonet/holonet-backend/internal/domain/entities"
	domainerrors "github.com/holonet/holonet-backend/internal/domain/errors"
	"github.com/holonet/holonet-backend/internal/domain/repositories"
	"github.com/holonet/holonet-backend/internal/infrastructure/auth"
)

// TokenHeader é o header fixo do token de acesso
const TokenHeader = "x-access-token"

const (
	// UserIDContextKey é a chave do id do usuário autenticado no contexto
	UserIDContextKey = "user_id"
	// UserEmailContextKey é a chave do email do usuário autenticado
	UserEmailContextKey = "user_email"
	// UserRoleContextKey é a chave do papel do usuário autenticado
	UserRoleContextKey = "user_role"
)

// Auth valida o token do header x-access-token e confirma que o usuário
// ainda existe. Token de conta deletada é tratado como não autenticado.
// Toda falha responde 401 com a mensagem de autenticação do contrato.
func Auth(tokens *auth.JWTService, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			abortUnauthenticated(c)
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(UserIDContextKey, user.ID)
		c.Set(UserEmailContextKey, user.Email.String())
		c.Set(UserRoleContextKey, user.Role)

		c.Next()
	}
}

// RequirePermission exige uma permissão do papel do usuário autenticado
func RequirePermission(permission entities.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := c.Get(UserRoleContextKey)
		if !ok {
			abortForbidden(c)
			return
		}

		role, ok := value.(entities.Role)
		if !ok || !role.HasPermission(permission) {
			abortForbidden(c)
			return
		}

		c.Next()
	}
}

// CurrentUserID retorna o id do usuário autenticado na requisição
func CurrentUserID(c *gin.Context) string {
	if id, ok := c.Get(UserIDContextKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// CurrentUserEmail retorna o email do usuário autenticado na requisição
func CurrentUserEmail(c *gin.Context) string {
	if email, ok := c.Get(UserEmailContextKey); ok {
		if s, ok := email.(string); ok {
			return s
		}
	}
	return ""
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"err": Translate(c, domainerrors.ErrAuthFailure.Error()),
	})
}

func abortForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"err": Translate(c, domainerrors.ErrForbidden.Error()),
	})
}
