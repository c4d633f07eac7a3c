package auth

import (
	"net/http"
	"strings"

	"lead-pipeline-backend/internal/database/models"
	apperrors "lead-pipeline-backend/internal/errors"
	"lead-pipeline-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// Middleware validates bearer tokens and resolves the acting user
type Middleware struct {
	service *Service
	users   repository.UserRepositoryInterface
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service, users repository.UserRepositoryInterface) *Middleware {
	return &Middleware{service: service, users: users}
}

// RequireAuth validates the JWT and sets the acting user in the context.
// Deactivated accounts are rejected even with a valid token.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		user, err := m.users.GetByEmail(claims.Email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
			c.Abort()
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrUserDeactivated.Error()})
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Set("email", user.Email)
		c.Next()
	}
}

// CurrentUser extracts the acting user set by RequireAuth
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
