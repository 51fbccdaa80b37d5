package middleware

import (
	"tutalink_backend/internal/logger"
	"tutalink_backend/internal/models"
	"tutalink_backend/internal/services"
	"tutalink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Context keys set by Authenticate.
const (
	ctxUserKey   = "user"
	ctxUserIDKey = "userID"
	ctxRoleKey   = "role"
)

// Auth resolves the session cookie to a user and guards routes by role.
type Auth struct {
	authService services.AuthService
	cookieName  string
}

func NewAuth(authService services.AuthService, cookieName string) *Auth {
	return &Auth{
		authService: authService,
		cookieName:  cookieName,
	}
}

// Authenticate rejects the request with 401 unless the session cookie
// resolves to a live user.
func (a *Auth) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(a.cookieName)
		if err != nil || token == "" {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		user, err := a.authService.ResolveSession(token)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(ctxUserKey, user)
		c.Set(ctxUserIDKey, user.ID)
		c.Set(ctxRoleKey, user.Role)

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRoles allows only the given roles past; run it after
// Authenticate.
func (a *Auth) RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role, ok := CurrentRole(c)
		if !ok || !roleSet[role] {
			apperrors.HandleError(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Authenticate.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(ctxUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

func CurrentUserID(c *gin.Context) (int, bool) {
	val, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := val.(int)
	return id, ok
}

func CurrentRole(c *gin.Context) (models.UserRole, bool) {
	val, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := val.(models.UserRole)
	return role, ok
}
