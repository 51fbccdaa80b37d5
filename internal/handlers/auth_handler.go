package handlers

import (
	"net/http"

	"tutalink_backend/internal/config"
	"tutalink_backend/internal/middleware"
	"tutalink_backend/internal/services"
	"tutalink_backend/internal/services/dto"
	"tutalink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		cfg:         cfg,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.Auth) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/user", auth.Authenticate(), h.CurrentUser)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, token, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, token, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cfg.Session.CookieName); err == nil && token != "" {
		h.authService.Logout(token)
	}
	h.clearSessionCookie(c)
	c.Status(http.StatusOK)
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	maxAge := h.cfg.Session.TTLHours * 3600
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.Session.CookieName, token, maxAge, "/", "", h.secureCookies(), true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.Session.CookieName, "", -1, "/", "", h.secureCookies(), true)
}

func (h *AuthHandler) secureCookies() bool {
	return h.cfg.Server.Env == "production"
}
