package handlers

import (
	"net/http"

	"tutalink_backend/internal/middleware"
	"tutalink_backend/internal/models"
	"tutalink_backend/internal/services"
	"tutalink_backend/internal/services/dto"
	"tutalink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	*BaseHandler
	sessionService services.SessionService
}

func NewSessionHandler(base *BaseHandler, sessionService services.SessionService) *SessionHandler {
	return &SessionHandler{
		BaseHandler:    base,
		sessionService: sessionService,
	}
}

func (h *SessionHandler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.Auth) {
	sessions := r.Group("/sessions")
	sessions.Use(auth.Authenticate())
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("", h.ListSessions)
		sessions.GET("/upcoming", h.ListUpcomingSessions)
		sessions.POST("/:id/cancel", h.CancelSession)
		sessions.POST("/:id/status", h.UpdateSessionStatus)
	}
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateSessionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	session, err := h.sessionService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) ListSessions(c *gin.Context) {
	userID, role, ok := currentUserAndRole(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, h.sessionService.ListForUser(userID, role))
}

func (h *SessionHandler) ListUpcomingSessions(c *gin.Context) {
	userID, role, ok := currentUserAndRole(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, h.sessionService.ListUpcomingForUser(userID, role))
}

func (h *SessionHandler) CancelSession(c *gin.Context) {
	userID, role, ok := currentUserAndRole(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	sessionID, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	session, err := h.sessionService.Cancel(sessionID, userID, role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) UpdateSessionStatus(c *gin.Context) {
	userID, role, ok := currentUserAndRole(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	sessionID, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateSessionStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	session, err := h.sessionService.UpdateStatus(sessionID, userID, role, models.SessionStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func currentUserAndRole(c *gin.Context) (int, models.UserRole, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return 0, "", false
	}
	role, ok := middleware.CurrentRole(c)
	if !ok {
		return 0, "", false
	}
	return userID, role, true
}
