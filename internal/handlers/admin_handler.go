package handlers

import (
	"net/http"

	"tutalink_backend/internal/middleware"
	"tutalink_backend/internal/models"
	"tutalink_backend/internal/services"
	"tutalink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler owns the admin surface plus the public footer endpoint
// that reads the same singleton the admin edits.
type AdminHandler struct {
	*BaseHandler
	adminService       services.AdminService
	userService        services.UserService
	tutorService       services.TutorService
	applicationService services.ApplicationService
}

func NewAdminHandler(
	base *BaseHandler,
	adminService services.AdminService,
	userService services.UserService,
	tutorService services.TutorService,
	applicationService services.ApplicationService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:        base,
		adminService:       adminService,
		userService:        userService,
		tutorService:       tutorService,
		applicationService: applicationService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.Auth) {
	r.GET("/footer-content", h.GetFooterContent)

	admin := r.Group("/admin")
	admin.Use(auth.Authenticate(), auth.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/dashboard", h.Dashboard)

		admin.GET("/users", h.ListUsers)
		admin.DELETE("/users/:id", h.DeleteUser)
		admin.POST("/users/:id/reset-password", h.ResetPassword)
		admin.PATCH("/users/:id/role", h.UpdateRole)
		admin.PATCH("/users/:id/approve", h.UpdateApproval)

		admin.GET("/tutors", h.ListAllTutors)

		admin.GET("/tutor-applications", h.ListApplications)
		admin.POST("/tutor-applications/:id/approve", h.ApproveApplication)
		admin.POST("/tutor-applications/:id/reject", h.RejectApplication)

		admin.GET("/system-config", h.ListSystemConfigs)
		admin.GET("/system-config/:key", h.GetSystemConfig)
		admin.PUT("/system-config/:key", h.UpdateSystemConfig)

		admin.PUT("/footer-content", h.UpdateFooterContent)
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.adminService.Dashboard())
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.userService.GetAllUsers())
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if err := h.userService.DeleteUser(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ResetPassword(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if err := h.userService.ResetPassword(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
}

func (h *AdminHandler) UpdateRole(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateRoleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateRole(id, models.UserRole(req.Role))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) UpdateApproval(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateApprovalRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateApproval(id, *req.IsApproved)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) ListAllTutors(c *gin.Context) {
	c.JSON(http.StatusOK, h.tutorService.GetAllTutors())
}

func (h *AdminHandler) ListApplications(c *gin.Context) {
	c.JSON(http.StatusOK, h.applicationService.ListAll())
}

// Application routes key :id by the applicant's user id; there is one
// application per user.
func (h *AdminHandler) ApproveApplication(c *gin.Context) {
	userID, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	app, err := h.applicationService.Approve(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *AdminHandler) RejectApplication(c *gin.Context) {
	userID, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	app, err := h.applicationService.Reject(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *AdminHandler) ListSystemConfigs(c *gin.Context) {
	c.JSON(http.StatusOK, h.adminService.ListSystemConfigs())
}

func (h *AdminHandler) GetSystemConfig(c *gin.Context) {
	cfg, err := h.adminService.GetSystemConfig(c.Param("key"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *AdminHandler) UpdateSystemConfig(c *gin.Context) {
	var req dto.UpdateConfigRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.adminService.UpdateSystemConfig(c.Param("key"), req.Value))
}

func (h *AdminHandler) GetFooterContent(c *gin.Context) {
	c.JSON(http.StatusOK, h.adminService.GetFooterContent())
}

func (h *AdminHandler) UpdateFooterContent(c *gin.Context) {
	var req dto.UpdateFooterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.adminService.UpdateFooterContent(&req))
}
