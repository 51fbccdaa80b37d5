package handlers

import (
	"net/http"

	"tutalink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/courses", h.ListCourses)
	r.GET("/departments", h.ListDepartments)
	r.GET("/colleges", h.ListColleges)
}

func (h *CatalogHandler) ListCourses(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.Courses())
}

func (h *CatalogHandler) ListDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.Departments())
}

func (h *CatalogHandler) ListColleges(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.Colleges())
}
