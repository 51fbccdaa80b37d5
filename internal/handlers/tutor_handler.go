package handlers

import (
	"net/http"

	"tutalink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type TutorHandler struct {
	*BaseHandler
	tutorService services.TutorService
}

func NewTutorHandler(base *BaseHandler, tutorService services.TutorService) *TutorHandler {
	return &TutorHandler{
		BaseHandler:  base,
		tutorService: tutorService,
	}
}

// The tutor directory is public.
func (h *TutorHandler) RegisterRoutes(r *gin.RouterGroup) {
	tutors := r.Group("/tutors")
	{
		tutors.GET("", h.ListTutors)
		tutors.GET("/recommended", h.RecommendedTutors)
		tutors.GET("/:id", h.GetTutor)
	}
}

func (h *TutorHandler) ListTutors(c *gin.Context) {
	c.JSON(http.StatusOK, h.tutorService.GetTutors())
}

func (h *TutorHandler) RecommendedTutors(c *gin.Context) {
	c.JSON(http.StatusOK, h.tutorService.GetRecommendedTutors())
}

func (h *TutorHandler) GetTutor(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	tutor, err := h.tutorService.GetTutorByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tutor)
}
