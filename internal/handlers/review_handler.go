package handlers

import (
	"net/http"

	"tutalink_backend/internal/middleware"
	"tutalink_backend/internal/services"
	"tutalink_backend/internal/services/dto"
	"tutalink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.Auth) {
	reviews := r.Group("/reviews")
	{
		reviews.GET("/recent", h.RecentReviews)
		reviews.POST("", auth.Authenticate(), h.CreateReview)
		reviews.GET("", auth.Authenticate(), h.ListReviews)
	}
}

// RecentReviews is public; it feeds the landing page.
func (h *ReviewHandler) RecentReviews(c *gin.Context) {
	c.JSON(http.StatusOK, h.reviewService.Recent())
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviewService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	userID, role, ok := currentUserAndRole(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, h.reviewService.ListForUser(userID, role))
}
