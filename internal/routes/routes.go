package routes

import (
	"tutalink_backend/internal/handlers"
	"tutalink_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all HTTP routes under /api.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	auth *middleware.Auth,
) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, auth)
		appHandlers.UserHandler.RegisterRoutes(api, auth)
		appHandlers.TutorHandler.RegisterRoutes(api)
		appHandlers.SessionHandler.RegisterRoutes(api, auth)
		appHandlers.ReviewHandler.RegisterRoutes(api, auth)
		appHandlers.ApplicationHandler.RegisterRoutes(api, auth)
		appHandlers.AdminHandler.RegisterRoutes(api, auth)
		appHandlers.CatalogHandler.RegisterRoutes(api)
	}
}
