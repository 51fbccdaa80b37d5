package handlers

// AppHandlers holds all HTTP handlers of the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	TutorHandler       *TutorHandler
	SessionHandler     *SessionHandler
	ReviewHandler      *ReviewHandler
	ApplicationHandler *ApplicationHandler
	AdminHandler       *AdminHandler
	CatalogHandler     *CatalogHandler
}
