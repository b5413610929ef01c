package router

import (
	"github.com/labstack/echo/v4"

	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()
	mediaHandler := handler.GetMediaHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)

	admin.POST("/roles", adminHandler.AssignRole)

	admin.GET("/notifications/prompt", adminHandler.ShouldPrompt)
	admin.POST("/notifications/permission", adminHandler.SetPermission)
	admin.GET("/notifications/preferences", adminHandler.GetPreferences)
	admin.PUT("/notifications/preferences", adminHandler.UpdatePreferences)

	admin.POST("/media", mediaHandler.Upload)
	admin.GET("/media", mediaHandler.List)
}
