package router

import (
	"github.com/labstack/echo/v4"

	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"
)

func SetupContactRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	contactHandler := handler.GetContactHandler()

	e.POST("/v1/contact", contactHandler.Submit, middleware.RateLimit("contact_submit"))

	admin := e.Group("/v1/admin/contact")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)

	admin.GET("/messages", contactHandler.ListMessages)
	admin.POST("/messages/:id/read", contactHandler.MarkRead)
	admin.GET("/email-logs", contactHandler.ListEmailLogs)
}
