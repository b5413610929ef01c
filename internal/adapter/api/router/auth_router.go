package router

import (
	"github.com/labstack/echo/v4"

	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	e.POST("/v1/auth/register", authHandler.Register, middleware.RateLimit("register"))

	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/me", authHandler.Me)
	protected.PUT("/me", authHandler.UpdateProfile)
}
