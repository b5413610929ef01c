package router

import (
	"github.com/labstack/echo/v4"

	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"
)

func SetupDonationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	donationHandler := handler.GetDonationHandler()

	// Donating does not require an account.
	e.POST("/v1/donations/initialize", donationHandler.Initialize, middleware.RateLimit("payment"))
	e.POST("/v1/donations/verify", donationHandler.Verify, middleware.RateLimit("payment"))

	admin := e.Group("/v1/admin/donations")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)

	admin.GET("", donationHandler.List)
}
