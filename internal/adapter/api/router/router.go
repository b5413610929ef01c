package router

import (
	"github.com/labstack/echo/v4"

	"portfolia/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupArticleRouter(e, authMiddleware, adminMiddleware)
	SetupChatRouter(e, authMiddleware, adminMiddleware)
	SetupDonationRouter(e, authMiddleware, adminMiddleware)
	SetupContentRouter(e, authMiddleware, adminMiddleware)
	SetupContactRouter(e, authMiddleware, adminMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupSitemapRouter(e)
	SetupHealthRouter(e)
}
