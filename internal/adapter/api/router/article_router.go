package router

import (
	"github.com/labstack/echo/v4"

	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"
)

func SetupArticleRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	articleHandler := handler.GetArticleHandler()

	// Public reads
	e.GET("/v1/articles", articleHandler.List)
	e.GET("/v1/articles/slug/:slug", articleHandler.GetBySlug)
	e.GET("/v1/articles/:id/comments", articleHandler.ListComments)

	// Signed-in interactions
	authed := e.Group("/v1/articles")
	authed.Use(authMiddleware.Authenticate)

	authed.POST("/:id/comments", articleHandler.AddComment, middleware.RateLimit("comment"))
	authed.POST("/:id/like", articleHandler.ToggleLike)

	// Admin management
	admin := e.Group("/v1/admin/articles")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)

	admin.GET("", articleHandler.ListAll)
	admin.POST("", articleHandler.Create)
	admin.PUT("/:id", articleHandler.Update)
	admin.DELETE("/:id", articleHandler.Delete)
	admin.DELETE("/:id/comments/:commentId", articleHandler.DeleteComment)
}
