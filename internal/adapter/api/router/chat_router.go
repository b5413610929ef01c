package router

import (
	"github.com/labstack/echo/v4"

	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	chatHandler := handler.GetChatHandler()

	chat := e.Group("/v1/chat")
	chat.Use(authMiddleware.Authenticate)

	chat.POST("/messages", chatHandler.SendMessage)
	chat.GET("/conversation", chatHandler.MyConversation)
	chat.GET("/conversations/:id/messages", chatHandler.GetMessages)
	chat.POST("/conversations/:id/assistant", chatHandler.RequestAssistant)
	chat.POST("/conversations/:id/close", chatHandler.Close)

	admin := e.Group("/v1/admin/chat")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)

	admin.GET("/conversations", chatHandler.ListConversations)
	admin.POST("/conversations/:id/messages", chatHandler.AdminReply)
}
