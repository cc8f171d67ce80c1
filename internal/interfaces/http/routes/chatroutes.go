package routes

import (
	"github.com/gin-gonic/gin"

	chathandlers "matchtix/internal/interfaces/http/handlers/chat"
	"matchtix/internal/interfaces/http/middleware"
)

type ChatRouteConfig struct {
	ChatHandler    *chathandlers.ChatHandler
	AuthMiddleware *middleware.SessionAuthMiddleware
}

func SetupChatRoutes(engine *gin.Engine, config *ChatRouteConfig) {
	chat := engine.Group("/api/chat")
	chat.Use(config.AuthMiddleware.RequireAuth())
	{
		chat.POST("", config.ChatHandler.ProcessMessage)
	}
}
