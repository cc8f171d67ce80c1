package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "matchtix/internal/interfaces/http/handlers/auth"
	"matchtix/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	AuthMiddleware *middleware.SessionAuthMiddleware
	LoginRateLimit gin.HandlerFunc
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/register", config.AuthHandler.Register)

		if config.LoginRateLimit != nil {
			auth.POST("/login", config.LoginRateLimit, config.AuthHandler.Login)
		} else {
			auth.POST("/login", config.AuthHandler.Login)
		}

		auth.POST("/logout", config.AuthHandler.Logout)
		auth.GET("/me", config.AuthMiddleware.RequireAuth(), config.AuthHandler.CurrentUser)
	}
}
