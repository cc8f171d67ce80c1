package routes

import (
	"github.com/gin-gonic/gin"

	profilehandlers "matchtix/internal/interfaces/http/handlers/profile"
	"matchtix/internal/interfaces/http/middleware"
)

type ProfileRouteConfig struct {
	ProfileHandler *profilehandlers.ProfileHandler
	AuthMiddleware *middleware.SessionAuthMiddleware
}

func SetupProfileRoutes(engine *gin.Engine, config *ProfileRouteConfig) {
	profile := engine.Group("/api/profile")
	profile.Use(config.AuthMiddleware.RequireAuth())
	{
		profile.GET("", config.ProfileHandler.GetProfile)
		profile.PUT("", config.ProfileHandler.UpdateProfile)
	}
}
