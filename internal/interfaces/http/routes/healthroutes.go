package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	healthhandlers "matchtix/internal/interfaces/http/handlers/health"
)

type HealthRouteConfig struct {
	HealthHandler *healthhandlers.HealthHandler
}

func SetupHealthRoutes(engine *gin.Engine, config *HealthRouteConfig) {
	engine.GET("/health", config.HealthHandler.Check)
	engine.GET("/health/detailed", config.HealthHandler.Detailed)
	engine.GET("/ping", config.HealthHandler.Ping)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
