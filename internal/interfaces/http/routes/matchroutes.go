package routes

import (
	"github.com/gin-gonic/gin"

	matchhandlers "matchtix/internal/interfaces/http/handlers/match"
)

type MatchRouteConfig struct {
	MatchHandler *matchhandlers.MatchHandler
}

// SetupMatchRoutes registers the schedule endpoints. No auth: the FIFA
// schedule is public reference data.
func SetupMatchRoutes(engine *gin.Engine, config *MatchRouteConfig) {
	matches := engine.Group("/api/matches")
	{
		matches.GET("", config.MatchHandler.ListMatches)
		matches.GET("/:number", config.MatchHandler.GetMatch)
	}
}
