// Package http wires the gin engine: middleware, handlers, and routes.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "matchtix/internal/application/auth/usecases"
	chatusecases "matchtix/internal/application/chat/usecases"
	matchusecases "matchtix/internal/application/match/usecases"
	profileusecases "matchtix/internal/application/profile/usecases"
	ticketusecases "matchtix/internal/application/ticket/usecases"
	"matchtix/internal/infrastructure/assistant"
	"matchtix/internal/infrastructure/auth"
	"matchtix/internal/infrastructure/config"
	"matchtix/internal/infrastructure/database"
	"matchtix/internal/infrastructure/ratelimit"
	"matchtix/internal/infrastructure/repository"
	authhandlers "matchtix/internal/interfaces/http/handlers/auth"
	chathandlers "matchtix/internal/interfaces/http/handlers/chat"
	healthhandlers "matchtix/internal/interfaces/http/handlers/health"
	matchhandlers "matchtix/internal/interfaces/http/handlers/match"
	profilehandlers "matchtix/internal/interfaces/http/handlers/profile"
	tickethandlers "matchtix/internal/interfaces/http/handlers/ticket"
	"matchtix/internal/interfaces/http/middleware"
	"matchtix/internal/interfaces/http/routes"
	"matchtix/internal/shared/logger"
	"matchtix/internal/shared/version"
)

// Router assembles the HTTP surface from its dependencies.
type Router struct {
	engine *gin.Engine
}

type databasePinger struct{}

func (databasePinger) Ping() error { return database.Ping() }

// NewRouter creates the HTTP router with all dependencies wired.
// redisClient may be nil, in which case login throttling is disabled.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Metrics(),
		middleware.SecurityHeaders(cfg.Server.Mode),
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	matchRepo := repository.NewMatchRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	sessionLifetime := time.Duration(cfg.Auth.Session.ExpDays) * 24 * time.Hour
	assistantClient := assistant.NewHTTPClient(&cfg.Assistant)

	registerUC := authusecases.NewRegisterUseCase(userRepo, sessionRepo, hasher, sessionLifetime, log)
	loginUC := authusecases.NewLoginUseCase(userRepo, sessionRepo, hasher, sessionLifetime, log)
	logoutUC := authusecases.NewLogoutUseCase(sessionRepo, log)
	currentUserUC := authusecases.NewCurrentUserUseCase(userRepo)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, matchRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, matchRepo, userRepo, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, userRepo, log)

	listMatchesUC := matchusecases.NewListMatchesUseCase(matchRepo)
	getMatchUC := matchusecases.NewGetMatchUseCase(matchRepo)

	getProfileUC := profileusecases.NewGetProfileUseCase(userRepo)
	updateProfileUC := profileusecases.NewUpdateProfileUseCase(userRepo, log)

	processMessageUC := chatusecases.NewProcessMessageUseCase(assistantClient, ticketRepo, matchRepo, userRepo, log)

	authMiddleware := middleware.NewSessionAuthMiddleware(sessionRepo, userRepo, log)

	var loginRateLimit gin.HandlerFunc
	if redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		loginRateLimit = middleware.LoginRateLimit(limiter, ratelimit.RateLimitConfig{
			RequestsPerMinute: 10,
			RequestsPerHour:   100,
		}, log)
	}

	authHandler := authhandlers.NewAuthHandler(registerUC, loginUC, logoutUC, currentUserUC, cfg.Auth)
	ticketHandler := tickethandlers.NewTicketHandler(createTicketUC, updateTicketUC, deleteTicketUC, listTicketsUC, log)
	matchHandler := matchhandlers.NewMatchHandler(listMatchesUC, getMatchUC)
	profileHandler := profilehandlers.NewProfileHandler(getProfileUC, updateProfileUC, log)
	chatHandler := chathandlers.NewChatHandler(processMessageUC, log)
	healthHandler := healthhandlers.NewHealthHandler(databasePinger{}, version.Version)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
		LoginRateLimit: loginRateLimit,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupMatchRoutes(engine, &routes.MatchRouteConfig{
		MatchHandler: matchHandler,
	})
	routes.SetupProfileRoutes(engine, &routes.ProfileRouteConfig{
		ProfileHandler: profileHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupChatRoutes(engine, &routes.ChatRouteConfig{
		ChatHandler:    chatHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupHealthRoutes(engine, &routes.HealthRouteConfig{
		HealthHandler: healthHandler,
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
