package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"matchtix/internal/domain/user"
	"matchtix/internal/infrastructure/auth"
	"matchtix/internal/infrastructure/config"
	"matchtix/internal/infrastructure/database"
	"matchtix/internal/infrastructure/migration"
	"matchtix/internal/infrastructure/persistence/seeds"
	"matchtix/internal/infrastructure/repository"
	httpRouter "matchtix/internal/interfaces/http"
	"matchtix/internal/shared/logger"
	"matchtix/internal/shared/version"
)

var (
	env                string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Matchtix HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	ginMode := mapEnvToGinMode(env)

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = ginMode

	// Production cookies must survive a cross-origin frontend: Secure plus
	// SameSite=None, regardless of what the config file says.
	if ginMode == gin.ReleaseMode {
		cfg.Auth.Cookie.Secure = true
		cfg.Auth.Cookie.SameSite = "None"
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"version", version.Version,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if err := handleMigrations(env, cfg.Database.Driver); err != nil {
		logger.Fatal("migration handling failed", "error", err)
	}

	ctx := context.Background()

	if err := seedMatchSchedule(ctx); err != nil {
		logger.Fatal("failed to seed match schedule", "error", err)
	}

	if err := bootstrapAdminUser(ctx, cfg); err != nil {
		logger.Fatal("failed to bootstrap admin user", "error", err)
	}

	redisClient := connectRedis(ctx, cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	router := httpRouter.NewRouter(database.Get(), redisClient, cfg, logger.NewLogger())

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func handleMigrations(environment, driver string) error {
	if skipMigrationCheck {
		logger.Info("skipping migration check")
		return nil
	}

	if autoMigrate {
		if environment == "production" {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}

		logger.Info("running auto-migration")
		migrationManager := migration.NewManagerWithStrategy(migration.NewGormAutoMigrateStrategy())
		if err := migrationManager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		logger.Info("auto-migration completed successfully")
		return nil
	}

	if mapEnvToGinMode(environment) == gin.DebugMode {
		// Development keeps the schema in sync with the models automatically.
		migrationManager := migration.NewManager(environment, driver)
		if err := migrationManager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("development migration failed: %w", err)
		}
		return nil
	}

	logger.Info("checking migration status")

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		logger.Warn("failed to get migration scripts path", "error", err)
		return nil
	}

	strategy := migration.NewGooseStrategy(scriptsPath, driver)
	ver, err := strategy.GetVersion(database.Get())
	if err != nil {
		logger.Warn("failed to check migration status", "error", err)
	} else {
		logger.Info("current migration version", "version", ver)
	}

	logger.Info("migration check completed")

	return nil
}

// seedMatchSchedule upserts the tournament schedule. Safe to run on
// every startup.
func seedMatchSchedule(ctx context.Context) error {
	schedule, err := seeds.Matches()
	if err != nil {
		return fmt.Errorf("failed to build match schedule: %w", err)
	}

	matchRepo := repository.NewMatchRepository(database.Get())
	if err := matchRepo.Seed(ctx, schedule); err != nil {
		return fmt.Errorf("failed to seed matches: %w", err)
	}

	count, err := matchRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count matches: %w", err)
	}

	logger.Info("match schedule seeded", "matches", count)
	return nil
}

// bootstrapAdminUser creates the default admin account when the user
// table is empty, so a fresh deployment is immediately usable.
func bootstrapAdminUser(ctx context.Context, cfg *config.Config) error {
	userRepo := repository.NewUserRepository(database.Get())

	count, err := userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	hash, err := hasher.Hash(cfg.Auth.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin, err := user.NewUser("admin", hash)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to persist admin user: %w", err)
	}

	logger.Info("default admin user created", "username", "admin")
	return nil
}

// connectRedis returns a verified client, or nil when Redis is disabled
// or unreachable. A nil client disables rate limiting rather than
// blocking startup.
func connectRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, rate limiting disabled", "error", err)
		_ = client.Close()
		return nil
	}

	logger.Info("redis connection established", "addr", cfg.Redis.GetAddr())
	return client
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return "release"
	case "development", "dev":
		return "debug"
	case "test", "testing":
		return "test"
	case "debug":
		return "debug"
	case "release":
		return "release"
	default:
		return "debug"
	}
}
