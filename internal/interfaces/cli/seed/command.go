package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"matchtix/internal/infrastructure/config"
	"matchtix/internal/infrastructure/database"
	"matchtix/internal/infrastructure/persistence/seeds"
	"matchtix/internal/infrastructure/repository"
	"matchtix/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the match schedule",
		Long:  `Load the FIFA 2026 match schedule into the database, upserting by match number. Safe to run repeatedly.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	ctx := context.Background()

	schedule, err := seeds.Matches()
	if err != nil {
		return fmt.Errorf("failed to build match schedule: %w", err)
	}

	matchRepo := repository.NewMatchRepository(database.Get())
	if err := matchRepo.Seed(ctx, schedule); err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("failed to seed matches: %w", err)
	}

	count, err := matchRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count matches: %w", err)
	}

	log.Infow("match schedule seeded", "matches", count)
	fmt.Printf("Seeded %d matches\n", count)

	return nil
}
