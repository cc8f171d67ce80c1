package main

import (
	"os"

	"github.com/spf13/cobra"

	"matchtix/internal/interfaces/cli/migrate"
	"matchtix/internal/interfaces/cli/seed"
	"matchtix/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "matchtix",
		Short: "Matchtix - FIFA 2026 ticket bookkeeping service",
		Long:  `Matchtix is a multi-user web service for keeping track of FIFA 2026 match tickets, with built-in server, migration, and seeding commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
