package main

import (
	"os"

	"github.com/spf13/cobra"

	"forestdash/internal/interfaces/cli/migrate"
	"forestdash/internal/interfaces/cli/seed"
	"forestdash/internal/interfaces/cli/server"
	"forestdash/internal/shared/version"
)

// @title           Forest Administration Dashboard API
// @version         1.0
// @description     Officers, forest ranges, fire alerts, plantations, permits, statistics, Vision 2047 targets and officer performance.
// @BasePath        /api
func main() {
	rootCmd := &cobra.Command{
		Use:     "forestdash",
		Short:   "Forest administration dashboard API",
		Long:    `forestdash serves the forestry dashboard REST API and ships the migration and fixture tools it needs.`,
		Version: version.Current(),
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
