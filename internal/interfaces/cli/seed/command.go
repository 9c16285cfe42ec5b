package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"forestdash/internal/interfaces/cli/bootstrap"
	sharedConfig "forestdash/internal/shared/config"
	"forestdash/internal/shared/logger"
)

var (
	env        string
	configPath string
	reset      bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load fixture data",
		Long: `Load the bundled officers, ranges, alerts, plantations, permits, statistics, targets and
performance records. Nothing is written when officers already exist unless --reset is given.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&reset, "reset", false, "Delete all records before loading the fixtures")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(bootstrap.GinMode(env), configPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Database.Driver == sharedConfig.DriverMemory {
		return fmt.Errorf("the memory driver does not persist; use 'server --seed' instead")
	}

	store, err := bootstrap.OpenStore(&cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	// sqlite files may be fresh; MySQL schema is owned by 'migrate up'.
	if cfg.Database.Driver == sharedConfig.DriverSQLite {
		if err := store.Migrate(false, log); err != nil {
			return err
		}
	}

	seeded, err := store.Seed(cmd.Context(), reset, log)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	if seeded {
		fmt.Fprintln(cmd.OutOrStdout(), "Fixtures loaded")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Store already has data; nothing loaded (use --reset to replace it)")
	}
	return nil
}
