package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"forestdash/internal/infrastructure/config"
	"forestdash/internal/infrastructure/migration"
	"forestdash/internal/interfaces/cli/bootstrap"
	sharedConfig "forestdash/internal/shared/config"
	"forestdash/internal/shared/logger"
)

var (
	env        string
	configPath string
	name       string
	dir        string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long: `Manage the database schema. MySQL uses the versioned SQL scripts embedded in the binary;
sqlite is brought up to date from the models.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of MySQL migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the MySQL database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new timestamped SQL migration file. Rebuild the binary to embed it.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVarP(&dir, "dir", "d", migration.MySQLScriptsDir, "Directory to write the migration into")
	cmd.MarkFlagRequired("name")

	return cmd
}

func openStore() (*config.Config, *bootstrap.Store, logger.Interface, error) {
	cfg, log, err := bootstrap.Init(bootstrap.GinMode(env), configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	if cfg.Database.Driver == sharedConfig.DriverMemory {
		return nil, nil, nil, fmt.Errorf("the memory driver has no schema to migrate")
	}

	store, err := bootstrap.OpenStore(&cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, store, log, nil
}

// gooseFor rejects drivers whose schema is not managed by the SQL scripts.
func gooseFor(cfg *config.Config, log logger.Interface, op string) (*migration.GooseStrategy, error) {
	if cfg.Database.Driver != sharedConfig.DriverMySQL {
		return nil, fmt.Errorf("%s is only supported for the mysql driver, got %q", op, cfg.Database.Driver)
	}
	return migration.NewGooseStrategy(log), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	_, store, log, err := openStore()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer store.Close()

	log.Infow("running up migrations", "environment", env, "driver", store.Driver)

	if err := store.Migrate(false, log); err != nil {
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, store, log, err := openStore()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer store.Close()

	strategy, err := gooseFor(cfg, log, "down migration")
	if err != nil {
		return err
	}

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := strategy.MigrateDown(store.DB, steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, store, log, err := openStore()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer store.Close()

	strategy, err := gooseFor(cfg, log, "status check")
	if err != nil {
		return err
	}

	version, err := strategy.GetVersion(store.DB)
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := strategy.Status(store.DB); err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	if err := migration.Create(dir, name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, dir)
	return nil
}
