// Package bootstrap prepares configuration, logging and storage for the
// command line entry points.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"forestdash/internal/domain/forestry"
	"forestdash/internal/infrastructure/config"
	"forestdash/internal/infrastructure/database"
	"forestdash/internal/infrastructure/memory"
	"forestdash/internal/infrastructure/migration"
	"forestdash/internal/infrastructure/persistence/seeds"
	"forestdash/internal/infrastructure/repository"
	"forestdash/internal/shared/biztime"
	sharedConfig "forestdash/internal/shared/config"
	"forestdash/internal/shared/db"
	"forestdash/internal/shared/logger"
)

// Init loads configuration and sets up the process-wide logger and
// business timezone.
func Init(env, configPath string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// GinMode maps a deployment environment name onto a gin mode.
func GinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// Store is an opened storage backend with the operations the commands need.
type Store struct {
	Driver string
	Repos  *forestry.Repositories
	// DB is nil for the memory driver.
	DB    *gorm.DB
	tx    seeds.Transactor
	reset seeds.ResetFunc
}

// OpenStore connects to the backend selected by cfg.Driver.
func OpenStore(cfg *sharedConfig.DatabaseConfig) (*Store, error) {
	if cfg.Driver == sharedConfig.DriverMemory {
		mem := memory.NewStore()
		return &Store{
			Driver: cfg.Driver,
			Repos:  mem.Repositories(),
			tx:     seeds.NoTransaction,
			reset: func(context.Context) error {
				mem.Reset()
				return nil
			},
		}, nil
	}

	if err := database.Init(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	gdb := database.Get()

	return &Store{
		Driver: cfg.Driver,
		Repos:  repository.NewRepositories(gdb),
		DB:     gdb,
		tx:     db.NewTransactionManager(gdb),
		reset:  seeds.GormReset(gdb),
	}, nil
}

// Migrate brings the schema up to date. The memory driver has no schema.
func (s *Store) Migrate(autoMigrate bool, log logger.Interface) error {
	if s.DB == nil {
		return nil
	}
	manager, err := migration.NewManager(s.Driver, autoMigrate, log)
	if err != nil {
		return err
	}
	return manager.Migrate(s.DB)
}

// Seed loads the embedded fixtures. See seeds.Seeder.Seed.
func (s *Store) Seed(ctx context.Context, reset bool, log logger.Interface) (bool, error) {
	fixtures, err := seeds.DefaultFixtures()
	if err != nil {
		return false, err
	}
	return seeds.NewSeeder(s.Repos, s.tx, s.reset, fixtures, log).Seed(ctx, reset)
}

func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}
	return database.Close()
}
