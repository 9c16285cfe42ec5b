package migration

import (
	"fmt"

	"gorm.io/gorm"

	"forestdash/internal/shared/config"
	"forestdash/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks goose for MySQL and gorm AutoMigrate for sqlite. The
// embedded scripts use MySQL syntax. autoMigrate forces AutoMigrate.
func NewManager(driver string, autoMigrate bool, log logger.Interface) (*Manager, error) {
	var strategy Strategy

	switch {
	case driver == config.DriverSQLite, autoMigrate && driver == config.DriverMySQL:
		strategy = NewGormAutoMigrateStrategy(log)
	case driver == config.DriverMySQL:
		strategy = NewGooseStrategy(log)
	default:
		return nil, fmt.Errorf("driver %q has no migration strategy", driver)
	}

	return NewManagerWithStrategy(strategy, log), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
