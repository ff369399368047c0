package migration

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"ticketdesk/internal/shared/logger"
)

const (
	StrategyGoose       = "goose"
	StrategyAutoMigrate = "auto"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks a strategy by name: "auto" uses gorm AutoMigrate,
// anything else the embedded goose scripts for driver.
func NewManager(strategyName, driver string, log logger.Interface) (*Manager, error) {
	var strategy Strategy

	switch strings.ToLower(strategyName) {
	case StrategyAutoMigrate:
		strategy = NewAutoMigrateStrategy(log)
	case StrategyGoose, "":
		gs, err := NewGooseStrategy(driver, log)
		if err != nil {
			return nil, err
		}
		strategy = gs
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", strategyName)
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
func (m *Manager) Migrate(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(ctx, db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
