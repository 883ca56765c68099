package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/estately-inc/estately/internal/shared/config"
	"github.com/estately-inc/estately/internal/shared/logger"
)

const (
	StrategyGoose         = "goose"
	StrategyGolangMigrate = "golang-migrate"
	StrategyAutoMigrate   = "automigrate"
)

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate brings the schema up to date
	Migrate(db *gorm.DB) error
	GetName() string
}

// Rollbacker is implemented by strategies that can undo applied versions.
type Rollbacker interface {
	MigrateDown(db *gorm.DB, steps int) error
}

// Versioner is implemented by strategies that track a schema version.
type Versioner interface {
	GetVersion(db *gorm.DB) (int64, error)
}

// Manager handles database migrations with the configured strategy
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewStrategy builds the strategy named in cfg; an empty name means goose.
func NewStrategy(cfg *config.MigrationConfig, log logger.Interface) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Strategy)) {
	case "", StrategyGoose:
		return NewGooseStrategy(cfg.ScriptsPath, log), nil
	case StrategyGolangMigrate:
		return NewGolangMigrateStrategy(log), nil
	case StrategyAutoMigrate:
		return NewGormAutoMigrateStrategy(log), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy: %q", cfg.Strategy)
	}
}

func NewManager(cfg *config.MigrationConfig, log logger.Interface) (*Manager, error) {
	strategy, err := NewStrategy(cfg, log)
	if err != nil {
		return nil, err
	}
	return NewManagerWithStrategy(strategy, log), nil
}

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
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) Rollback(db *gorm.DB, steps int) error {
	r, ok := m.strategy.(Rollbacker)
	if !ok {
		return fmt.Errorf("rollback is not supported by the %s strategy", m.strategy.GetName())
	}
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}
	return r.MigrateDown(db, steps)
}

func (m *Manager) Version(db *gorm.DB) (int64, error) {
	v, ok := m.strategy.(Versioner)
	if !ok {
		return 0, fmt.Errorf("versions are not tracked by the %s strategy", m.strategy.GetName())
	}
	return v.GetVersion(db)
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// GetStrategyInfo returns information about the current strategy
func (m *Manager) GetStrategyInfo() map[string]interface{} {
	return map[string]interface{}{
		"name":        m.strategy.GetName(),
		"description": getStrategyDescription(m.strategy.GetName()),
	}
}

func getStrategyDescription(strategyName string) string {
	switch strategyName {
	case StrategyAutoMigrate:
		return "GORM AutoMigrate - Automatic schema migration based on struct definitions"
	case StrategyGolangMigrate:
		return "golang-migrate - Version-controlled up/down SQL scripts"
	case StrategyGoose:
		return "goose - Version-controlled annotated SQL scripts"
	default:
		return "Unknown migration strategy"
	}
}
