package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"path"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	pgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	"github.com/estately-inc/estately/internal/shared/logger"
)

// GolangMigrateStrategy applies the embedded up/down script pairs.
// golang-migrate closes the database handle when a run finishes, so each
// call should be the last use of db.
type GolangMigrateStrategy struct {
	logger logger.Interface
}

func NewGolangMigrateStrategy(log logger.Interface) *GolangMigrateStrategy {
	return &GolangMigrateStrategy{
		logger: log.With("component", "migration.golang-migrate"),
	}
}

func (s *GolangMigrateStrategy) createMigrateInstance(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	dir, err := dialectDir(db)
	if err != nil {
		return nil, err
	}

	driver, err := databaseDriver(dir, sqlDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s driver: %w", dir, err)
	}

	source, err := iofs.New(Scripts, path.Join("scripts", "migrate", dir))
	if err != nil {
		return nil, fmt.Errorf("failed to open migration scripts: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, dir, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

func databaseDriver(dialect string, sqlDB *sql.DB) (database.Driver, error) {
	switch dialect {
	case "mysql":
		return mysql.WithInstance(sqlDB, &mysql.Config{})
	case "postgres":
		return pgx.WithInstance(sqlDB, &pgx.Config{})
	default:
		return sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	}
}

func (s *GolangMigrateStrategy) Migrate(db *gorm.DB) error {
	m, err := s.createMigrateInstance(db)
	if err != nil {
		return err
	}
	defer m.Close()

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		s.logger.Errorw("failed to get current migration version", "error", err)
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	s.logger.Infow("current migration status",
		"version", currentVersion,
		"dirty", dirty)

	if dirty {
		s.logger.Warnw("database is in dirty state, please fix manually")
		return fmt.Errorf("database is in dirty state at version %d", currentVersion)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get final migration version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (s *GolangMigrateStrategy) GetName() string {
	return StrategyGolangMigrate
}

func (s *GolangMigrateStrategy) MigrateDown(db *gorm.DB, steps int) error {
	m, err := s.createMigrateInstance(db)
	if err != nil {
		return err
	}
	defer m.Close()

	s.logger.Infow("starting down migration", "steps", steps)

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("down migration failed", "error", err)
		return fmt.Errorf("failed to run down migrations: %w", err)
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GolangMigrateStrategy) GetVersion(db *gorm.DB) (int64, error) {
	m, err := s.createMigrateInstance(db)
	if err != nil {
		return 0, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	if dirty {
		return int64(version), fmt.Errorf("database is in dirty state at version %d", version)
	}
	return int64(version), nil
}

// Force sets the database migration version and clears the dirty flag.
func (s *GolangMigrateStrategy) Force(db *gorm.DB, version int) error {
	m, err := s.createMigrateInstance(db)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Force(version); err != nil {
		s.logger.Errorw("force migration failed", "error", err)
		return fmt.Errorf("failed to force version: %w", err)
	}

	s.logger.Infow("force migration completed successfully", "version", version)
	return nil
}
