package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/estately-inc/estately/internal/shared/logger"
)

// Generator writes golang-migrate up/down script pairs.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
		now:         time.Now,
	}
}

// CreateMigration creates scripts/migrate/<dialect>/<timestamp>_<name>.{up,down}.sql
// and returns the path of the up file.
func (g *Generator) CreateMigration(dialect, name string) (string, error) {
	if _, ok := gooseDialects[dialect]; !ok {
		return "", fmt.Errorf("no migration scripts for dialect %q", dialect)
	}

	g.logger.Infow("creating new migration", "name", name, "dialect", dialect)

	now := g.now()
	timestamp := now.Format("20060102150405")
	dir := filepath.Join(g.scriptsPath, "migrate", dialect)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create scripts directory: %w", err)
	}

	created := now.Format(time.DateTime)
	upPath := filepath.Join(dir, fmt.Sprintf("%s_%s.up.sql", timestamp, name))
	downPath := filepath.Join(dir, fmt.Sprintf("%s_%s.down.sql", timestamp, name))

	up := fmt.Sprintf("-- Migration: %s\n-- Created: %s\n\n", name, created)
	if err := os.WriteFile(upPath, []byte(up), 0o644); err != nil {
		return "", fmt.Errorf("failed to create up migration file: %w", err)
	}

	down := fmt.Sprintf("-- Rollback Migration: %s\n-- Created: %s\n\n", name, created)
	if err := os.WriteFile(downPath, []byte(down), 0o644); err != nil {
		return "", fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully",
		"up_file", upPath,
		"down_file", downPath)

	return upPath, nil
}
