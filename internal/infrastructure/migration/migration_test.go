package migration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/estately-inc/estately/internal/infrastructure/persistence/models"
	"github.com/estately-inc/estately/internal/shared/config"
	"github.com/estately-inc/estately/internal/shared/logger"
)

func openSQLite(t *testing.T, dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

// assertListingsSchema writes and reads a row through the persistence model
// so a drift between scripts and model fails here.
func assertListingsSchema(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.True(t, db.Migrator().HasTable(&models.ListingModel{}))
	require.True(t, db.Migrator().HasTable(&models.UserModel{}))

	now := time.Now().UTC()
	status := "Pending"
	row := &models.ListingModel{
		Slug:        "schema-check",
		Title:       "Schema check",
		Description: "desc",
		ImageSrc:    []byte(`["https://img.example.com/a.jpg"]`),
		Address:     "1 Main St",
		Category:    "Villa",
		ListingType: "SALE",
		FeatureType: "HOMES",
		Price:       100,
		Status:      &status,
		UserID:      1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, db.Create(row).Error)

	dup := *row
	dup.ID = 0
	assert.Error(t, db.Create(&dup).Error, "slug must be unique")
}

func TestGooseStrategy_UpAndDown(t *testing.T) {
	db := openSQLite(t, ":memory:")
	s := NewGooseStrategy(t.TempDir(), logger.NewNop())

	require.NoError(t, s.Migrate(db))
	assertListingsSchema(t, db)

	version, err := s.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	require.NoError(t, s.Migrate(db), "re-running is a no-op")

	require.NoError(t, s.MigrateDown(db, 1))
	assert.False(t, db.Migrator().HasTable(&models.ListingModel{}))
}

func TestGolangMigrateStrategy_Up(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "estately.db")

	require.NoError(t, NewGolangMigrateStrategy(logger.NewNop()).Migrate(openSQLite(t, dsn)))

	// the run closed its handle
	db := openSQLite(t, dsn)
	assertListingsSchema(t, db)

	version, err := NewGolangMigrateStrategy(logger.NewNop()).GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestGormAutoMigrateStrategy(t *testing.T) {
	db := openSQLite(t, ":memory:")
	require.NoError(t, NewGormAutoMigrateStrategy(logger.NewNop()).Migrate(db))
	assertListingsSchema(t, db)
}

func TestNewManager(t *testing.T) {
	tests := []struct {
		strategy string
		want     string
		wantErr  bool
	}{
		{"", StrategyGoose, false},
		{"goose", StrategyGoose, false},
		{"Golang-Migrate", StrategyGolangMigrate, false},
		{"automigrate", StrategyAutoMigrate, false},
		{"flyway", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			m, err := NewManager(&config.MigrationConfig{Strategy: tt.strategy}, logger.NewNop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.GetStrategy().GetName())
		})
	}
}

func TestManager_UnsupportedOperations(t *testing.T) {
	db := openSQLite(t, ":memory:")
	m := NewManagerWithStrategy(NewGormAutoMigrateStrategy(logger.NewNop()), logger.NewNop())

	require.NoError(t, m.Migrate(db))
	assert.Error(t, m.Rollback(db, 1))
	_, err := m.Version(db)
	assert.Error(t, err)
}

func TestGenerator_CreateMigration(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir, logger.NewNop())
	g.now = func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) }

	upPath, err := g.CreateMigration("postgres", "add_listing_views")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "migrate", "postgres", "20250304050607_add_listing_views.up.sql"), upPath)

	_, err = os.Stat(filepath.Join(dir, "migrate", "postgres", "20250304050607_add_listing_views.down.sql"))
	assert.NoError(t, err)

	_, err = g.CreateMigration("oracle", "nope")
	assert.Error(t, err)
}
