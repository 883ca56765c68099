package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estately-inc/estately/internal/shared/config"
)

func TestNewDialector(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.DatabaseConfig
		want    string
		wantErr bool
	}{
		{"default is mysql", config.DatabaseConfig{}, "mysql", false},
		{"postgres", config.DatabaseConfig{Driver: "Postgres"}, "postgres", false},
		{"sqlite", config.DatabaseConfig{Driver: "sqlite", Database: ":memory:"}, "sqlite", false},
		{"sqlite without path", config.DatabaseConfig{Driver: "sqlite"}, "", true},
		{"unknown driver", config.DatabaseConfig{Driver: "oracle"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := newDialector(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Name())
		})
	}
}

func TestInitAndClose_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: config.DriverSQLite, Database: ":memory:"}

	require.NoError(t, Init(cfg))
	require.NotNil(t, Get())

	var one int
	require.NoError(t, Get().Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	assert.NoError(t, Close())
}
