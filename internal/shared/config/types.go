package config

import (
	"fmt"
	"strings"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// ShutdownTimeoutSeconds bounds graceful shutdown
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s *ServerConfig) ShutdownTimeout() time.Duration {
	if s.ShutdownTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// Supported database drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	// SlowQueryMillis marks queries slower than this as slow in the gorm log
	SlowQueryMillis int `mapstructure:"slow_query_millis"`
}

// GetDriver returns the configured driver, defaulting to mysql.
func (d *DatabaseConfig) GetDriver() string {
	driver := strings.ToLower(strings.TrimSpace(d.Driver))
	if driver == "" {
		return DriverMySQL
	}
	return driver
}

// GetDSN builds the connection string for the configured driver.
// For sqlite the database field is used as the file path (":memory:" allowed).
func (d *DatabaseConfig) GetDSN() string {
	switch d.GetDriver() {
	case DriverPostgres:
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
	case DriverSQLite:
		return d.Database
	default:
		// migration scripts are executed as one multi-statement batch
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&multiStatements=true",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	}
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type MigrationConfig struct {
	// Strategy is one of "goose", "golang-migrate" or "automigrate"
	Strategy    string `mapstructure:"strategy"`
	ScriptsPath string `mapstructure:"scripts_path"`
}

type ListingConfig struct {
	// StatsCacheTTLSeconds controls how long dashboard counters are cached in redis
	StatsCacheTTLSeconds int `mapstructure:"stats_cache_ttl_seconds"`
	// CreatePerHour limits listing creations per user; 0 disables the limit
	CreatePerHour int `mapstructure:"create_per_hour"`
	// SlugMaxAttempts bounds the suffix retry loop on slug conflicts
	SlugMaxAttempts int `mapstructure:"slug_max_attempts"`
}

func (l *ListingConfig) StatsCacheTTL() time.Duration {
	if l.StatsCacheTTLSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(l.StatsCacheTTLSeconds) * time.Second
}

type PermissionConfig struct {
	// Persist stores casbin policies in the database via the gorm adapter
	Persist bool `mapstructure:"persist"`
}
