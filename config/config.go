// Package config loads application configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// defaults lists every supported key. Each key is also readable from the
// environment with dots replaced by underscores (postgres.db_name -> POSTGRES_DB_NAME).
var defaults = map[string]any{
	"logging.level": "info",

	"server.host":             "0.0.0.0",
	"server.port":             8080,
	"server.shutdown_timeout": 5 * time.Second,

	"http.request_timeout": 3 * time.Second,

	"metrics.enabled": true,
	"metrics.path":    "/metrics",

	"postgres.host":            "localhost",
	"postgres.port":            5432,
	"postgres.user":            "postgres",
	"postgres.password":        "postgres",
	"postgres.db_name":         "team_service_db",
	"postgres.ssl_mode":        "disable",
	"postgres.migrations_dir":  "db/migrations",
	"postgres.migrate_timeout": 10 * time.Second,
	"postgres.query_timeout":   2 * time.Second,
	"postgres.max_conns":       10,
	"postgres.min_conns":       2,
}

// NewConfig loads configuration from config/.env and the environment.
func NewConfig() (*Config, error) {
	return load(envFile)
}

// load reads the optional dotenv file at path without overriding variables
// already set, then resolves every key against the environment.
func load(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
