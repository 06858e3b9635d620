package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseFile        string        `env:"SHM_DATABASE_FILE" envDefault:"shm.db"`     // Path to SQLite database file
	MaxInviteBytes      int64         `env:"SHM_MAX_INVITE_BYTES" envDefault:"1048576"` // Largest accepted .ics upload
	Env                 string        `env:"ENV" envDefault:"dev"`                      // Environment (dev, staging, prod)
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`               // Log level (debug, info, warn, error)
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`              // Log format (json, text)
	Port                int           `env:"PORT" envDefault:"8080"`                    // HTTP server port
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`    // Graceful shutdown timeout
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DatabaseFile == "" {
		return Config{}, errors.New("SHM_DATABASE_FILE must not be empty")
	}
	if cfg.MaxInviteBytes <= 0 {
		return Config{}, fmt.Errorf("SHM_MAX_INVITE_BYTES must be positive, got %d", cfg.MaxInviteBytes)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("PORT out of range: %d", cfg.Port)
	}

	return cfg, nil
}
