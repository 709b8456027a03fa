// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Frontends
const (
	FrontendEbiten   = "ebiten"
	FrontendTerminal = "terminal"
)

// Save backends
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// ErrMissingDatabaseURL is returned when the postgres backend has no DSN
var ErrMissingDatabaseURL = errors.New("postgres save backend requires TOMBS_DATABASE_URL")

// Config is the process configuration
type Config struct {
	Seed     int64  `env:"TOMBS_SEED" envDefault:"0"`
	Frontend string `env:"TOMBS_FRONTEND" envDefault:"ebiten"`
	Debug    bool   `env:"TOMBS_DEBUG" envDefault:"false"`

	SaveBackend string `env:"TOMBS_SAVE_BACKEND" envDefault:"file"`
	SavePath    string `env:"TOMBS_SAVE_PATH" envDefault:"savegame.dat"`
	DatabaseURL string `env:"TOMBS_DATABASE_URL"`

	RulesPath   string `env:"TOMBS_RULES_PATH"`
	CatalogPath string `env:"TOMBS_CATALOG_PATH"`

	WindowWidth  int `env:"TOMBS_WINDOW_WIDTH" envDefault:"1280"`
	WindowHeight int `env:"TOMBS_WINDOW_HEIGHT" envDefault:"800"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendEbiten, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}

	switch c.SaveBackend {
	case BackendFile, BackendSQLite:
		if c.SavePath == "" {
			return fmt.Errorf("%s save backend requires TOMBS_SAVE_PATH", c.SaveBackend)
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return ErrMissingDatabaseURL
		}
	default:
		return fmt.Errorf("unknown save backend %q", c.SaveBackend)
	}

	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
