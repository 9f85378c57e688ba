package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Backend names accepted by PINTORDLE_STORE.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Storage
	Backend    string `env:"PINTORDLE_STORE" envDefault:"sqlite"`
	DBPath     string `env:"PINTORDLE_DB" envDefault:"./data/pintordle.db"`
	FileDir    string `env:"PINTORDLE_DIR" envDefault:"./data"`
	StorageKey string `env:"PINTORDLE_STORAGE_KEY" envDefault:"gameHistory"`

	// Clipboard writes can be turned off on headless hosts.
	Clipboard bool `env:"PINTORDLE_CLIPBOARD" envDefault:"true"`
}

// Load parses the environment into a Config and checks it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("config: unknown PINTORDLE_STORE %q", c.Backend)
	}
	if c.StorageKey == "" {
		return fmt.Errorf("config: PINTORDLE_STORAGE_KEY must not be empty")
	}
	return nil
}
