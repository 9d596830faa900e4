package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config comes entirely from the environment. Env gates development-only
// behavior (the demo zombie spawner and verbose diagnostics).
type Config struct {
	Port    string `env:"PORT" envDefault:"8000"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	DataDir string `env:"DATA_DIR" envDefault:"data"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Development() bool {
	return c.Env != "production"
}
