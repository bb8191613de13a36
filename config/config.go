// Package config reads runtime tuning from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration. Every field has a sane default so
// the game runs with nothing set.
type Config struct {
	WindowWidth  int     `env:"SIDEBRAWL_WINDOW_WIDTH" envDefault:"960"`
	WindowHeight int     `env:"SIDEBRAWL_WINDOW_HEIGHT" envDefault:"540"`
	TPS          int     `env:"SIDEBRAWL_TPS" envDefault:"60"`
	Level        string  `env:"SIDEBRAWL_LEVEL" envDefault:"arena.tmx"`
	AssetsDir    string  `env:"SIDEBRAWL_ASSETS_DIR" envDefault:"assets"`
	MasterVolume float64 `env:"SIDEBRAWL_MASTER_VOLUME" envDefault:"1.0"`
	WatchPrefabs bool    `env:"SIDEBRAWL_WATCH_PREFABS" envDefault:"true"`
	RandomSeed   int64   `env:"SIDEBRAWL_SEED" envDefault:"0"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	return cfg, nil
}

// Dt is the fixed simulation step in seconds.
func (c *Config) Dt() float64 {
	return 1.0 / float64(c.TPS)
}
