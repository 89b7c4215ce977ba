// Package config reads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store backends accepted by MARKOV_STORE.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Serve configures "markov serve". Flags override individual fields after
// parsing.
type Serve struct {
	Port     int    `env:"MARKOV_PORT" envDefault:"8080"`
	LogLevel string `env:"MARKOV_LOG_LEVEL" envDefault:"info"`

	Store    string        `env:"MARKOV_STORE" envDefault:"memory"`
	StoreDir string        `env:"MARKOV_STORE_DIR"`
	RunTTL   time.Duration `env:"MARKOV_RUN_TTL"`

	RedisAddr     string `env:"MARKOV_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"MARKOV_REDIS_PASSWORD"`
	RedisDB       int    `env:"MARKOV_REDIS_DB"`
}

// LoadServe parses the environment into a Serve config.
func LoadServe() (*Serve, error) {
	var cfg Serve
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	switch cfg.Store {
	case StoreMemory, StoreFile, StoreRedis:
	default:
		return nil, fmt.Errorf("unknown store backend %q (want memory, file or redis)", cfg.Store)
	}
	return &cfg, nil
}
