// Package config loads client configuration from environment variables,
// optionally seeded from a .env file.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"susie.mx/gokemon-client/internal/errors"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all client configuration loaded from environment variables.
type Config struct {
	API       APIConfig
	Redis     RedisConfig
	Countdown CountdownConfig
}

// APIConfig holds remote API connection settings.
type APIConfig struct {
	BaseURL       string        `envconfig:"GOKEMON_API_URL" default:"http://localhost:8080"`
	SessionCookie string        `envconfig:"GOKEMON_SESSION" default:""`
	HTTPTimeout   time.Duration `envconfig:"GOKEMON_HTTP_TIMEOUT" default:"15s"`
}

// RedisConfig holds the preference store settings.
type RedisConfig struct {
	Address string `envconfig:"REDIS_ADDRESS" default:"localhost:6379"`
}

// CountdownConfig holds the selection countdown settings.
type CountdownConfig struct {
	TickInterval time.Duration `envconfig:"COUNTDOWN_TICK_INTERVAL" default:"1s"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "loading configuration")
	}
	return &cfg, nil
}
