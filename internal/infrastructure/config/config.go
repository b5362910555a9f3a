package config

import (
	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Wallet
	Currency          string `env:"WALLET_CURRENCY"     envDefault:"USD"`
	MaxMovementAmount string `env:"MAX_MOVEMENT_AMOUNT" envDefault:"1000000000000"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Metrics
	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
