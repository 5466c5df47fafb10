package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
)

type Config struct {
	// StoreDriver selects the snapshot backend: "sqlite" or "postgres".
	StoreDriver string `env:"STORE_DRIVER" envDefault:"sqlite"`
	// StoreDSN is a file path for sqlite or a connection URL for postgres.
	StoreDSN string `env:"STORE_DSN" envDefault:"backoffice.db"`

	JWTSecret        string `env:"JWT_SECRET,required"`
	JWTExpiryMinutes int    `env:"JWT_EXPIRY_MINUTES" envDefault:"60"`

	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`

	CardDailyLimit      float64 `env:"CARD_DAILY_LIMIT" envDefault:"2000"`
	LoanInterestRatePct float64 `env:"LOAN_INTEREST_RATE_PCT" envDefault:"5.0"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if cfg.StoreDriver != "sqlite" && cfg.StoreDriver != "postgres" {
		return nil, fmt.Errorf("config.Load: unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}
	return &cfg, nil
}
