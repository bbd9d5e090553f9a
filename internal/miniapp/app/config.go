package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseFile string `env:"DATABASE_FILE" envDefault:"kompanion.db"` // Path to the SQLite database file

	Env       string `env:"ENV" envDefault:"dev"`         // Environment (dev, staging, prod)
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`  // Log level (debug, info, warn, error)
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // Log format (json, text)

	Port                int           `env:"PORT" envDefault:"8080"`                  // HTTP server port
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"` // Graceful shutdown timeout
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
