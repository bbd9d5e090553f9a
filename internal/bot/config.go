package bot

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Token     string `env:"TG_BOT_TOKEN,required"` // Telegram bot API token
	WebAppURL string `env:"WEBAPP_URL,required"`   // URL of the hosted mini-app

	Env       string `env:"ENV" envDefault:"dev"`         // Environment (dev, staging, prod)
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`  // Log level (debug, info, warn, error)
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // Log format (json, text)
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
