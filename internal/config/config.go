package config

import "github.com/caarlos0/env/v11"

type Config struct {
	// OpenRouterAPIKey may be empty; requests then fail with 500 at the handler.
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY"`

	SiteURL string `env:"YOUR_SITE_URL" envDefault:"http://localhost:5000"`
	AppName string `env:"YOUR_APP_NAME" envDefault:"FlaskVueApp"`

	Address   string `env:"ADDRESS"    envDefault:"0.0.0.0:5000"`
	DBPath    string `env:"DB_PATH"    envDefault:"db.sqlite"`
	StaticDir string `env:"STATIC_DIR" envDefault:"static"`

	Model string `env:"MODEL" envDefault:"google/gemma-3-27b-it:free"`

	HistoryRetentionDays int `env:"HISTORY_RETENTION_DAYS" envDefault:"30"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
