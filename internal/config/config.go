package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

var (
	ErrMissingTelegramToken = errors.New("TELEGRAM_BOT_TOKEN is required")
	ErrMissingCatalogKey    = errors.New("TMDB_API_KEY is required")
	ErrMissingNLPToken      = errors.New("WIT_AI_TOKEN is required")
)

type Config struct {
	Telegram  TelegramConfig
	Catalog   CatalogConfig
	NLP       NLPConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
}

type TelegramConfig struct {
	Token string
	Debug bool
}

type CatalogConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type NLPConfig struct {
	Token   string
	BaseURL string
	Timeout time.Duration
}

type LogConfig struct {
	Level string
}

type RateLimitConfig struct {
	TriggersPerMinute int
}

type MetricsConfig struct {
	Addr string
}

func Load() (*Config, error) {
	cfg := &Config{
		Telegram: TelegramConfig{
			Token: os.Getenv("TELEGRAM_BOT_TOKEN"),
			Debug: getEnvOrDefault("TELEGRAM_DEBUG", "false") == "true",
		},
		Catalog: CatalogConfig{
			APIKey:  os.Getenv("TMDB_API_KEY"),
			BaseURL: getEnvOrDefault("TMDB_BASE_URL", "https://api.themoviedb.org"),
			Timeout: time.Duration(getEnvIntOrDefault("TMDB_TIMEOUT_SEC", 10)) * time.Second,
		},
		NLP: NLPConfig{
			Token:   os.Getenv("WIT_AI_TOKEN"),
			BaseURL: getEnvOrDefault("WIT_AI_BASE_URL", "https://api.wit.ai"),
			Timeout: time.Duration(getEnvIntOrDefault("WIT_AI_TIMEOUT_SEC", 15)) * time.Second,
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		RateLimit: RateLimitConfig{
			TriggersPerMinute: getEnvIntOrDefault("RATE_LIMIT_PER_MINUTE", 10),
		},
		Metrics: MetricsConfig{
			Addr: getEnvOrDefault("METRICS_ADDR", ":9090"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return ErrMissingTelegramToken
	}
	if c.Catalog.APIKey == "" {
		return ErrMissingCatalogKey
	}
	if c.NLP.Token == "" {
		return ErrMissingNLPToken
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
