package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr error
	}{
		{
			name: "valid config",
			envVars: map[string]string{
				"TELEGRAM_BOT_TOKEN": "test_token",
				"TMDB_API_KEY":       "tmdb_key",
				"WIT_AI_TOKEN":       "wit_token",
			},
			wantErr: nil,
		},
		{
			name: "missing telegram token",
			envVars: map[string]string{
				"TMDB_API_KEY": "tmdb_key",
				"WIT_AI_TOKEN": "wit_token",
			},
			wantErr: ErrMissingTelegramToken,
		},
		{
			name: "missing catalog key",
			envVars: map[string]string{
				"TELEGRAM_BOT_TOKEN": "test_token",
				"WIT_AI_TOKEN":       "wit_token",
			},
			wantErr: ErrMissingCatalogKey,
		},
		{
			name: "missing nlp token",
			envVars: map[string]string{
				"TELEGRAM_BOT_TOKEN": "test_token",
				"TMDB_API_KEY":       "tmdb_key",
			},
			wantErr: ErrMissingNLPToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars()

			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}
			defer clearEnvVars()

			cfg, err := Load()

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("Load() unexpected error = %v", err)
				return
			}

			if cfg == nil {
				t.Error("Load() returned nil config")
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	clearEnvVars()
	os.Setenv("TELEGRAM_BOT_TOKEN", "test_token")
	os.Setenv("TMDB_API_KEY", "tmdb_key")
	os.Setenv("WIT_AI_TOKEN", "wit_token")
	defer clearEnvVars()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %v, want %v", cfg.Log.Level, "info")
	}
	if cfg.Catalog.BaseURL != "https://api.themoviedb.org" {
		t.Errorf("Catalog.BaseURL = %v", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.Timeout != 10*time.Second {
		t.Errorf("Catalog.Timeout = %v, want 10s", cfg.Catalog.Timeout)
	}
	if cfg.NLP.BaseURL != "https://api.wit.ai" {
		t.Errorf("NLP.BaseURL = %v", cfg.NLP.BaseURL)
	}
	if cfg.NLP.Timeout != 15*time.Second {
		t.Errorf("NLP.Timeout = %v, want 15s", cfg.NLP.Timeout)
	}
	if cfg.RateLimit.TriggersPerMinute != 10 {
		t.Errorf("RateLimit.TriggersPerMinute = %v, want 10", cfg.RateLimit.TriggersPerMinute)
	}
	if cfg.Metrics.Addr != ":9090" {
		t.Errorf("Metrics.Addr = %v, want :9090", cfg.Metrics.Addr)
	}
	if cfg.Telegram.Debug {
		t.Error("Telegram.Debug should default to false")
	}
}

func TestGetEnvIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		envValue   string
		defaultVal int
		want       int
	}{
		{"valid int", "42", 10, 42},
		{"empty string", "", 10, 10},
		{"invalid int", "abc", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_INT", tt.envValue)
			defer os.Unsetenv("TEST_INT")

			got := getEnvIntOrDefault("TEST_INT", tt.defaultVal)
			if got != tt.want {
				t.Errorf("getEnvIntOrDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}

func clearEnvVars() {
	envVars := []string{
		"TELEGRAM_BOT_TOKEN",
		"TELEGRAM_DEBUG",
		"TMDB_API_KEY",
		"TMDB_BASE_URL",
		"TMDB_TIMEOUT_SEC",
		"WIT_AI_TOKEN",
		"WIT_AI_BASE_URL",
		"WIT_AI_TIMEOUT_SEC",
		"LOG_LEVEL",
		"RATE_LIMIT_PER_MINUTE",
		"METRICS_ADDR",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}
