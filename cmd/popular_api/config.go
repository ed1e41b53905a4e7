package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/DjordjeVuckovic/news-popular/internal/cache"
	"github.com/DjordjeVuckovic/news-popular/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type PopularApiConfig struct {
	ApiKey   string
	BaseURL  string
	CacheTTL time.Duration
}

func (as *AppConfig) Load() (*PopularApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/popular_api/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	apiKey := os.Getenv("NYT_API_KEY")
	if apiKey == "" {
		return nil, errors.New("NYT_API_KEY is required")
	}

	cacheTTL := cache.DefaultTTL
	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.New("CACHE_TTL must be a duration like 5m or 30s")
		}
		cacheTTL = parsed
	}

	return &PopularApiConfig{
		ApiKey:   apiKey,
		BaseURL:  os.Getenv("NYT_BASE_URL"),
		CacheTTL: cacheTTL,
	}, nil
}
