package main

import (
	"errors"
	"os"
	"time"

	"github.com/DjordjeVuckovic/news-popular/internal/cache"
	"gopkg.in/yaml.v3"
)

type CliConfig struct {
	ApiKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	CacheTTL string `yaml:"cache_ttl,omitempty"`
}

// LoadCliConfig reads the optional YAML config file and resolves the
// API key against the NYT_API_KEY environment variable, which wins
// over the file.
func LoadCliConfig(path string) (*CliConfig, error) {
	cfg := &CliConfig{}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, err
		}
	}

	if key := os.Getenv("NYT_API_KEY"); key != "" {
		cfg.ApiKey = key
	}
	if cfg.ApiKey == "" {
		return nil, errors.New("api key is required: set NYT_API_KEY or api_key in the config file")
	}

	return cfg, nil
}

func (c *CliConfig) TTL() time.Duration {
	if c.CacheTTL == "" {
		return cache.DefaultTTL
	}
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return cache.DefaultTTL
	}
	return d
}
