package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Documented defaults applied when a setting is absent from the
// environment.
const (
	DefaultPort       = 8080
	DefaultLogLevel   = "info"
	DefaultModel      = "gpt-4o-mini"
	DefaultBaseURL    = "https://api.openai.com"
	DefaultCacheTTL   = 900
	DefaultCacheStore = "memory"

	// MinCacheTTL is the enforced floor for the cache TTL in seconds.
	// Values below it are clamped up, not rejected.
	MinCacheTTL = 60
)

// Load reads configuration from environment variables with the
// STUDYAID_ prefix (e.g. STUDYAID_PROVIDER_API_KEY), applies defaults
// and sanitation, and validates the result. Returns a populated Config
// or an error if validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("auth.token_secret", "")
	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.model", DefaultModel)
	v.SetDefault("provider.base_url", DefaultBaseURL)
	v.SetDefault("cache.ttl_seconds", DefaultCacheTTL)
	v.SetDefault("cache.backend", DefaultCacheStore)
	v.SetDefault("cache.redis_addr", "")

	v.SetEnvPrefix("STUDYAID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	sanitize(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// sanitize normalizes loaded values the same way regardless of where
// they came from: the credential is trimmed of surrounding whitespace,
// blank fields fall back to their defaults, and the cache TTL is
// clamped to its floor.
func sanitize(cfg *Config) {
	cfg.Provider.APIKey = strings.TrimSpace(cfg.Provider.APIKey)

	if strings.TrimSpace(cfg.Provider.Model) == "" {
		cfg.Provider.Model = DefaultModel
	}
	if strings.TrimSpace(cfg.Provider.BaseURL) == "" {
		cfg.Provider.BaseURL = DefaultBaseURL
	}
	if strings.TrimSpace(cfg.Cache.Backend) == "" {
		cfg.Cache.Backend = DefaultCacheStore
	}

	if cfg.Cache.TTLSeconds < MinCacheTTL {
		cfg.Cache.TTLSeconds = MinCacheTTL
	}
}
