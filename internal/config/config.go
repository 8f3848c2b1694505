package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Provider ProviderConfig `mapstructure:"provider" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains the settings for verifying platform-issued
// tokens. Token issuance belongs to the host platform; this service
// only validates.
type AuthConfig struct {
	TokenSecret string `mapstructure:"token_secret" validate:"required,min=32"`
}

// ProviderConfig contains the chat-completion provider settings.
// APIKey may legitimately be empty at startup: the gateway reports a
// missing key per request rather than refusing to boot.
type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"    validate:"required"`
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

// CacheConfig contains the fingerprint cache settings. TTLSeconds is
// clamped to a floor of 60 during load. Backend selects the storage:
// "memory" for a single instance, "redis" when running more than one.
type CacheConfig struct {
	TTLSeconds int    `mapstructure:"ttl_seconds" validate:"required,gte=60"`
	Backend    string `mapstructure:"backend"     validate:"required,oneof=memory redis"`
	RedisAddr  string `mapstructure:"redis_addr"  validate:"required_if=Backend redis"`
}
