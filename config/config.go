package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant specifics
	Anthropic AnthropicConfig
	Session   SessionConfig
	Telegram  TelegramConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AnthropicConfig configures the LLM client used by the router and handlers.
type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// SessionConfig selects and configures the session checkpoint store.
// Backend is "memory" or "redis".
type SessionConfig struct {
	Backend string
	Redis   RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Anthropic
	cfg.Anthropic.APIKey = viper.GetString("anthropic.api_key")
	cfg.Anthropic.Model = viper.GetString("anthropic.model")
	cfg.Anthropic.BaseURL = viper.GetString("anthropic.base_url")
	cfg.Anthropic.Timeout = viper.GetDuration("anthropic.timeout")
	if apiKey := viper.GetString("anthropic_api_key"); apiKey != "" {
		cfg.Anthropic.APIKey = apiKey
	}

	// Session store
	cfg.Session.Backend = viper.GetString("session.backend")
	cfg.Session.Redis.Addr = viper.GetString("session.redis.addr")
	cfg.Session.Redis.Password = viper.GetString("session.redis.password")
	cfg.Session.Redis.DB = viper.GetInt("session.redis.db")
	cfg.Session.Redis.Prefix = viper.GetString("session.redis.prefix")
	cfg.Session.Redis.TTL = viper.GetDuration("session.redis.ttl")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Session.Redis.Addr = redisAddr
	}

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Rate limiting
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Anthropic.APIKey == "" {
		return fmt.Errorf("anthropic api key is required - set anthropic.api_key in config.yaml or ANTHROPIC_API_KEY")
	}
	switch c.Session.Backend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if c.Session.Redis.Addr == "" {
			return fmt.Errorf("session.redis.addr is required when session.backend is redis")
		}
	default:
		return fmt.Errorf("unknown session backend %q (expected %s or %s)",
			c.Session.Backend, SessionBackendMemory, SessionBackendRedis)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("anthropic.model", "claude-3-haiku-20240307")
	viper.SetDefault("anthropic.timeout", "30s")

	viper.SetDefault("session.backend", SessionBackendMemory)
	viper.SetDefault("session.redis.prefix", "assistant:session:")
	viper.SetDefault("session.redis.ttl", "0s")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
}
