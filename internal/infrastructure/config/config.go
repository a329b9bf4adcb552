package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend   BackendConfig
	Assistant AssistantConfig
	Redis     RedisConfig
	Session   SessionConfig
}

// BackendConfig points at the SmartHR backend that owns all business logic.
type BackendConfig struct {
	BaseURL string `env:"HR_BACKEND_URL, default=http://localhost:8081"`
	// Timeout of 0 leaves requests on the transport's default behaviour.
	Timeout time.Duration `env:"HR_BACKEND_TIMEOUT, default=0"`
}

// AssistantConfig points at the assistant/chat backend.
type AssistantConfig struct {
	BaseURL string        `env:"ASSISTANT_URL, default=http://localhost:8082"`
	Timeout time.Duration `env:"ASSISTANT_TIMEOUT, default=0"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SessionConfig struct {
	// TTL bounds how long an idle session survives in the store.
	TTL time.Duration `env:"SESSION_TTL, default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
