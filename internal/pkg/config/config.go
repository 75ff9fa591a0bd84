package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// BaseURL is the root of the remote complaint service API.
	BaseURL string `env:"API_BASE_URL, default=http://localhost:5000/api"`
	// CredentialsBackend selects where the session persists: file or redis.
	CredentialsBackend string `env:"CREDENTIALS_BACKEND, default=file"`
	// CredentialsFile overrides the session file path (file backend only).
	CredentialsFile string `env:"CREDENTIALS_FILE"`
	LogLevel        string `env:"LOG_LEVEL, default=info"`

	Redis     RedisConfig
	Devserver DevserverConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type DevserverConfig struct {
	Port      string `env:"PORT,       default=5000"`
	JWTSecret string `env:"JWT_SECRET, default=devserver-local-secret"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
