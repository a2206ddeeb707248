package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionSecret mirrors the deployment's cookie secret. The session id
	// itself is opaque and stored server-side, so the core never reads this,
	// but production deployments must still provide it.
	SessionSecret string `env:"SESSION_SECRET"`

	// BcryptCost is the password hashing work factor.
	BcryptCost int `env:"BCRYPT_COST, default=10"`

	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	// Store selects the session backend: "redis" or "memory".
	Store      string `env:"SESSION_STORE,       default=redis"`
	TTLSeconds int    `env:"SESSION_TTL_SECONDS, default=60"`
}

// TTL is the sliding inactivity window for sessions.
func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=basic_auth"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Production reports whether the service runs under the production
// environment, which tightens the session cookie policy.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if cfg.Production() && cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is required in production")
	}
	return &cfg, nil
}
