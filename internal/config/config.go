package config

import (
	"errors"
	"os"
	"time"
)

// Config holds all runtime configuration for the application.
type Config struct {
	Port        string
	DBPath      string
	RedisAddr   string
	JWTSecret   string
	Environment string
	TokenTTL    time.Duration

	// Login/register attempts allowed per client IP per minute. Zero disables
	// the limiter.
	AuthRateLimit int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "./carhub.db"),
		RedisAddr:     getEnv("REDIS_CONNSTRING", "localhost:6379"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		TokenTTL:      72 * time.Hour,
		AuthRateLimit: 30,
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.New("TOKEN_TTL must be a valid duration string")
		}
		cfg.TokenTTL = ttl
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

// IsDevelopment reports whether the server runs in local development mode.
// Session cookies are only marked Secure outside of it.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
