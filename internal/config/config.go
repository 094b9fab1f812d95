package config

import (
	"os"
	"time"
)

// Config carries everything the storefront binary reads from its
// environment.
type Config struct {
	APIBaseURL    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Env distinguishes production from local runs; outside production
	// a .env file is loaded when present.
	Env string
}

func Load() Config {
	return Config{
		APIBaseURL:    getEnv("BOS_API_URL", "http://localhost:8080/api"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,
		Env:           getEnv("BOS_ENV", "development"),
	}
}

func (c Config) Production() bool {
	return c.Env == "production"
}

// RedisDialTimeout bounds the startup ping; an unreachable Redis makes
// the binary fall back to in-memory persistence instead of failing.
const RedisDialTimeout = 2 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
