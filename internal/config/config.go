package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port       string
	APIBaseURL string
	APITimeout time.Duration
	SessionDB  string
	Env        string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by the caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.APIBaseURL = getEnv("API_BASE_URL", "http://localhost:5000/api")
	cfg.APITimeout = time.Duration(parseInt("API_TIMEOUT", 10)) * time.Second
	cfg.SessionDB = getEnv("SESSION_DB", "pausemanager.db")
	cfg.Env = getEnv("APP_ENV", "development")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Printf("invalid integer for %s: %s", key, v)
			return def
		}
		return n
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
