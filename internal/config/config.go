package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// APIBaseURL is the storefront backend, e.g. http://localhost:8080.
	APIBaseURL string
	// StatePath is the bbolt file holding the persisted session. Plays the
	// role browser localStorage plays for the web client.
	StatePath string
	// Currency for payment intents, ISO 4217 lower-case as the processor
	// expects it.
	Currency       string
	RequestTimeout time.Duration
	LogLevel       string
}

// Load reads configuration from the environment, with a best-effort .env
// file on top. Missing variables fall back to defaults usable against a
// local backend.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:     getEnv("WEBSHOP_API_URL", "http://localhost:8080"),
		StatePath:      getEnv("WEBSHOP_STATE_PATH", defaultStatePath()),
		Currency:       getEnv("WEBSHOP_CURRENCY", "eur"),
		RequestTimeout: getDuration("WEBSHOP_REQUEST_TIMEOUT", 30*time.Second),
		LogLevel:       getEnv("WEBSHOP_LOG_LEVEL", "info"),
	}
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "webshop.db"
	}
	return filepath.Join(dir, "webshop", "state.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
