package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the analytics backend.
type Config struct {
	Port        string
	DBPath      string
	JWTSecret   string
	AdminAPIKey string
	TokenTTL    time.Duration
	ReportDir   string
}

// Load reads configuration from the environment, falling back to a local
// .env file when present.
func Load() *Config {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	ttl := 24 * time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}

	return &Config{
		Port:        getEnv("PORT", ":8080"),
		DBPath:      getEnv("DB_PATH", "./data/haul.db"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me-in-production"),
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
		TokenTTL:    ttl,
		ReportDir:   getEnv("REPORT_DIR", "./reports"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
