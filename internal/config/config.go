package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Port             string
	Env              string
	DatabaseURL      string
	CatalogPath      string
	DefaultTimeLimit int
	AllowedOrigins   []string
}

const (
	defaultPort      = "8080"
	defaultEnv       = "production"
	defaultTimeLimit = 5 // minutes per round
)

// Load builds a Config from environment variables, falling back to defaults.
func Load() Config {
	cfg := Config{
		Port:             getEnv("PORT", defaultPort),
		Env:              getEnv("APP_ENV", defaultEnv),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		CatalogPath:      os.Getenv("CATALOG_PATH"),
		DefaultTimeLimit: defaultTimeLimit,
		AllowedOrigins:   parseOrigins(os.Getenv("ALLOWED_ORIGINS")),
	}

	if raw := os.Getenv("DEFAULT_TIME_LIMIT_MIN"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			cfg.DefaultTimeLimit = v
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
