package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Server
	Port     int
	LogLevel string

	// Sessions. Each session owns one in-memory journal; idle sessions
	// expire with their data.
	SessionTTL      time.Duration
	SessionSecret   string
	SessionTokenTTL time.Duration

	// CORS allowed origins for browser front ends.
	CORSOrigins []string

	// Observability
	OTLPEndpoint string

	// DevTools enables the /v1/dev/* seeding helpers.
	DevTools bool
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		SessionTTL:      getEnvDuration("SESSION_TTL", 2*time.Hour),
		SessionSecret:   getEnv("SESSION_SECRET", "acctflow-default-dev-secret-change-me"),
		SessionTokenTTL: getEnvDuration("SESSION_TOKEN_TTL", 24*time.Hour),

		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),

		DevTools: getEnv("DEV_TOOLS", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
