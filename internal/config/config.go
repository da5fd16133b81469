// Package config loads application configuration from environment
// variables. Required values are enforced by must(); a missing one
// stops the process at startup rather than later, mid-request.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values. Each field
// corresponds to an environment variable.
type Config struct {
	Env           string        // application environment (e.g. "dev", "prod")
	Port          string        // HTTP port to listen on
	JWTSecret     string        // secret used to sign session tokens
	SessionTTLMin int           // session token time-to-live in minutes
	AIAPIKey      string        // API key for the generative text endpoint (optional)
	AIModel       string        // model name for the generative text endpoint
	AIBaseURL     string        // override for the endpoint base URL (optional)
	AITimeout     time.Duration // request timeout for assistant calls
}

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),
		Port:          must("APP_PORT"),
		JWTSecret:     must("JWT_SECRET"),
		SessionTTLMin: intOr("SESSION_TTL_MIN", 720),
		AIAPIKey:      os.Getenv("AI_API_KEY"),
		AIModel:       stringOr("AI_MODEL", "gemini-2.0-flash"),
		AIBaseURL:     os.Getenv("AI_BASE_URL"),
		AITimeout:     time.Duration(intOr("AI_TIMEOUT_SEC", 30)) * time.Second,
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// stringOr retrieves an optional variable with a default.
func stringOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// intOr retrieves an optional integer variable with a default. An
// unparseable value is fatal, same as a missing required one.
func intOr(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
