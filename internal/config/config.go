// Package config loads console settings from the environment. A .env file is
// honored when present; every value has a development default.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the console needs to run.
type Config struct {
	// BackendURL is the persona automation backend the console talks to.
	BackendURL string
	// BackendToken, when set, is sent as a bearer token on every call.
	BackendToken string
	// ListenAddr is the console's own HTTP address.
	ListenAddr string
	// RequestTimeout caps each backend call.
	RequestTimeout time.Duration
	// CacheTTL is the revalidation window of the query cache.
	CacheTTL time.Duration
	// RefreshSchedule is a cron expression for the periodic overview refresh.
	RefreshSchedule string
}

// Load reads the environment, loading .env first if one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BackendURL:      getenv("BACKEND_URL", "http://localhost:8000"),
		BackendToken:    os.Getenv("BACKEND_TOKEN"),
		ListenAddr:      getenv("LISTEN_ADDR", ":8080"),
		RequestTimeout:  getduration("REQUEST_TIMEOUT", 30*time.Second),
		CacheTTL:        getduration("CACHE_TTL", 30*time.Second),
		RefreshSchedule: getenv("REFRESH_SCHEDULE", "@every 1m"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
