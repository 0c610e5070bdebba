// Package config handles loading runtime configuration for the league site.
// Configuration values (port, where the data files live, log level) are read from
// environment variables rather than hardcoded, so the same binary runs locally and in
// production with only the environment changing.
package config

import (
	"os"

	// godotenv reads a .env file and loads its key=value pairs into the process environment.
	// Handy in development; in production real environment variables are used instead.
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values for the application.
type Config struct {
	Port             string // TCP port the HTTP server listens on (e.g. "8080")
	Env              string // "development" or "production"
	DataDir          string // Directory holding tournaments/ and challenges.json
	PublicDir        string // Directory served as static files (gallery-images/, trophies/, grain.png)
	LogLevel         string // "debug", "info", "warn" or "error"
	PlaceholderCache string // BoltDB file for gallery placeholders; empty disables the cache
	CORSOrigins      string // Comma-separated origins allowed to call /api
}

// Load reads configuration from environment variables and returns a populated Config.
// A missing .env file is fine: the deployment platform sets real variables instead.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:             getenv("PORT", "8080"),
		Env:              getenv("ENV", "development"),
		DataDir:          getenv("DATA_DIR", "./data"),
		PublicDir:        getenv("PUBLIC_DIR", "./public"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		PlaceholderCache: os.Getenv("PLACEHOLDER_CACHE"),
		CORSOrigins:      getenv("CORS_ORIGINS", "*"),
	}
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// getenv returns the variable's value, or fallback when it is unset or empty.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
