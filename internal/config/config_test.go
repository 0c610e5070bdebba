package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DATA_DIR", "PUBLIC_DIR", "LOG_LEVEL", "PLACEHOLDER_CACHE", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.Env != "development" || cfg.DataDir != "./data" || cfg.PublicDir != "./public" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.PlaceholderCache != "" || cfg.CORSOrigins != "*" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !cfg.IsDevelopment() {
		t.Error("default environment should be development")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("ENV", "production")
	t.Setenv("DATA_DIR", "/srv/data")
	t.Setenv("PLACEHOLDER_CACHE", "/var/cache/site/placeholders.db")

	cfg := Load()
	if cfg.Port != "3000" || cfg.DataDir != "/srv/data" || cfg.PlaceholderCache != "/var/cache/site/placeholders.db" {
		t.Errorf("environment not applied: %+v", cfg)
	}
	if cfg.IsDevelopment() {
		t.Error("production should not be development")
	}
}
