package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("cache type: got %q, want memory", cfg.Cache.Type)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("cache TTL: got %v, want 5m", cfg.Cache.TTL)
	}
	if cfg.Square.BaseURL != "https://connect.squareup.com" {
		t.Errorf("square base URL: got %q", cfg.Square.BaseURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Cache.Type != "redis" {
		t.Errorf("cache type: got %q, want redis", cfg.Cache.Type)
	}
	if cfg.Cache.TTL != 30*time.Second {
		t.Errorf("cache TTL: got %v, want 30s", cfg.Cache.TTL)
	}
	if cfg.Cache.RedisAddress() != "cache.internal:6380" {
		t.Errorf("redis address: got %q", cfg.Cache.RedisAddress())
	}
}

func TestServerAddress(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 9000}
	if s.Address() != "127.0.0.1:9000" {
		t.Errorf("Address: got %q", s.Address())
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	app := AppConfig{Environment: "development"}
	if !app.IsDevelopment() || app.IsProduction() {
		t.Error("development flags wrong")
	}

	app.Environment = "production"
	if app.IsDevelopment() || !app.IsProduction() {
		t.Error("production flags wrong")
	}
}
