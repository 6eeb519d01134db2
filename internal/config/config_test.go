package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DEFAULT_TIME_LIMIT_MIN", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("port: got %q, want %q", cfg.Port, defaultPort)
	}
	if cfg.DefaultTimeLimit != defaultTimeLimit {
		t.Fatalf("time limit: got %d, want %d", cfg.DefaultTimeLimit, defaultTimeLimit)
	}
	if cfg.AllowedOrigins != nil {
		t.Fatalf("origins should default to nil, got %v", cfg.AllowedOrigins)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_TIME_LIMIT_MIN", "10")
	t.Setenv("ALLOWED_ORIGINS", "https://spyfall.example.com, http://localhost:*")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("port: got %q", cfg.Port)
	}
	if cfg.DefaultTimeLimit != 10 {
		t.Fatalf("time limit: got %d", cfg.DefaultTimeLimit)
	}
	want := []string{"https://spyfall.example.com", "http://localhost:*"}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != want[0] || cfg.AllowedOrigins[1] != want[1] {
		t.Fatalf("origins: got %v, want %v", cfg.AllowedOrigins, want)
	}
}

func TestLoad_IgnoresInvalidTimeLimit(t *testing.T) {
	t.Setenv("DEFAULT_TIME_LIMIT_MIN", "-3")
	if cfg := Load(); cfg.DefaultTimeLimit != defaultTimeLimit {
		t.Fatalf("negative time limit applied: %d", cfg.DefaultTimeLimit)
	}
}
