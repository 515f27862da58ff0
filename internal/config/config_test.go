package config

import (
	"testing"
	"time"
)

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SECRET_KEY", "")

	if _, err := Load("8080", time.Hour); err == nil {
		t.Fatal("expected error with no DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	if _, err := Load("8080", time.Hour); err == nil {
		t.Fatal("expected error with no SECRET_KEY")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGIN", "")
	t.Setenv("CLIENT_URL", "")
	t.Setenv("TOKEN_TTL", "")

	cfg, err := Load("8080", 10*time.Hour)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.TokenTTL != 10*time.Hour {
		t.Fatalf("ttl = %v", cfg.TokenTTL)
	}
	if cfg.CORSOrigin != "http://localhost:3000" {
		t.Fatalf("cors origin = %q", cfg.CORSOrigin)
	}
	if cfg.CookieMaxAge != time.Hour {
		t.Fatalf("cookie max age = %v", cfg.CookieMaxAge)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGIN", "https://app.example.com")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := Load("8080", 10*time.Hour)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "9000" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.CORSOrigin != "https://app.example.com" {
		t.Fatalf("cors origin = %q", cfg.CORSOrigin)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("ttl = %v", cfg.TokenTTL)
	}

	t.Setenv("TOKEN_TTL", "bogus")
	if _, err := Load("8080", time.Hour); err == nil {
		t.Fatal("expected error for invalid TOKEN_TTL")
	}
}
