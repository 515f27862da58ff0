package config

import (
	"errors"
	"os"
	"time"
)

// Config holds everything the binaries read from the environment.
// Secrets are never hard-coded; Load fails fast when they are absent.
type Config struct {
	Port          string
	DatabaseDSN   string
	SecretKey     string
	CORSOrigin    string
	CloudinaryURL string
	TokenTTL      time.Duration
	CookieMaxAge  time.Duration
}

// Load reads the process environment. defaultPort and defaultTTL differ
// between the two binaries; everything else shares the same variables.
func Load(defaultPort string, defaultTTL time.Duration) (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", defaultPort),
		DatabaseDSN:   os.Getenv("DATABASE_URL"),
		SecretKey:     os.Getenv("SECRET_KEY"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		TokenTTL:      defaultTTL,
		CookieMaxAge:  time.Hour,
	}

	cfg.CORSOrigin = os.Getenv("CORS_ORIGIN")
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = getenv("CLIENT_URL", "http://localhost:3000")
	}

	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, errors.New("TOKEN_TTL is not a valid duration: " + raw)
		}
		cfg.TokenTTL = ttl
	}

	if cfg.DatabaseDSN == "" {
		return Config{}, errors.New("DATABASE_URL is not set in the environment")
	}
	if cfg.SecretKey == "" {
		return Config{}, errors.New("SECRET_KEY is not set in the environment")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
