package config

import (
	"errors"
	"os"
	"time"
)

// Config carries everything the process reads from the environment.
type Config struct {
	Port        string
	PostgresURI string

	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	GCSBucket string

	// Default region for parsing national-format phone numbers.
	PhoneRegion string

	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		PostgresURI: os.Getenv("POSTGRES_URI"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   getenv("JWT_ISSUER", "hirestack"),
		JWTTTL:      24 * time.Hour,
		GCSBucket:   os.Getenv("GCS_BUCKET"),
		PhoneRegion: getenv("PHONE_DEFAULT_REGION", "IN"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}

	if v := os.Getenv("JWT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.New("JWT_TTL is not a valid duration")
		}
		cfg.JWTTTL = d
	}

	if cfg.PostgresURI == "" {
		return nil, errors.New("POSTGRES_URI environment variable is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is not set")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
