package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Port      string
	Env       string
	JWTSecret string
	TokenTTL  time.Duration
	PublicDir string
}

// Load reads configuration from the environment. The token signing secret is
// mandatory: the process must not fall back to a baked-in key.
func Load() (*Config, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	tokenTTL := time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		tokenTTL = parsed
	}

	return &Config{
		Port:      getEnv("PORT", "3000"),
		Env:       getEnv("ENV", "development"),
		JWTSecret: jwtSecret,
		TokenTTL:  tokenTTL,
		PublicDir: getEnv("PUBLIC_DIR", ""),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
