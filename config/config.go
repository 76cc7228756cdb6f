package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr        string
	DatabaseDSN string
	JWTSecret   string
	TokenTTL    time.Duration
	AutoMigrate bool
	// Debug exposes error detail in 500 responses and keeps gin in debug
	// mode. Leave off in production.
	Debug bool
}

// Load reads configuration from the environment. DB_DSN is the only value
// without a usable default.
func Load() (Config, error) {
	cfg := Config{
		Addr:        getEnv("ADDR", ":8081"),
		DatabaseDSN: getEnv("DB_DSN", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		TokenTTL:    time.Duration(getEnvInt("TOKEN_TTL_SEC", 3600)) * time.Second,
		AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
		Debug:       getEnvBool("DEBUG", false),
	}
	if cfg.DatabaseDSN == "" {
		return Config{}, fmt.Errorf("DB_DSN is not set; a Postgres DSN is required")
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL_SEC must be > 0")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET not set, using an insecure development secret")
		cfg.JWTSecret = "dev-insecure-secret-change"
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
