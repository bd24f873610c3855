package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config collects everything the server needs from the environment. The JWT
// secret lives here (not in a package global) so deployments and tests can
// each run with their own value.
type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   []byte
	TokenTTL    time.Duration
	BcryptCost  int
}

// LoadConfig reads a local .env file if present, then the process
// environment, falling back to development defaults.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:       "3000",
		JWTSecret:  []byte("dev-insecure-secret-change"),
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.DefaultCost,
	}

	cfg.DatabaseDSN = os.Getenv("DB_DSN")
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = []byte(v)
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		cfg.BcryptCost = c
	}

	return cfg, nil
}
