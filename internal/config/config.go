package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the server reads from the environment.
type Config struct {
	AppEnv   string
	HTTPPort string

	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string
}

// Load reads a .env file when present, then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		PGHost:     getEnv("PG_HOST", "localhost"),
		PGPort:     getEnv("PG_PORT", "5432"),
		PGUser:     os.Getenv("PG_USER"),
		PGPassword: os.Getenv("PG_PASSWORD"),
		PGDatabase: os.Getenv("PG_DB"),
	}
}

// DSN builds the Postgres connection string shared by sqlx and GORM.
func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
