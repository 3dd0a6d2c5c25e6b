package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every process-wide setting read at startup. It is loaded
// once in main and passed to the components that need it; nothing reads
// the environment after Load returns.
type Config struct {
	Port string

	// Either a full DATABASE_URL or the individual DB_* parts.
	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string

	JWTSecret      string // signs admin access tokens
	AdminSecretKey string // shared operator secret gating registration
	UploadDir      string // product image storage
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	cfg := &Config{
		Port:           getenv("PORT", "3000"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBHost:         getenv("DB_HOST", "localhost"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         getenv("DB_PORT", "5432"),
		JWTSecret:      os.Getenv("JWT_ACCESS_TOKEN_SECRET_KEY"),
		AdminSecretKey: os.Getenv("ADMIN_SECRET_KEY"),
		UploadDir:      getenv("UPLOAD_DIR", "uploads"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_ACCESS_TOKEN_SECRET_KEY is not set")
	}
	if cfg.AdminSecretKey == "" {
		return nil, errors.New("ADMIN_SECRET_KEY is not set")
	}

	return cfg, nil
}

// DSN builds the Postgres connection string, preferring DATABASE_URL.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
