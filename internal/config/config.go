package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Store modes. Demo serves the built-in catalog and keeps the session slot
// in memory; full mode needs PostgreSQL and Redis.
const (
	ModeDemo = "demo"
	ModeFull = "full"
)

// Config holds application configuration
type Config struct {
	Port           string
	Mode           string // demo, full
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	SessionSlotKey string
	AllowedOrigins string
	Environment    string // development, staging, production
}

// Load loads configuration from environment variables and validates it
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Mode:           getEnv("STORE_MODE", ModeDemo),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		SessionSlotKey: getEnv("SESSION_SLOT_KEY", "user"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	return cfg
}

// Validate checks configuration for correctness
func (c *Config) Validate() error {
	if c.Mode != ModeDemo && c.Mode != ModeFull {
		return fmt.Errorf("STORE_MODE must be %q or %q (got %q)", ModeDemo, ModeFull, c.Mode)
	}

	if c.Mode == ModeFull {
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must be set in full mode")
		}
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR must be set in full mode")
		}
	}

	if c.SessionSlotKey == "" {
		return fmt.Errorf("SESSION_SLOT_KEY must not be empty")
	}

	if c.IsProduction() && c.Mode == ModeDemo {
		log.Println("WARNING: running the demo catalog in production")
	}

	return nil
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "dev" || c.Environment == ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
