package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	Database    DatabaseConfig
	Store       StoreConfig

	WordsPerPage int
	// ShuffleSeed fixes the exercise shuffle when set
	ShuffleSeed *uint64
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// StoreConfig points at the remote word store
type StoreConfig struct {
	URL     string
	Timeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "wortschatz"),
			User:     getEnv("DB_USER", "wortschatz"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Store: StoreConfig{
			URL: getEnv("STORE_URL", "http://127.0.0.1:8000"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	timeout, err := time.ParseDuration(getEnv("STORE_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("STORE_TIMEOUT must be a positive duration")
	}
	cfg.Store.Timeout = timeout

	perPage, err := strconv.Atoi(getEnv("WORDS_PER_PAGE", "20"))
	if err != nil || perPage <= 0 {
		return nil, fmt.Errorf("WORDS_PER_PAGE must be a positive integer")
	}
	cfg.WordsPerPage = perPage

	if raw := os.Getenv("SHUFFLE_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("SHUFFLE_SEED must be an unsigned integer: %w", err)
		}
		cfg.ShuffleSeed = &seed
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
