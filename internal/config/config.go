package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken        string
	GroupID         int64
	SpreadsheetID   string
	CredentialFiles []string
	GroupIDFile     string
	SessionTTL      time.Duration
	Database        DatabaseConfig
}

// DatabaseConfig holds optional database connection settings.
// The Postgres session backend is enabled only when Password is set.
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		SpreadsheetID:   os.Getenv("SHEET_ID"),
		CredentialFiles: splitList(getEnv("CREDENTIALS", "cred-1.json,cred-2.json")),
		GroupIDFile:     getEnv("GROUP_ID_FILE", "group_id.json"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "indiekaum"),
			User:     getEnv("DB_USER", "indiekaum"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("SHEET_ID is required")
	}

	groupID := os.Getenv("GROUP_ID")
	if groupID == "" {
		return nil, fmt.Errorf("GROUP_ID is required")
	}
	id, err := strconv.ParseInt(groupID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GROUP_ID %q: %w", groupID, err)
	}
	cfg.GroupID = id

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	return cfg, nil
}

// DatabaseEnabled reports whether the Postgres session backend is configured
func (c *Config) DatabaseEnabled() bool {
	return c.Database.Password != ""
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

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
