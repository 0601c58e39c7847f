package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Development bool
	// API configuration
	APIPort int
	// Postgres configuration
	PostgresUser     string
	PostgresPassword string
	PostgresHost     string
	PostgresPort     int
	PostgresDB       string

	// DataDir is the directory used for the client-side durable stores
	// (cart, free-test log, contact log).
	DataDir string

	// SettingsURL is the base URL of the payment-settings API the client
	// proxy talks to.
	SettingsURL string

	// Telegram admin notifications
	TelegramBotToken    string
	TelegramAdminChatID string
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Development:         getEnvAsBool("DEVELOPMENT", false),
		PostgresUser:        getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword:    getEnv("POSTGRES_PASSWORD", "password"),
		PostgresHost:        getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:        getEnvAsInt("POSTGRES_PORT", 5432),
		PostgresDB:          getEnv("POSTGRES_DB", "storefront"),
		DataDir:             getEnv("DATA_DIR", ".storefront"),
		SettingsURL:         getEnv("SETTINGS_URL", "http://localhost:8081"),
		TelegramBotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramAdminChatID: getEnv("TELEGRAM_ADMIN_CHAT_ID", ""),

		APIPort: getEnvAsInt("API_PORT", 8081),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are properly set
func (c *Config) Validate() error {
	if c.PostgresDB == "" {
		return fmt.Errorf("POSTGRES_DB is required")
	}

	if c.PostgresHost == "" {
		return fmt.Errorf("POSTGRES_HOST is required")
	}

	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}

	if c.SettingsURL == "" {
		return fmt.Errorf("SETTINGS_URL is required")
	}

	// A token without a chat ID (or the reverse) is a misconfiguration.
	if (c.TelegramBotToken == "") != (c.TelegramAdminChatID == "") {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN and TELEGRAM_ADMIN_CHAT_ID must be set together")
	}

	return nil
}

// Helper functions to read environment variables
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
