package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	AI       AIConfig
	Store    StoreConfig
	Notify   NotifyConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type AIConfig struct {
	APIKey         string
	Model          string
	TimeoutSeconds int
}

type StoreConfig struct {
	MissingItemsFile string
	FundsFile        string
}

type NotifyConfig struct {
	WhatsAppPhone string
	WebhookURL    string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		AI: AIConfig{
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			Model:          getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			TimeoutSeconds: getEnvAsInt("AI_TIMEOUT", 30),
		},
		Store: StoreConfig{
			MissingItemsFile: getEnv("MISSING_ITEMS_FILE", "missing_items.json"),
			FundsFile:        getEnv("FUNDS_FILE", "cow_funds.json"),
		},
		Notify: NotifyConfig{
			WhatsAppPhone: getEnv("WHATSAPP_PHONE", "51988945307"),
			WebhookURL:    getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.AI.Model == "" {
		return fmt.Errorf("GEMINI_MODEL is required")
	}

	if c.AI.TimeoutSeconds <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
