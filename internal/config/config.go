package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Pricing   PricingConfig
	Order     OrderConfig
	Assistant AssistantConfig
	LogLevel  string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type AuthConfig struct {
	APIKeys []string // Valid API keys for back-office endpoints
}

// PricingConfig holds the regional rates applied at checkout
type PricingConfig struct {
	TaxRate     decimal.Decimal
	DeliveryFee decimal.Decimal
	DefaultCity string
	DefaultZip  string
}

// OrderConfig controls how confirmed orders reach the fulfillment system.
// With no SubmitURL the simulated submitter is used.
type OrderConfig struct {
	SubmitURL      string
	SubmitDelayMS  int
	SubmitTimeoutS int
}

// AssistantConfig points at the chat-completion service behind the site
// assistant. An empty APIKey disables live replies (the fallback copy is
// served instead).
type AssistantConfig struct {
	BaseURL  string
	APIKey   string
	Model    string
	TimeoutS int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	taxRate, err := getEnvAsDecimal("TAX_RATE", "0.08625")
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_RATE: %w", err)
	}
	deliveryFee, err := getEnvAsDecimal("DELIVERY_FEE", "5.00")
	if err != nil {
		return nil, fmt.Errorf("invalid DELIVERY_FEE: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Auth: AuthConfig{
			APIKeys: getEnvAsSlice("API_KEYS", []string{"apitest"}),
		},
		Pricing: PricingConfig{
			TaxRate:     taxRate,
			DeliveryFee: deliveryFee,
			DefaultCity: getEnv("DEFAULT_CITY", "West Hempstead"),
			DefaultZip:  getEnv("DEFAULT_ZIP", "11552"),
		},
		Order: OrderConfig{
			SubmitURL:      getEnv("ORDER_SUBMIT_URL", ""),
			SubmitDelayMS:  getEnvAsInt("ORDER_SUBMIT_DELAY_MS", 1500),
			SubmitTimeoutS: getEnvAsInt("ORDER_SUBMIT_TIMEOUT", 10),
		},
		Assistant: AssistantConfig{
			BaseURL:  getEnv("ASSISTANT_BASE_URL", "https://api.openai.com/v1"),
			APIKey:   getEnv("ASSISTANT_API_KEY", ""),
			Model:    getEnv("ASSISTANT_MODEL", "gpt-4o-mini"),
			TimeoutS: getEnvAsInt("ASSISTANT_TIMEOUT", 30),
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

	if len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("at least one API key must be configured")
	}

	if c.Pricing.TaxRate.IsNegative() {
		return fmt.Errorf("TAX_RATE must not be negative")
	}
	if c.Pricing.DeliveryFee.IsNegative() {
		return fmt.Errorf("DELIVERY_FEE must not be negative")
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

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}

func getEnvAsDecimal(key, defaultValue string) (decimal.Decimal, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	return decimal.NewFromString(valueStr)
}
