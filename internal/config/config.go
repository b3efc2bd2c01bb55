package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// HTTP Server
	HTTPAddr string

	// Logging
	LogLevel string

	// Narrative generator (optional; disabled without a key)
	GeminiAPIKey string
	GeminiModel  string

	// Sentiment classifier (optional; lexicon fallback without a key)
	HFAPIKey string
	HFModel  string

	// Reference price lookup
	MarketplaceSearchURL string

	// Outbound calls
	OutboundTimeout time.Duration
	OutboundRPM     int // per-client requests per minute
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:             getEnv("TRUTHLENS_HTTP_ADDR", ":8000"),
		LogLevel:             getEnv("TRUTHLENS_LOG_LEVEL", "info"),
		GeminiAPIKey:         getEnv("TRUTHLENS_GEMINI_API_KEY", os.Getenv("GEMINI_API_KEY")),
		GeminiModel:          getEnv("TRUTHLENS_GEMINI_MODEL", "gemini-2.5-flash"),
		HFAPIKey:             getEnv("TRUTHLENS_HF_API_KEY", ""),
		HFModel:              getEnv("TRUTHLENS_HF_MODEL", "distilbert-base-uncased-finetuned-sst-2-english"),
		MarketplaceSearchURL: getEnv("TRUTHLENS_MARKETPLACE_SEARCH_URL", "https://www.flipkart.com/search"),
		OutboundTimeout:      getEnvDuration("TRUTHLENS_OUTBOUND_TIMEOUT", "8s"),
		OutboundRPM:          getEnvInt("TRUTHLENS_OUTBOUND_RPM", 60),
	}

	if cfg.OutboundRPM < 1 {
		return nil, fmt.Errorf("TRUTHLENS_OUTBOUND_RPM must be positive")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as an integer or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration retrieves an environment variable as a duration or returns a default value
func getEnvDuration(key string, defaultValue string) time.Duration {
	value := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(value)
	if err != nil {
		// If parsing fails, use the default
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
