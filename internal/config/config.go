package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DatabasePath     string
	LogLevel         string
	Port             int
	DevMode          bool
	DefaultBondYield float64       // AAA yield baseline for Graham Value
	QuoteCacheTTL    time.Duration // how long a fetched record stays fresh
	FetchTimeout     time.Duration // per-ticker provider call timeout
	RubricVariant    string        // conservative or legacy
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnvAsInt("PORT", 8001),
		DevMode:          getEnvAsBool("DEV_MODE", false),
		DatabasePath:     getEnv("DATABASE_PATH", "./data/screener.db"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DefaultBondYield: getEnvAsFloat("DEFAULT_BOND_YIELD", 4.4),
		QuoteCacheTTL:    getEnvAsDuration("QUOTE_CACHE_TTL", time.Hour),
		FetchTimeout:     getEnvAsDuration("FETCH_TIMEOUT", 15*time.Second),
		RubricVariant:    getEnv("RUBRIC_VARIANT", "conservative"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.DefaultBondYield <= 0 {
		return fmt.Errorf("DEFAULT_BOND_YIELD must be positive, got %v", c.DefaultBondYield)
	}
	if c.RubricVariant != "conservative" && c.RubricVariant != "legacy" {
		return fmt.Errorf("RUBRIC_VARIANT must be conservative or legacy, got %q", c.RubricVariant)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}
	}
	return defaultValue
}
