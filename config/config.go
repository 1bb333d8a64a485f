package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the engine and its stores
type Config struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration (plan draft storage)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Catalog configuration. When CatalogPath is set the catalog is
	// loaded from the products JSON file instead of the database.
	CatalogPath string

	// Engine tuning
	FuzzyThreshold float64
	MatchTolerance float64
	MatchLimit     int
}

// LoadConfig creates a new Config instance with values from environment
// variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI, Development, Test:
		loadEnvConfig(cfg)
	case Production:
		if err := loadProdConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	loadEngineConfig(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadEnvConfig loads configuration from environment variables with
// local-development defaults
func loadEnvConfig(cfg *Config) {
	cfg.DBHost = getEnv("DB_HOST", "localhost")
	cfg.DBPort = getEnv("DB_PORT", "5432")
	cfg.DBUser = getEnv("DB_USER", "postgres")
	cfg.DBPassword = getEnv("DB_PASSWORD", "postgres")
	cfg.DBName = getEnv("DB_NAME", "nutrition")
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", "disable")
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getEnv("REDIS_PORT", "6379")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisDB = 0
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.CatalogPath = os.Getenv("CATALOG_PATH")
}

// loadProdConfig loads configuration for production using Docker secrets
func loadProdConfig(cfg *Config) error {
	cfg.DBHost = readSecret("db_host")
	cfg.DBPort = readSecret("db_port")
	cfg.DBUser = readSecret("db_user")
	cfg.DBPassword = readSecret("db_password")
	cfg.DBName = readSecret("db_name")
	cfg.DBSSLMode = readSecret("db_ssl_mode")
	cfg.RedisHost = readSecret("redis_host")
	cfg.RedisPort = readSecret("redis_port")
	cfg.RedisPassword = readSecret("redis_password")
	cfg.RedisDB = 0
	cfg.RedisURL = readSecret("redis_url")
	cfg.CatalogPath = os.Getenv("CATALOG_PATH")

	return nil
}

// loadEngineConfig loads engine tuning knobs; they are optional in
// every environment
func loadEngineConfig(cfg *Config) {
	cfg.FuzzyThreshold = getEnvFloat("FUZZY_THRESHOLD", 0.6)
	cfg.MatchTolerance = getEnvFloat("MATCH_TOLERANCE", 0.2)
	cfg.MatchLimit = getEnvInt("MATCH_LIMIT", 5)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
