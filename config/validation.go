package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is internally
// consistent for the current environment
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.DBHost == "" {
		errors = append(errors, "database host is not set")
	}
	if cfg.DBPort == "" {
		errors = append(errors, "database port is not set")
	}
	if cfg.DBName == "" {
		errors = append(errors, "database name is not set")
	}

	if IsProduction() {
		if cfg.DBUser == "" {
			errors = append(errors, "db_user secret is required")
		}
		if cfg.DBPassword == "" {
			errors = append(errors, "db_password secret is required")
		}
	}

	if cfg.FuzzyThreshold < 0 || cfg.FuzzyThreshold > 1 {
		errors = append(errors, "FUZZY_THRESHOLD must be between 0 and 1")
	}
	if cfg.MatchTolerance < 0 {
		errors = append(errors, "MATCH_TOLERANCE must not be negative")
	}
	if cfg.MatchLimit < 0 {
		errors = append(errors, "MATCH_LIMIT must not be negative")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
