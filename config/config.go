package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultLocale is used when neither the request nor the environment names a
// locale for translated fields.
const DefaultLocale = "en"

func LoadEnv() error {
	// Load .env if present (local development). In production the variables
	// are set directly, so a missing file is not an error.
	_ = godotenv.Load()
	return nil
}

// ValidateEnv checks that critical environment variables are set.
// Returns an error if any critical variable is missing.
func ValidateEnv() error {
	var missing []string

	if os.Getenv("JWT_SECRET") == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if os.Getenv("DATABASE_URL") == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return fmt.Errorf("critical environment variables not set: %v", missing)
	}

	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// FallbackLocale returns the locale translated fields fall back to when the
// requested locale has no translation row.
func FallbackLocale() string {
	return GetEnv("DEFAULT_LOCALE", DefaultLocale)
}
