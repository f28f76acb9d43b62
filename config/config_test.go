package config

import (
	"os"
	"strings"
	"testing"
)

func TestGetEnvDefault(t *testing.T) {
	os.Unsetenv("B2BPRO_TEST_MISSING")

	if got := GetEnv("B2BPRO_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestGetEnvSet(t *testing.T) {
	os.Setenv("B2BPRO_TEST_SET", "value")
	defer os.Unsetenv("B2BPRO_TEST_SET")

	if got := GetEnv("B2BPRO_TEST_SET", "fallback"); got != "value" {
		t.Errorf("expected value, got %q", got)
	}
}

func TestFallbackLocale(t *testing.T) {
	os.Unsetenv("DEFAULT_LOCALE")
	if got := FallbackLocale(); got != "en" {
		t.Errorf("expected en, got %q", got)
	}

	os.Setenv("DEFAULT_LOCALE", "ru")
	defer os.Unsetenv("DEFAULT_LOCALE")
	if got := FallbackLocale(); got != "ru" {
		t.Errorf("expected ru, got %q", got)
	}
}

func TestValidateEnvReportsMissing(t *testing.T) {
	oldSecret := os.Getenv("JWT_SECRET")
	oldDB := os.Getenv("DATABASE_URL")
	defer func() {
		os.Setenv("JWT_SECRET", oldSecret)
		os.Setenv("DATABASE_URL", oldDB)
	}()

	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("DATABASE_URL")

	err := ValidateEnv()
	if err == nil {
		t.Fatal("expected error when critical variables are missing")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("expected both variables named, got %v", err)
	}
}

func TestValidateEnvPasses(t *testing.T) {
	os.Setenv("JWT_SECRET", "secret")
	os.Setenv("DATABASE_URL", "postgres://localhost/b2bpro")
	defer func() {
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("DATABASE_URL")
	}()

	if err := ValidateEnv(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
