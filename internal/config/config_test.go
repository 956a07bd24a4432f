package config

import (
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_STRING", "custom")
	if got := getEnvOrDefault("TEST_STRING", "fallback"); got != "custom" {
		t.Fatalf("expected custom, got %q", got)
	}
	if got := getEnvOrDefault("TEST_STRING_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	t.Setenv("TEST_STRING_BLANK", "   ")
	if got := getEnvOrDefault("TEST_STRING_BLANK", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for blank value, got %q", got)
	}
}

func TestGetFloatEnv(t *testing.T) {
	t.Setenv("TEST_FLOAT", "2500.5")
	if got := getFloatEnv("TEST_FLOAT", 10000); got != 2500.5 {
		t.Fatalf("expected 2500.5, got %v", got)
	}

	t.Setenv("TEST_FLOAT_BAD", "close")
	if got := getFloatEnv("TEST_FLOAT_BAD", 10000); got != 10000 {
		t.Fatalf("expected default for garbage value, got %v", got)
	}

	t.Setenv("TEST_FLOAT_NEGATIVE", "-5")
	if got := getFloatEnv("TEST_FLOAT_NEGATIVE", 10000); got != 10000 {
		t.Fatalf("expected default for non-positive value, got %v", got)
	}
}

func TestGetInt64Env(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := getInt64Env("TEST_INT", 20); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}

	t.Setenv("TEST_INT_ZERO", "0")
	if got := getInt64Env("TEST_INT_ZERO", 20); got != 20 {
		t.Fatalf("expected default for zero, got %d", got)
	}
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("TEST_TTL", "15")
	if got := getDurationEnv("TEST_TTL", 60, time.Minute); got != 15*time.Minute {
		t.Fatalf("expected 15m, got %v", got)
	}
	if got := getDurationEnv("TEST_TTL_UNSET", 60, time.Minute); got != time.Hour {
		t.Fatalf("expected 1h default, got %v", got)
	}
}
