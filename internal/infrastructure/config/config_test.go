package config_test

import (
	"testing"

	"github.com/iho/walletledger/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WALLET_CURRENCY", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.Currency != "USD" {
		t.Fatalf("expected default currency USD, got %q", cfg.Currency)
	}

	if cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Fatalf("expected default logging info/console, got %s/%s", cfg.LogLevel, cfg.LogFormat)
	}

	if cfg.MaxMovementAmount != "1000000000000" {
		t.Fatalf("expected default movement limit, got %s", cfg.MaxMovementAmount)
	}

	if cfg.MetricsEnabled {
		t.Fatalf("expected metrics to be disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WALLET_CURRENCY", "ARS")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("MAX_MOVEMENT_AMOUNT", "500")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.Currency != "ARS" {
		t.Fatalf("expected currency override, got %s", cfg.Currency)
	}

	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("expected logging overrides, got %s/%s", cfg.LogLevel, cfg.LogFormat)
	}

	if !cfg.MetricsEnabled || cfg.MaxMovementAmount != "500" {
		t.Fatalf("expected metrics and limit overrides, got enabled=%v limit=%s", cfg.MetricsEnabled, cfg.MaxMovementAmount)
	}
}

func TestLoadInvalidBool(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "not-a-bool")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid bool")
	}
}
