package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.BaseURL == "" {
		t.Fatal("expected a default backend base url")
	}
	if cfg.JWT.SessionTTL <= 0 {
		t.Fatalf("expected a positive session ttl, got %v", cfg.JWT.SessionTTL)
	}
	if cfg.I18n.DefaultLocale == "" {
		t.Fatal("expected a default locale")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("BACKEND_LOCALE", "ar")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Fatalf("expected port 9999 got %d", cfg.Server.Port)
	}
	if cfg.JWT.SessionTTL != 2*time.Hour {
		t.Fatalf("expected 2h ttl got %v", cfg.JWT.SessionTTL)
	}
	if cfg.Backend.Locale != "ar" {
		t.Fatalf("expected locale ar got %q", cfg.Backend.Locale)
	}
}

func TestLoadTestConfigIsSelfContained(t *testing.T) {
	cfg := LoadTestConfig()
	if cfg.JWT.Secret == "" || cfg.Redis.Addr == "" {
		t.Fatalf("test config missing fields: %+v", cfg)
	}
}
