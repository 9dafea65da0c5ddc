package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}
	return configPath
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Lang != "en" {
		t.Errorf("Expected default lang en, got %q", cfg.Lang)
	}
	if cfg.CacheTTL() != time.Hour {
		t.Errorf("Expected default TTL 1h, got %v", cfg.CacheTTL())
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %q", cfg.LogLevel)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := createTempConfigFile(t, `
lang: jp
cache_ttl_seconds: 600
log_level: debug
strict: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Lang != "jp" {
		t.Errorf("Expected lang jp, got %q", cfg.Lang)
	}
	if cfg.CacheTTL() != 10*time.Minute {
		t.Errorf("Expected TTL 10m, got %v", cfg.CacheTTL())
	}
	if !cfg.Strict {
		t.Error("Expected strict mode enabled")
	}
	// Unset fields keep their defaults.
	if cfg.CacheDir != ".cache/yatta" {
		t.Errorf("Expected default cache dir, got %q", cfg.CacheDir)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Lang != "en" {
		t.Errorf("Expected defaults for missing file, got lang %q", cfg.Lang)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := createTempConfigFile(t, "lang: jp\n")
	t.Setenv("YATTA_LANG", "kr")
	t.Setenv("YATTA_CACHE_TTL", "120")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Lang != "kr" {
		t.Errorf("Expected env override kr, got %q", cfg.Lang)
	}
	if cfg.CacheTTLSeconds != 120 {
		t.Errorf("Expected TTL 120s, got %d", cfg.CacheTTLSeconds)
	}
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	path := createTempConfigFile(t, "log_level: verbose\n")

	if _, err := Load(path); err != ErrInvalidLogLevel {
		t.Errorf("Expected ErrInvalidLogLevel, got %v", err)
	}
}

func TestValidateRejectsNegativeTTL(t *testing.T) {
	path := createTempConfigFile(t, "cache_ttl_seconds: -1\n")

	if _, err := Load(path); err != ErrInvalidCacheTTL {
		t.Errorf("Expected ErrInvalidCacheTTL, got %v", err)
	}
}

func TestMalformedYAML(t *testing.T) {
	path := createTempConfigFile(t, "lang: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
