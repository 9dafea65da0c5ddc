// Package config provides configuration for the CLI, loaded from an
// optional YAML file with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidCacheTTL = errors.New("cache_ttl_seconds must be non-negative")
	ErrInvalidLogLevel = errors.New("log_level must be one of: debug, info, warn, error")
)

// Config holds all CLI settings.
type Config struct {
	Lang            string `yaml:"lang"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	CacheDir        string `yaml:"cache_dir"`
	UserAgent       string `yaml:"user_agent"`
	LogLevel        string `yaml:"log_level"`
	Strict          bool   `yaml:"strict"`
	CronEnabled     bool   `yaml:"cron_enabled"`
	CronSchedule    string `yaml:"cron_schedule"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Lang:            "en",
		CacheTTLSeconds: 3600,
		CacheDir:        ".cache/yatta",
		UserAgent:       "yatta-go",
		LogLevel:        "info",
		CronSchedule:    "0 0 */6 * * *",
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty or the file does not exist), then
// environment variables. A .env file is honored when present.
func Load(path string) (*Config, error) {
	// Missing .env is fine, env vars may come from the environment.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("YATTA_LANG"); v != "" {
		cfg.Lang = v
	}
	if v := os.Getenv("YATTA_CACHE_TTL"); v != "" {
		if ttl, err := strconv.Atoi(v); err == nil {
			cfg.CacheTTLSeconds = ttl
		}
	}
	if v := os.Getenv("YATTA_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("YATTA_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("YATTA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("YATTA_STRICT"); v != "" {
		cfg.Strict = v == "1" || v == "true"
	}
	if v := os.Getenv("YATTA_CRON_ENABLED"); v != "" {
		cfg.CronEnabled = v == "1" || v == "true"
	}
	if v := os.Getenv("YATTA_CRON_SCHEDULE"); v != "" {
		cfg.CronSchedule = v
	}
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.CacheTTLSeconds < 0 {
		return ErrInvalidCacheTTL
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

// CacheTTL returns the cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
