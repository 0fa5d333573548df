package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// Config holds all application configuration
type Config struct {
	API   APIConfig
	Log   LogConfig
	Copy  CopyConfig
	Batch BatchConfig
}

// APIConfig holds summarization backend settings
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// LogConfig holds logger settings
type LogConfig struct {
	Level    string // "debug", "info", "warn", "error"
	Encoding string // "console", "json"
}

// CopyConfig holds clipboard feedback settings
type CopyConfig struct {
	ResetDelay time.Duration
}

// BatchConfig holds settings for summarizing URL lists
type BatchConfig struct {
	Workers   int
	OutputDir string
}

const (
	DefaultBaseURL   = "http://localhost:8000"
	DefaultOutputDir = "./summaries"
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL: getEnv("DVSUM_API_URL", getEnv("NEXT_PUBLIC_API_URL", DefaultBaseURL)),
			Timeout: getDurationEnv("DVSUM_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:    getEnv("DVSUM_LOG_LEVEL", "warn"),
			Encoding: getEnv("DVSUM_LOG_FORMAT", "console"),
		},
		Copy: CopyConfig{
			ResetDelay: getDurationEnv("DVSUM_COPY_RESET_DELAY", 2*time.Second),
		},
		Batch: BatchConfig{
			Workers:   getIntEnv("DVSUM_WORKERS", 2),
			OutputDir: getEnv("DVSUM_OUTPUT_DIR", DefaultOutputDir),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// BindFlags registers flags that override the loaded values. Values already
// in cfg become the flag defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.API.BaseURL, "api-url", c.API.BaseURL, "Base URL of the summarization backend")
	fs.DurationVar(&c.API.Timeout, "timeout", c.API.Timeout, "Maximum time to wait for the backend")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "Log level (debug, info, warn, error)")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api url: %q (must be an http or https URL)", c.API.BaseURL)
	}

	if c.API.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.Encoding != "console" && c.Log.Encoding != "json" {
		return fmt.Errorf("invalid log format: %s (must be console or json)", c.Log.Encoding)
	}

	if c.Copy.ResetDelay <= 0 {
		return errors.New("copy reset delay must be positive")
	}

	if c.Batch.Workers < 1 {
		return fmt.Errorf("invalid workers: %d (must be at least 1)", c.Batch.Workers)
	}

	return nil
}

// ============================================================
// HELPER FUNCTIONS
// ============================================================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}
