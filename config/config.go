// Package config loads the immutable configuration snapshot used for a whole
// test run. Sources are merged lowest to highest precedence: built-in
// defaults, an optional YAML file, environment variables, then command-line
// flags applied by the caller. The resulting Config is a plain value and is
// never mutated after Load returns, so it is safe to share across goroutines.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable names recognized by Load.
const (
	EnvBaseURL      = "FIXTURE_API_BASE_URL"
	EnvWebBaseURL   = "FIXTURE_WEB_BASE_URL"
	EnvName         = "FIXTURE_ENV"
	EnvLogLevel     = "FIXTURE_LOG_LEVEL"
	EnvReportingURL = "FIXTURE_REPORTING_URL"
)

// Defaults applied before any other source.
const (
	DefaultTimeoutMs        = 10000
	DefaultBatchSize        = 5
	DefaultRateLimitDelayMs = 250
	DefaultMaxRetryAttempts = 0
)

// Config is the read-only configuration snapshot for a test run.
type Config struct {
	BaseURL          string            `yaml:"baseUrl"`
	WebBaseURL       string            `yaml:"webBaseUrl"`
	EnvironmentName  string            `yaml:"environment"`
	LogLevel         string            `yaml:"logLevel"`
	Headers          map[string]string `yaml:"headers"`
	TimeoutMs        int               `yaml:"timeoutMs"`
	MaxRetryAttempts int               `yaml:"maxRetryAttempts"`
	BatchSize        int               `yaml:"batchSize"`
	RateLimitDelayMs int               `yaml:"rateLimitDelayMs"`
	ReportingURL     string            `yaml:"reportingUrl"`
}

// Timeout returns the per-request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// RateLimitDelay returns the inter-batch cooldown as a duration.
func (c Config) RateLimitDelay() time.Duration {
	return time.Duration(c.RateLimitDelayMs) * time.Millisecond
}

func defaults() Config {
	return Config{
		LogLevel:         "info",
		TimeoutMs:        DefaultTimeoutMs,
		MaxRetryAttempts: DefaultMaxRetryAttempts,
		BatchSize:        DefaultBatchSize,
		RateLimitDelayMs: DefaultRateLimitDelayMs,
	}
}

// Load builds a Config from defaults, the optional YAML file at filePath, and
// environment variables. The caller applies any flag overrides afterwards and
// then calls Validate.
func Load(filePath string) (Config, error) {
	c := defaults()

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", filePath, err)
		}
	}

	applyEnv(&c)
	return c, nil
}

func applyEnv(c *Config) {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvWebBaseURL); v != "" {
		c.WebBaseURL = v
	}
	if v := os.Getenv(EnvName); v != "" {
		c.EnvironmentName = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvReportingURL); v != "" {
		c.ReportingURL = v
	}
}

// Validate checks that required keys are present and numeric settings are
// sane. The first problem found is returned, naming the offending key.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("baseUrl is required (set %s or -url)", EnvBaseURL)
	}
	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("baseUrl %q is not a valid URL: %w", c.BaseURL, err)
	}
	if c.TimeoutMs <= 0 {
		return fmt.Errorf("timeoutMs must be positive, got %d", c.TimeoutMs)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batchSize must be positive, got %d", c.BatchSize)
	}
	if c.MaxRetryAttempts < 0 {
		return fmt.Errorf("maxRetryAttempts must not be negative, got %d", c.MaxRetryAttempts)
	}
	if c.RateLimitDelayMs < 0 {
		return fmt.Errorf("rateLimitDelayMs must not be negative, got %d", c.RateLimitDelayMs)
	}
	return nil
}
