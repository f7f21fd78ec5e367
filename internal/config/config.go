package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
	Calculus  CalculusConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8000"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// MetricsConfig holds Prometheus exposition configuration.
type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

// CalculusConfig holds defaults for the calculus tools.
type CalculusConfig struct {
	DerivativeStep      float64       `envconfig:"UMATH_DERIVATIVE_STEP" default:"1e-6"`
	IntegrationSteps    int           `envconfig:"UMATH_INTEGRATION_STEPS" default:"1000"`
	MaxIntegrationSteps int           `envconfig:"UMATH_MAX_INTEGRATION_STEPS" default:"10000000"`
	ExpressionTimeout   time.Duration `envconfig:"UMATH_EXPRESSION_TIMEOUT" default:"2s"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8000",
			Host:            "0.0.0.0",
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
		Calculus: CalculusConfig{
			DerivativeStep:      1e-6,
			IntegrationSteps:    1000,
			MaxIntegrationSteps: 10_000_000,
			ExpressionTimeout:   2 * time.Second,
		},
	}
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("invalid config: PORT must not be empty")
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid config: rate limit rps and burst must be positive")
	}
	if c.Calculus.DerivativeStep < 0 {
		return fmt.Errorf("invalid config: derivative step must not be negative")
	}
	if c.Calculus.IntegrationSteps <= 0 {
		return fmt.Errorf("invalid config: integration steps must be positive")
	}
	if limit := c.Calculus.MaxIntegrationSteps; limit < 0 || (limit > 0 && c.Calculus.IntegrationSteps > limit) {
		return fmt.Errorf("invalid config: max integration steps must be 0 (unbounded) or at least the default step count")
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}
