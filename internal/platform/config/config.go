// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Refresh   RefreshConfig   `koanf:"refresh"`
	Probes    ProbesConfig    `koanf:"probes"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// RefreshConfig holds settings for the background refresh loop.
type RefreshConfig struct {
	Interval time.Duration `koanf:"interval"`
	// WatchMarker triggers an early refresh whenever the scheduler marker
	// file is created or removed.
	WatchMarker bool `koanf:"watch_marker"`
}

// ProbesConfig groups the settings of every dependency probe.
type ProbesConfig struct {
	Database  DatabaseProbeConfig  `koanf:"database"`
	Scheduler SchedulerProbeConfig `koanf:"scheduler"`
	Dashboard ClientConfig         `koanf:"dashboard"`
}

// DatabaseProbeConfig holds the database connection and probe settings.
type DatabaseProbeConfig struct {
	Driver  string        `koanf:"driver"`
	DSN     string        `koanf:"dsn"`
	Timeout time.Duration `koanf:"timeout"`
}

// SchedulerProbeConfig holds the scheduler marker-file probe settings.
type SchedulerProbeConfig struct {
	MarkerPath string        `koanf:"marker_path"`
	Timeout    time.Duration `koanf:"timeout"`
}

// ClientConfig holds outbound HTTP client settings used by the dashboard probe.
type ClientConfig struct {
	URL            string               `koanf:"url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings. A zero
// RequestsPerSecond disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
