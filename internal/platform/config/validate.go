package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Refresh.validate(),
		c.Probes.validate(),
		c.Telemetry.validate(),
		c.validateBreakerCooldown(),
	)
}

// validateBreakerCooldown requires the dashboard breaker to leave the open
// state before the next refresh cycle starts.
func (c *Config) validateBreakerCooldown() error {
	if c.Refresh.Interval <= 0 {
		return nil
	}
	if cooldown := c.Probes.Dashboard.CircuitBreaker.Timeout; cooldown >= c.Refresh.Interval {
		return fmt.Errorf("probes.dashboard.circuit_breaker.timeout (%s) must be less than refresh.interval (%s)",
			cooldown, c.Refresh.Interval)
	}
	return nil
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (r *RefreshConfig) validate() error {
	if r.Interval <= 0 {
		return errors.New("refresh.interval must be positive")
	}
	return nil
}

func (p *ProbesConfig) validate() error {
	var errs []error

	switch p.Database.Driver {
	case "sqlite", "sqlite3":
		// Registered drivers.
	default:
		errs = append(errs, fmt.Errorf("probes.database.driver must be one of: sqlite, sqlite3; got %q", p.Database.Driver))
	}
	if p.Database.DSN == "" {
		errs = append(errs, errors.New("probes.database.dsn must not be empty"))
	}
	if p.Database.Timeout <= 0 {
		errs = append(errs, errors.New("probes.database.timeout must be positive"))
	}

	if p.Scheduler.MarkerPath == "" {
		errs = append(errs, errors.New("probes.scheduler.marker_path must not be empty"))
	}
	if p.Scheduler.Timeout <= 0 {
		errs = append(errs, errors.New("probes.scheduler.timeout must be positive"))
	}

	errs = append(errs, p.Dashboard.validate())

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if u, err := url.Parse(cl.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("probes.dashboard.url must be an absolute URL, got %q", cl.URL))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("probes.dashboard.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("probes.dashboard.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("probes.dashboard.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("probes.dashboard.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("probes.dashboard.rate_limit.requests_per_second must be >= 0, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("probes.dashboard.rate_limit.burst_size must be >= 1, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp", "otlp-grpc":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp, otlp-grpc; got %q", t.Exporter))
	}

	if t.Exporter != "stdout" && t.Endpoint == "" {
		errs = append(errs, fmt.Errorf("telemetry.endpoint must not be empty when exporter is %s", t.Exporter))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty when telemetry is enabled"))
	}

	return errors.Join(errs...)
}
