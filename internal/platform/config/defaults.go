package config

import "github.com/knadh/koanf/providers/confmap"

const (
	defaultServerPort = 8081

	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"refresh.interval":     "30s",
		"refresh.watch_marker": false,

		"probes.database.driver":  "sqlite",
		"probes.database.dsn":     "file:app.db?mode=ro",
		"probes.database.timeout": "5s",

		"probes.scheduler.marker_path": "/tmp/scheduler.pid",
		"probes.scheduler.timeout":     "1s",

		"probes.dashboard.url":                             "http://localhost:8080",
		"probes.dashboard.timeout":                         "5s",
		"probes.dashboard.retry.max_attempts":              defaultRetryMaxAttempts,
		"probes.dashboard.retry.initial_interval":          "100ms",
		"probes.dashboard.retry.max_interval":              "1s",
		"probes.dashboard.retry.multiplier":                defaultRetryMultiplier,
		"probes.dashboard.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"probes.dashboard.circuit_breaker.timeout":         "5s",
		"probes.dashboard.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"probes.dashboard.rate_limit.requests_per_second":  0,
		"probes.dashboard.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "container-health",
	}
}

// defaultsProvider exposes defaults() as a koanf provider.
func defaultsProvider() *confmap.Confmap {
	return confmap.Provider(defaults(), ".")
}
