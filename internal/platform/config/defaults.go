package config

const (
	defaultServerPort = 8080

	defaultPostgresPort = 5432
	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults is the bottom layer of Load. Every key a deployment may set through
// APP_* must appear here so envKeyMapper can resolve its underscores.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver":            "sqlite",
		"database.dsn":               "devices.db",
		"database.host":              "localhost",
		"database.port":              defaultPostgresPort,
		"database.user":              "",
		"database.password":          "",
		"database.name":              "devices",
		"database.sslmode":           "disable",
		"database.max_open_conns":    defaultMaxOpenConns,
		"database.max_idle_conns":    defaultMaxIdleConns,
		"database.conn_max_lifetime": "1h",
		"database.busy_timeout":      "5s",
		"database.auto_migrate":      true,
		"database.log_queries":       false,

		"seed.enabled":                                false,
		"seed.file":                                   "data/devices.csv",
		"seed.remote_path":                            "",
		"seed.remote.base_url":                        "",
		"seed.remote.timeout":                         "30s",
		"seed.remote.retry.max_attempts":              defaultRetryMaxAttempts,
		"seed.remote.retry.initial_interval":          "100ms",
		"seed.remote.retry.max_interval":              "10s",
		"seed.remote.retry.multiplier":                defaultRetryMultiplier,
		"seed.remote.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"seed.remote.circuit_breaker.timeout":         "30s",
		"seed.remote.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"seed.remote.rate_limit.requests_per_second":  0,
		"seed.remote.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "device-usage-service",
	}
}
