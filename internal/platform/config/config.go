// Package config loads the device usage service settings from layered YAML
// profiles and APP_* environment variables, then validates them.
package config

import "time"

// Config is the root of the settings tree; koanf tags name the YAML keys.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Database  DatabaseConfig  `koanf:"database"`
	Seed      SeedConfig      `koanf:"seed"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig configures the public HTTP listener. WriteTimeout also bounds
// handler execution through the router's timeout middleware.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DatabaseConfig selects and tunes the storage backend. Driver "postgres"
// connects with DSN when set, otherwise with the discrete connection fields.
// Driver "sqlite" opens DSN as a file path (":memory:" for an ephemeral store).
type DatabaseConfig struct {
	Driver          string        `koanf:"driver"`
	DSN             string        `koanf:"dsn"`
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"`
	SSLMode         string        `koanf:"sslmode"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	BusyTimeout     time.Duration `koanf:"busy_timeout"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
	LogQueries      bool          `koanf:"log_queries"`
}

// SeedConfig controls the startup import of historical bookings. The CSV is
// read from Remote.BaseURL+RemotePath when Remote.BaseURL is set, otherwise
// from File.
type SeedConfig struct {
	Enabled    bool         `koanf:"enabled"`
	File       string       `koanf:"file"`
	RemotePath string       `koanf:"remote_path"`
	Remote     ClientConfig `koanf:"remote"`
}

// ClientConfig tunes one outbound HTTP dependency.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig bounds retries of idempotent requests. Delays grow by
// Multiplier from InitialInterval up to MaxInterval.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig opens the breaker after MaxFailures consecutive
// failures and probes again after Timeout.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig selects the OpenTelemetry exporter. Exporter is "stdout"
// or "otlp"; Endpoint is only read for otlp.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
