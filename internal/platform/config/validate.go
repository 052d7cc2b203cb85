package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// problems collects every violation found in one pass so a bad deployment
// sees all of them at once.
type problems []error

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Errorf(format, args...))
}

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		p.addf(format, args...)
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.check(slices.Contains(allowed, got), "%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
}

func (p *problems) port(key string, v int) {
	p.check(v >= 1 && v <= 65535, "%s must be between 1 and 65535, got %d", key, v)
}

// Validate reports every invalid setting in c, joined into one error.
func (c *Config) Validate() error {
	var p problems

	p.port("server.port", c.Server.Port)
	p.check(c.Server.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(c.Server.WriteTimeout > 0, "server.write_timeout must be positive")

	p.oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", c.Log.Format, "json", "text")

	c.Database.validate(&p)

	if c.Seed.Enabled {
		if c.Seed.Remote.BaseURL == "" {
			p.check(c.Seed.File != "", "seed.file must not be empty when seeding is enabled without a remote")
		} else {
			c.Seed.Remote.validate(&p, "seed.remote")
		}
	}

	if c.Telemetry.Enabled {
		p.oneOf("telemetry.exporter", c.Telemetry.Exporter, "stdout", "otlp")
		if c.Telemetry.Exporter == "otlp" {
			p.check(c.Telemetry.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
		}
	}

	return errors.Join(p...)
}

func (d *DatabaseConfig) validate(p *problems) {
	switch d.Driver {
	case "postgres":
		if d.DSN == "" {
			p.check(d.Host != "" && d.Name != "", "database.host and database.name are required when database.dsn is empty")
			p.port("database.port", d.Port)
		}
	case "sqlite":
		p.check(d.DSN != "", "database.dsn must not be empty for sqlite")
	default:
		p.oneOf("database.driver", d.Driver, "postgres", "sqlite")
	}
	p.check(d.MaxOpenConns >= 0, "database.max_open_conns must not be negative, got %d", d.MaxOpenConns)
}

func (cl *ClientConfig) validate(p *problems, prefix string) {
	p.check(cl.BaseURL != "", "%s.base_url must not be empty", prefix)
	p.check(cl.Timeout > 0, "%s.timeout must be positive", prefix)
	p.check(cl.Retry.MaxAttempts >= 1, "%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "%s.retry.multiplier must be positive, got %g", prefix, cl.Retry.Multiplier)
	p.check(cl.CircuitBreaker.MaxFailures >= 1, "%s.circuit_breaker.max_failures must be >= 1, got %d",
		prefix, cl.CircuitBreaker.MaxFailures)
	p.check(cl.RateLimit.RequestsPerSecond >= 0, "%s.rate_limit.requests_per_second must not be negative", prefix)
}
