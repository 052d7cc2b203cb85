package ports

import "context"

// HealthChecker reports whether one dependency of the service is usable.
// The database store and the remote seed source implement it.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, e.g. "database".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must give up
	// when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects HealthCheckers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and maps its name to the outcome. A nil
	// value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
