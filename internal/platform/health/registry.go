// Package health keeps the set of dependencies the readiness probe asks
// about: the database and, when configured, the remote seed source.
package health

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

// maxConcurrentChecks bounds how many health checks run at once.
const maxConcurrentChecks = 4

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry implements [ports.HealthRegistry]. Register and CheckAll may be
// called concurrently.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register adds checker. Later registrations win when names collide.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	r.checkers = append(r.checkers, checker)
	r.mu.Unlock()
}

// CheckAll runs every registered check with at most maxConcurrentChecks in
// flight and returns the outcome per checker name. A nil value means
// healthy. One failing check never cancels the others.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))

	var g errgroup.Group
	g.SetLimit(maxConcurrentChecks)
	for i, c := range checkers {
		g.Go(func() error {
			errs[i] = c.HealthCheck(ctx)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}
