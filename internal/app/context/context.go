// Package appctx provides a run-scoped memo cache for application services.
//
// A RequestContext lives for one HTTP request or one import run and remembers
// the result of every lookup made through it, so an entity loaded once is not
// fetched again within the same unit of work:
//
//	rc := appctx.New(ctx)
//	dev, err := appctx.GetOrFetch(rc, appctx.Key("device", 7), fetchDevice)
//
// The HTTP middleware stores a fresh RequestContext on every request; services
// pick it up with FromContext and fall back to direct lookups when it is absent.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrTypeMismatch means one key was used with two different value types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext is a context.Context with a memo of lookup results. It is
// safe for concurrent use, and concurrent misses on one key share a single
// fetch.
type RequestContext struct {
	context.Context

	flight singleflight.Group

	mu   sync.Mutex
	memo map[string]outcome
}

type outcome struct {
	value any
	err   error
}

// New returns an empty RequestContext around ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, memo: make(map[string]outcome)}
}

type requestContextKey struct{}

// WithRequestContext returns ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// Key builds a memo key such as "device:7".
func Key(kind string, id any) string {
	return fmt.Sprintf("%s:%v", kind, id)
}

// GetOrFetch returns the remembered result for key, calling fetch on a
// miss. Errors are remembered too, so a missing device is looked up once.
func GetOrFetch[T any](rc *RequestContext, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	o, ok := rc.lookup(key)
	if !ok {
		v, _, _ := rc.flight.Do(key, func() (any, error) {
			if prior, ok := rc.lookup(key); ok {
				return prior, nil
			}
			val, err := fetch(rc.Context)
			fresh := outcome{value: val, err: err}
			rc.store(key, fresh)
			return fresh, nil
		})
		o = v.(outcome)
	}

	var zero T
	if o.err != nil {
		return zero, o.err
	}
	v, ok := o.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, o.value, zero)
	}
	return v, nil
}

func (rc *RequestContext) lookup(key string) (outcome, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	o, ok := rc.memo[key]
	return o, ok
}

func (rc *RequestContext) store(key string, o outcome) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.memo[key] = o
}

// Put remembers value under key. Services call it after a write so later
// reads in the same request see the new state.
func (rc *RequestContext) Put(key string, value any) {
	rc.store(key, outcome{value: value})
}

// Forget drops whatever is remembered under key.
func (rc *RequestContext) Forget(key string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	delete(rc.memo, key)
}

// Len returns the number of remembered keys.
func (rc *RequestContext) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.memo)
}
