package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/device-usage-service/internal/platform/config"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/logging"
)

// jitter spreads each delay by up to this fraction either way.
const jitter = 0.25

type retryPolicy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts:   max(cfg.MaxAttempts, 1),
		initial:    cfg.InitialInterval,
		ceiling:    cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// delay returns the wait before retry number n (1 for the first retry):
// exponential growth capped at the ceiling, then jittered. A longer
// server-requested wait wins, still capped at the ceiling.
func (p retryPolicy) delay(n int, serverWait time.Duration) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(n-1))
	d = math.Min(d, float64(p.ceiling))
	d += d * jitter * (2*rand.Float64() - 1)

	wait := time.Duration(math.Max(d, 0))
	if serverWait > wait {
		wait = min(serverWait, p.ceiling)
	}
	return wait
}

// send issues req until it gets a non-retryable outcome or runs out of
// attempts. GET requests carry no body, so req is reused as is.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	var (
		lastErr    error
		serverWait time.Duration
	)

	for attempt := range c.retry.attempts {
		if attempt > 0 {
			wait := c.retry.delay(attempt, serverWait)
			logging.FromContext(ctx).WarnContext(ctx, "retrying remote request",
				slog.String("peer_service", c.name),
				slog.String("url", req.URL.String()),
				slog.Int("attempt", attempt+1),
				slog.Int("max_attempts", c.retry.attempts),
				slog.Duration("backoff", wait),
				slog.Any("error", lastErr),
			)
			if err := sleep(ctx, wait); err != nil {
				return nil, err
			}
		}

		resp, err := c.hc.Do(req)
		if err != nil {
			if !retryable(err) {
				return nil, err
			}
			lastErr, serverWait = err, 0
			continue
		}

		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("%s answered HTTP %d", c.name, resp.StatusCode)
		serverWait = retryAfter(resp.Header.Get("Retry-After"), time.Now())
		if attempt == c.retry.attempts-1 {
			return resp, lastErr
		}

		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}

	return nil, lastErr
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// retryAfter parses a Retry-After value in either delay-seconds or
// HTTP-date form. Malformed or past values yield zero.
func retryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

// retryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final; anything else may be transient.
func retryable(err error) bool {
	return err != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
