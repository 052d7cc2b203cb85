package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jsamuelsen11/device-usage-service/internal/platform/config"
)

func testPolicy() retryPolicy {
	return newRetryPolicy(config.RetryConfig{
		MaxAttempts:     4,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2,
	})
}

func TestRetryPolicy_DelayGrowsWithinJitter(t *testing.T) {
	t.Parallel()

	p := testPolicy()
	tests := []struct {
		retry int
		base  time.Duration
	}{
		{retry: 1, base: 100 * time.Millisecond},
		{retry: 2, base: 200 * time.Millisecond},
		{retry: 3, base: 400 * time.Millisecond},
		{retry: 5, base: time.Second},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.retry), func(t *testing.T) {
			t.Parallel()

			lo := time.Duration(float64(tt.base) * (1 - jitter))
			hi := time.Duration(float64(tt.base) * (1 + jitter))
			for range 50 {
				if d := p.delay(tt.retry, 0); d < lo || d > hi {
					t.Fatalf("delay(%d) = %v, want within [%v, %v]", tt.retry, d, lo, hi)
				}
			}
		})
	}
}

func TestRetryPolicy_ServerWait(t *testing.T) {
	t.Parallel()

	p := testPolicy()

	if d := p.delay(1, 800*time.Millisecond); d != 800*time.Millisecond {
		t.Errorf("delay with Retry-After 800ms = %v, want 800ms", d)
	}
	if d := p.delay(1, time.Minute); d != time.Second {
		t.Errorf("delay with Retry-After 1m = %v, want the 1s ceiling", d)
	}
	if d := p.delay(1, time.Millisecond); d < 75*time.Millisecond {
		t.Errorf("delay with short Retry-After = %v, want backoff to win", d)
	}
}

func TestNewRetryPolicy_AtLeastOneAttempt(t *testing.T) {
	t.Parallel()

	if p := newRetryPolicy(config.RetryConfig{}); p.attempts != 1 {
		t.Errorf("attempts = %d, want 1", p.attempts)
	}
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "empty", value: "", want: 0},
		{name: "seconds", value: "3", want: 3 * time.Second},
		{name: "padded seconds", value: " 2 ", want: 2 * time.Second},
		{name: "negative", value: "-5", want: 0},
		{name: "http date", value: now.Add(30 * time.Second).Format(http.TimeFormat), want: 30 * time.Second},
		{name: "past http date", value: now.Add(-time.Minute).Format(http.TimeFormat), want: 0},
		{name: "garbage", value: "soon", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := retryAfter(tt.value, now); got != tt.want {
				t.Errorf("retryAfter(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "wrapped deadline", err: fmt.Errorf("get: %w", context.DeadlineExceeded), want: false},
		{name: "connection reset", err: errors.New("connection reset by peer"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := retryable(tt.err); got != tt.want {
				t.Errorf("retryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRetryableStatus(t *testing.T) {
	t.Parallel()

	for code, want := range map[int]bool{
		http.StatusOK:                  false,
		http.StatusNotFound:            false,
		http.StatusConflict:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
	} {
		if got := retryableStatus(code); got != want {
			t.Errorf("retryableStatus(%d) = %v, want %v", code, got, want)
		}
	}
}

func TestClampUint32(t *testing.T) {
	t.Parallel()

	for in, want := range map[int]uint32{-1: 0, 0: 0, 3: 3} {
		if got := clampUint32(in); got != want {
			t.Errorf("clampUint32(%d) = %d, want %d", in, got, want)
		}
	}
}
