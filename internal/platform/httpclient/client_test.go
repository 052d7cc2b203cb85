package httpclient_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/device-usage-service/internal/platform/config"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/telemetry"
)

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// exportServer serves a CSV export after failing the first failures calls
// with status.
func exportServer(t *testing.T, failures int32, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) <= failures {
			w.WriteHeader(status)
			return
		}
		_, _ = io.WriteString(w, "SerialNumber;DeviceName\n")
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func closeBody(resp *http.Response) {
	if resp != nil {
		_ = resp.Body.Close()
	}
}

func TestGet_JoinsBaseURL(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL+"/seed"), "seed-source", nil, discard())
	resp, err := client.Get(context.Background(), "/exports/usages.csv")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	closeBody(resp)

	if gotPath != "/seed/exports/usages.csv" {
		t.Errorf("path = %q, want %q", gotPath, "/seed/exports/usages.csv")
	}
}

func TestGet_Retries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		failures  int32
		status    int
		wantCalls int32
		wantErr   bool
		wantCode  int
	}{
		{name: "recovers after 503", failures: 2, status: http.StatusServiceUnavailable, wantCalls: 3, wantCode: http.StatusOK},
		{name: "recovers after 429", failures: 1, status: http.StatusTooManyRequests, wantCalls: 2, wantCode: http.StatusOK},
		{name: "404 is final", failures: 1, status: http.StatusNotFound, wantCalls: 1, wantCode: http.StatusNotFound},
		{name: "exhausted", failures: 10, status: http.StatusBadGateway, wantCalls: 3, wantErr: true, wantCode: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, calls := exportServer(t, tt.failures, tt.status)
			client := httpclient.New(testConfig(srv.URL), "seed-source", nil, discard())

			resp, err := client.Get(context.Background(), "/usages.csv")
			defer closeBody(resp)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Get() error = %v, wantErr %v", err, tt.wantErr)
			}
			if resp == nil {
				t.Fatal("Get() response = nil, want the last response")
			}
			if resp.StatusCode != tt.wantCode {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantCode)
			}
			if got := calls.Load(); got != tt.wantCalls {
				t.Errorf("calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestGet_PropagatesRequestHeaders(t *testing.T) {
	t.Parallel()

	headers := make(chan http.Header, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	ctx := httpclient.WithRequestID(context.Background(), "req-42")
	ctx = httpclient.WithCorrelationID(ctx, "corr-42")

	resp, err := httpclient.New(testConfig(srv.URL), "seed-source", nil, discard()).Get(ctx, "/")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	closeBody(resp)

	h := <-headers
	if got := h.Get("X-Request-ID"); got != "req-42" {
		t.Errorf("X-Request-ID = %q, want %q", got, "req-42")
	}
	if got := h.Get("X-Correlation-ID"); got != "corr-42" {
		t.Errorf("X-Correlation-ID = %q, want %q", got, "corr-42")
	}
}

func TestGet_OmitsHeadersWithoutIDs(t *testing.T) {
	t.Parallel()

	headers := make(chan http.Header, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
	}))
	t.Cleanup(srv.Close)

	resp, err := httpclient.New(testConfig(srv.URL), "seed-source", nil, discard()).Get(context.Background(), "/")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	closeBody(resp)

	h := <-headers
	if _, ok := h["X-Request-Id"]; ok {
		t.Error("X-Request-ID sent without a request ID in context")
	}
	if _, ok := h["X-Correlation-Id"]; ok {
		t.Error("X-Correlation-ID sent without a correlation ID in context")
	}
}

func TestGet_CircuitOpensAndHealthReflectsIt(t *testing.T) {
	t.Parallel()

	srv, calls := exportServer(t, 100, http.StatusInternalServerError)

	cfg := testConfig(srv.URL)
	cfg.Retry.MaxAttempts = 1
	cfg.CircuitBreaker.MaxFailures = 2
	client := httpclient.New(cfg, "seed-source", nil, discard())

	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck() before failures = %v, want nil", err)
	}

	for range 2 {
		resp, _ := client.Get(context.Background(), "/")
		closeBody(resp)
	}

	resp, err := client.Get(context.Background(), "/")
	closeBody(resp)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Get() error = %v, want %v", err, gobreaker.ErrOpenState)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2 (third rejected by the breaker)", got)
	}

	err = client.HealthCheck(context.Background())
	if err == nil || !strings.Contains(err.Error(), "circuit open") {
		t.Errorf("HealthCheck() = %v, want circuit open error", err)
	}
}

func TestGet_CircuitHalfOpensAndRecovers(t *testing.T) {
	t.Parallel()

	srv, _ := exportServer(t, 1, http.StatusInternalServerError)

	cfg := testConfig(srv.URL)
	cfg.Retry.MaxAttempts = 1
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 50 * time.Millisecond
	client := httpclient.New(cfg, "seed-source", nil, discard())

	resp, _ := client.Get(context.Background(), "/")
	closeBody(resp)

	time.Sleep(80 * time.Millisecond)

	err := client.HealthCheck(context.Background())
	if err == nil || !strings.Contains(err.Error(), "half-open") {
		t.Fatalf("HealthCheck() = %v, want half-open error", err)
	}

	resp, err = client.Get(context.Background(), "/")
	if err != nil {
		t.Fatalf("Get() in half-open = %v, want nil", err)
	}
	closeBody(resp)

	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() after recovery = %v, want nil", err)
	}
}

func TestGet_CanceledContextStopsRetries(t *testing.T) {
	t.Parallel()

	srv, calls := exportServer(t, 100, http.StatusServiceUnavailable)

	cfg := testConfig(srv.URL)
	cfg.Retry.InitialInterval = time.Second
	cfg.Retry.MaxInterval = time.Second
	client := httpclient.New(cfg, "seed-source", nil, discard())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	resp, err := client.Get(ctx, "/")
	closeBody(resp)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Get() error = %v, want %v", err, context.DeadlineExceeded)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestGet_RateLimitHonorsContext(t *testing.T) {
	t.Parallel()

	srv, calls := exportServer(t, 0, http.StatusOK)

	cfg := testConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.1, BurstSize: 1}
	client := httpclient.New(cfg, "seed-source", nil, discard())

	resp, err := client.Get(context.Background(), "/")
	if err != nil {
		t.Fatalf("first Get() error = %v", err)
	}
	closeBody(resp)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	resp, err = client.Get(ctx, "/")
	closeBody(resp)
	if err == nil {
		t.Fatal("second Get() = nil error, want rate limit wait to fail")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestGet_RecordsClientMetrics(t *testing.T) {
	t.Parallel()

	srv, _ := exportServer(t, 0, http.StatusOK)

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "test")
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	resp, err := httpclient.New(testConfig(srv.URL), "seed-source", metrics, discard()).Get(context.Background(), "/")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	closeBody(resp)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.client.request.total" {
				continue
			}
			sum := m.Data.(metricdata.Sum[int64])
			if len(sum.DataPoints) != 1 || sum.DataPoints[0].Value != 1 {
				t.Fatalf("data points = %+v, want a single count of 1", sum.DataPoints)
			}
			if v, ok := sum.DataPoints[0].Attributes.Value(telemetry.AttrResult); !ok || v.AsString() != "success" {
				t.Errorf("result = %v, want success", v.AsString())
			}
			return
		}
	}
	t.Error("http.client.request.total not recorded")
}

func TestClient_Accessors(t *testing.T) {
	t.Parallel()

	client := httpclient.New(testConfig("http://exports.internal"), "seed-source", nil, discard())

	if client.Name() != "seed-source" {
		t.Errorf("Name() = %q, want %q", client.Name(), "seed-source")
	}
	if client.BaseURL() != "http://exports.internal" {
		t.Errorf("BaseURL() = %q, want %q", client.BaseURL(), "http://exports.internal")
	}
}
