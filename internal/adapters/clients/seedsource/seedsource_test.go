package seedsource_test

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/device-usage-service/internal/adapters/clients/seedsource"
	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/config"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/httpclient"
)

const csvBody = "SerialNumber;DeviceName;DeviceType;LastName;FirstName;Mail;From;To\n"

func testClient(baseURL string) *httpclient.Client {
	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     2,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
	return httpclient.New(cfg, "seed-source", nil, slog.New(slog.DiscardHandler))
}

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer func() { _ = rc.Close() }()
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading source: %v", err)
	}
	return string(b)
}

func TestFile_Open(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "devices.csv")
	if err := os.WriteFile(path, []byte(csvBody), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	src := seedsource.NewFile(path)
	rc, err := src.Open(context.Background())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got := readAll(t, rc); got != csvBody {
		t.Errorf("Open() content = %q, want %q", got, csvBody)
	}
	if src.Describe() != path {
		t.Errorf("Describe() = %q, want %q", src.Describe(), path)
	}
}

func TestFile_Open_Missing(t *testing.T) {
	t.Parallel()

	_, err := seedsource.NewFile(filepath.Join(t.TempDir(), "nope.csv")).Open(context.Background())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open() error = %v, want fs.ErrNotExist", err)
	}
}

func TestFile_Open_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := seedsource.NewFile("unused.csv").Open(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Open() error = %v, want context.Canceled", err)
	}
}

func TestHTTP_Open(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/exports/devices.csv" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = io.WriteString(w, csvBody)
	}))
	t.Cleanup(srv.Close)

	src := seedsource.NewHTTP(testClient(srv.URL), "/exports/devices.csv", slog.New(slog.DiscardHandler))

	rc, err := src.Open(context.Background())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got := readAll(t, rc); got != csvBody {
		t.Errorf("Open() content = %q, want %q", got, csvBody)
	}
	if want := srv.URL + "/exports/devices.csv"; src.Describe() != want {
		t.Errorf("Describe() = %q, want %q", src.Describe(), want)
	}
	if src.Name() != "seed-source" {
		t.Errorf("Name() = %q, want seed-source", src.Name())
	}
	if err := src.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

func TestHTTP_Open_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "missing export", status: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{name: "denied", status: http.StatusForbidden, wantErr: domain.ErrForbidden},
		{name: "server down after retries", status: http.StatusServiceUnavailable, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			t.Cleanup(srv.Close)

			src := seedsource.NewHTTP(testClient(srv.URL), "/devices.csv", slog.New(slog.DiscardHandler))

			rc, err := src.Open(context.Background())
			if rc != nil {
				_ = rc.Close()
				t.Fatal("Open() returned a reader on failure")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Open() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHTTP_Open_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	src := seedsource.NewHTTP(testClient(url), "/devices.csv", slog.New(slog.DiscardHandler))

	_, err := src.Open(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Open() error = %v, want ErrUnavailable", err)
	}
}
