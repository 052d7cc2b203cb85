package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/device-usage-service/internal/adapters/http"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func loopbackConfig() config.ServerConfig {
	return config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		host string
		port int
		want string
	}{
		{name: "ipv4", host: "127.0.0.1", port: 9090, want: "127.0.0.1:9090"},
		{name: "all interfaces", host: "", port: 8080, want: ":8080"},
		{name: "ipv6", host: "::1", port: 8080, want: "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := adapthttp.NewServer(config.ServerConfig{Host: tt.host, Port: tt.port}, http.NotFoundHandler(), nil)
			if got := s.Addr(); got != tt.want {
				t.Errorf("Addr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServer_ListenReportsBoundPort(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(loopbackConfig(), http.NotFoundHandler(), discardLogger())
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error: %v", err)
	}
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })

	if strings.HasSuffix(s.Addr(), ":0") {
		t.Errorf("Addr() = %q, want the kernel-assigned port", s.Addr())
	}
	if err := s.Listen(); err != nil {
		t.Errorf("second Listen() error: %v", err)
	}
}

func TestServer_ServesUntilShutdown(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "devices at "+r.URL.Path)
	})

	s := adapthttp.NewServer(loopbackConfig(), handler, discardLogger())
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	resp, err := http.Get("http://" + s.Addr() + "/api/v1/devices")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if string(body) != "devices at /api/v1/devices" {
		t.Errorf("body = %q, want %q", body, "devices at /api/v1/devices")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Start() error after shutdown: %v", err)
	}
}

func TestServer_ShutdownWithoutDeadline(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(loopbackConfig(), http.NotFoundHandler(), discardLogger())
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Start() error after shutdown: %v", err)
	}
}

func TestServer_StartFailsOnBusyPort(t *testing.T) {
	t.Parallel()

	first := adapthttp.NewServer(loopbackConfig(), http.NotFoundHandler(), discardLogger())
	if err := first.Listen(); err != nil {
		t.Fatalf("Listen() error: %v", err)
	}
	t.Cleanup(func() { _ = first.Shutdown(context.Background()) })

	cfg := loopbackConfig()
	_, port, err := net.SplitHostPort(first.Addr())
	if err != nil {
		t.Fatalf("SplitHostPort: %v", err)
	}
	if cfg.Port, err = strconv.Atoi(port); err != nil {
		t.Fatalf("Atoi: %v", err)
	}

	second := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())
	if err := second.Start(); err == nil {
		t.Fatal("Start() on a bound port returned nil, want error")
	}
}
