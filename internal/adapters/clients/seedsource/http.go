package seedsource

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

var (
	_ ports.SeedSource    = (*HTTP)(nil)
	_ ports.HealthChecker = (*HTTP)(nil)
)

// HTTP downloads seed data from a remote export through the instrumented
// client, so the download is retried, rate limited and guarded by the
// client's circuit breaker.
type HTTP struct {
	client *httpclient.Client
	path   string
	logger *slog.Logger
}

// NewHTTP creates an HTTP source that fetches path relative to the client's
// base URL.
func NewHTTP(client *httpclient.Client, path string, logger *slog.Logger) *HTTP {
	return &HTTP{client: client, path: path, logger: logger}
}

// Open starts the download and returns the response body.
func (h *HTTP) Open(ctx context.Context) (io.ReadCloser, error) {
	resp, err := h.client.Get(ctx, h.path)

	// Retries exhausted on a retryable status leave both resp and err set.
	if resp != nil && resp.StatusCode != http.StatusOK {
		defer func() { _ = resp.Body.Close() }()
		return nil, translateHTTPError(resp)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "seed download failed",
			slog.String("url", h.Describe()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("downloading seed export: %w: %w", domain.ErrUnavailable, err)
	}

	return resp.Body, nil
}

// Describe returns the export URL.
func (h *HTTP) Describe() string {
	return h.client.BaseURL() + h.path
}

// Name identifies the source in readiness reports.
func (h *HTTP) Name() string {
	return h.client.Name()
}

// HealthCheck reports the client's circuit breaker state.
func (h *HTTP) HealthCheck(ctx context.Context) error {
	return h.client.HealthCheck(ctx)
}
