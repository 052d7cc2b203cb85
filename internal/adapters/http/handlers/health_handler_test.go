package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/device-usage-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/device-usage-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/device-usage-service/mocks"
)

func TestLiveness_SkipsDependencies(t *testing.T) {
	t.Parallel()

	// No CheckAll expectation: the mock fails the test if it is called.
	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.HealthResponse](t, rec)
	if resp.Status != "ok" || len(resp.Checks) != 0 {
		t.Errorf("response = %+v, want status ok without checks", resp)
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "database and seed source healthy",
			results:    map[string]error{"database": nil, "seed-source": nil},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]string{"database": "ok", "seed-source": "ok"},
		},
		{
			name:       "seed source unreachable",
			results:    map[string]error{"database": nil, "seed-source": errors.New("connection refused")},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: map[string]string{"database": "ok", "seed-source": "connection refused"},
		},
		{
			name:       "nothing registered",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			rec := httptest.NewRecorder()
			handlers.NewHealthHandler(registry).Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody))

			requireStatus(t, rec, tt.wantCode)
			resp := decodeJSON[dto.HealthResponse](t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if len(resp.Checks) != len(tt.wantChecks) {
				t.Fatalf("checks = %v, want %v", resp.Checks, tt.wantChecks)
			}
			for name, want := range tt.wantChecks {
				if resp.Checks[name] != want {
					t.Errorf("checks[%q] = %q, want %q", name, resp.Checks[name], want)
				}
			}
		})
	}
}

func TestReadiness_BoundsCheckDuration(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(map[string]error{"database": nil})

	rec := httptest.NewRecorder()
	handlers.NewHealthHandler(registry).Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
}
