package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jsamuelsen11/device-usage-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

// readinessTimeout keeps a hung database or seed source from stalling the
// orchestrator's probe.
const readinessTimeout = 3 * time.Second

// HealthHandler serves /health/live and /health/ready.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness reports that the process is up. It checks no dependencies.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Readiness answers 200 when every registered dependency is healthy and 503
// otherwise, listing each dependency's outcome.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	resp, ready := dto.ToHealthResponse(h.registry.CheckAll(ctx))
	if !ready {
		respond(w, r, http.StatusServiceUnavailable, resp)
		return
	}
	respond(w, r, http.StatusOK, resp)
}
