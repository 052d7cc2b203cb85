package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/device-usage-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

// UsageHandler handles HTTP requests for device bookings.
type UsageHandler struct {
	svc ports.UsageService
}

// NewUsageHandler creates a new UsageHandler with the given service port.
func NewUsageHandler(svc ports.UsageService) *UsageHandler {
	return &UsageHandler{svc: svc}
}

// ListUsages handles GET /api/v1/usages.
func (h *UsageHandler) ListUsages(w http.ResponseWriter, r *http.Request) {
	usages, err := h.svc.ListUsages(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToUsageListResponse(usages))
}

// CreateUsage handles POST /api/v1/usages.
func (h *UsageHandler) CreateUsage(w http.ResponseWriter, r *http.Request) {
	var req dto.UsageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateUsage(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeCreated(w, r, created.ID, dto.ToUsageResponse(created))
}

// GetUsage handles GET /api/v1/usages/{id}.
func (h *UsageHandler) GetUsage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	u, err := h.svc.GetUsage(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToUsageResponse(u))
}

// UpdateUsage handles PUT /api/v1/usages/{id}.
func (h *UsageHandler) UpdateUsage(w http.ResponseWriter, r *http.Request) {
	var req dto.UsageRequest
	id, ok := decodeReplacement(w, r, &req)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	updated, err := h.svc.UpdateUsage(r.Context(), id, req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToUsageResponse(updated))
}

// DeleteUsage handles DELETE /api/v1/usages/{id}.
func (h *UsageHandler) DeleteUsage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteUsage(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
