// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/device-usage-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

// DeviceHandler handles HTTP requests for device CRUD.
type DeviceHandler struct {
	svc ports.DeviceService
}

// NewDeviceHandler creates a new DeviceHandler with the given service port.
func NewDeviceHandler(svc ports.DeviceService) *DeviceHandler {
	return &DeviceHandler{svc: svc}
}

// ListDevices handles GET /api/v1/devices.
func (h *DeviceHandler) ListDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := h.svc.ListDevices(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToDeviceListResponse(devices))
}

// ListDevicesWithUsageCounts handles GET /api/v1/devices/with-counts.
func (h *DeviceHandler) ListDevicesWithUsageCounts(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListDevicesWithUsageCounts(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToDeviceSummaryListResponse(summaries))
}

// CreateDevice handles POST /api/v1/devices.
func (h *DeviceHandler) CreateDevice(w http.ResponseWriter, r *http.Request) {
	var req dto.DeviceRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateDevice(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeCreated(w, r, created.ID, dto.ToDeviceResponse(created))
}

// GetDevice handles GET /api/v1/devices/{id}.
func (h *DeviceHandler) GetDevice(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	d, err := h.svc.GetDevice(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToDeviceResponse(d))
}

// UpdateDevice handles PUT /api/v1/devices/{id}.
func (h *DeviceHandler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	var req dto.DeviceRequest
	id, ok := decodeReplacement(w, r, &req)
	if !ok {
		return
	}

	updated, err := h.svc.UpdateDevice(r.Context(), id, req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToDeviceResponse(updated))
}

// DeleteDevice handles DELETE /api/v1/devices/{id}. Usages of the device are
// removed with it.
func (h *DeviceHandler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteDevice(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
