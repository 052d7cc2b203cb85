package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/device-usage-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/device-usage-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/device"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/validation"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
	"github.com/jsamuelsen11/device-usage-service/mocks"
)

func newDeviceHandler(t *testing.T) (*handlers.DeviceHandler, *mocks.MockDeviceService) {
	t.Helper()
	svc := mocks.NewMockDeviceService(t)
	return handlers.NewDeviceHandler(svc), svc
}

// --- ListDevices ---

func TestListDevices_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDeviceHandler(t)

	svc.EXPECT().ListDevices(mock.Anything).Return([]device.Device{validDevice()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices", nil)
	h.ListDevices(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.DeviceListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
	if resp.Devices[0].DeviceType != "Tablet" {
		t.Errorf("DeviceType = %q, want %q", resp.Devices[0].DeviceType, "Tablet")
	}
}

func TestListDevices_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newDeviceHandler(t)

	svc.EXPECT().ListDevices(mock.Anything).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices", nil)
	h.ListDevices(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}

func TestListDevicesWithUsageCounts_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDeviceHandler(t)

	svc.EXPECT().ListDevicesWithUsageCounts(mock.Anything).
		Return([]device.Summary{{Device: validDevice(), UsageCount: 4}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/with-counts", nil)
	h.ListDevicesWithUsageCounts(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.DeviceSummaryListResponse](t, rec)
	if resp.Count != 1 || resp.Devices[0].UsageCount != 4 {
		t.Errorf("resp = %+v, want one device with 4 usages", resp)
	}
}

// --- CreateDevice ---

func TestCreateDevice_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDeviceHandler(t)

	created := validDevice()
	want := ports.DeviceInput{SerialNumber: "SN-1001", DeviceName: "iPad Air", Type: device.TypeTablet}
	svc.EXPECT().CreateDevice(mock.Anything, want).Return(&created, nil)

	body := jsonBody(t, dto.DeviceRequest{SerialNumber: "SN-1001", DeviceName: "iPad Air", DeviceType: "tablet"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/devices", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateDevice(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	if got := rec.Header().Get("Location"); got != "/api/v1/devices/1" {
		t.Errorf("Location = %q, want %q", got, "/api/v1/devices/1")
	}
	resp := decodeJSON[dto.DeviceResponse](t, rec)
	if resp.SerialNumber != "SN-1001" {
		t.Errorf("SerialNumber = %q, want %q", resp.SerialNumber, "SN-1001")
	}
}

func TestCreateDevice_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newDeviceHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/devices", bytes.NewBufferString("{bad"))
	req.Header.Set("Content-Type", "application/json")
	h.CreateDevice(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	requireErrorLocation(t, rec, "body")
}

func TestCreateDevice_ValidationError(t *testing.T) {
	t.Parallel()
	h, svc := newDeviceHandler(t)

	svc.EXPECT().CreateDevice(mock.Anything, mock.AnythingOfType("ports.DeviceInput")).
		Return(nil, domain.NewValidationError(validation.FieldSerialNumber, "must be at least 3 characters"))

	body := jsonBody(t, dto.DeviceRequest{SerialNumber: "AB", DeviceName: "iPad Air", DeviceType: "Tablet"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/devices", body)
	h.CreateDevice(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	requireErrorLocation(t, rec, "body.serialNumber")
}

func TestCreateDevice_DuplicateSerial(t *testing.T) {
	t.Parallel()
	h, svc := newDeviceHandler(t)

	svc.EXPECT().CreateDevice(mock.Anything, mock.AnythingOfType("ports.DeviceInput")).
		Return(nil, domain.ErrConflict)

	body := jsonBody(t, dto.DeviceRequest{SerialNumber: "SN-1001", DeviceName: "iPad Air", DeviceType: "Tablet"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/devices", body)
	h.CreateDevice(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

// --- GetDevice ---

func TestGetDevice_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDeviceHandler(t)

	d := validDevice()
	svc.EXPECT().GetDevice(mock.Anything, int64(1)).Return(&d, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/devices/1", nil), map[string]string{"id": "1"})
	h.GetDevice(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.DeviceResponse](t, rec)
	if resp.ID != 1 {
		t.Errorf("ID = %d, want 1", resp.ID)
	}
}

func TestGetDevice_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newDeviceHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/devices/abc", nil), map[string]string{"id": "abc"})
	h.GetDevice(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	requireErrorLocation(t, rec, "path.id")
}

func TestGetDevice_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newDeviceHandler(t)

	svc.EXPECT().GetDevice(mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/devices/99", nil), map[string]string{"id": "99"})
	h.GetDevice(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- UpdateDevice ---

func TestUpdateDevice_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDeviceHandler(t)

	updated := validDevice()
	updated.DeviceName = "iPad Pro"
	updated.Version = 2
	want := ports.DeviceInput{SerialNumber: "SN-1001", DeviceName: "iPad Pro", Type: device.TypeTablet}
	svc.EXPECT().UpdateDevice(mock.Anything, int64(1), want).Return(&updated, nil)

	body := jsonBody(t, dto.DeviceRequest{ID: int64Ptr(1), SerialNumber: "SN-1001", DeviceName: "iPad Pro", DeviceType: "Tablet"})
	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPut, "/api/v1/devices/1", body), map[string]string{"id": "1"})
	h.UpdateDevice(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.DeviceResponse](t, rec)
	if resp.DeviceName != "iPad Pro" || resp.Version != 2 {
		t.Errorf("resp = %+v, want iPad Pro at version 2", resp)
	}
}

func TestUpdateDevice_IDMismatch(t *testing.T) {
	t.Parallel()
	h, _ := newDeviceHandler(t)

	body := jsonBody(t, dto.DeviceRequest{ID: int64Ptr(2), SerialNumber: "SN-1001", DeviceName: "iPad", DeviceType: "Tablet"})
	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPut, "/api/v1/devices/1", body), map[string]string{"id": "1"})
	h.UpdateDevice(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	requireErrorLocation(t, rec, "body.id")
}

func TestUpdateDevice_StaleVersion(t *testing.T) {
	t.Parallel()
	h, svc := newDeviceHandler(t)

	svc.EXPECT().UpdateDevice(mock.Anything, int64(1), mock.AnythingOfType("ports.DeviceInput")).
		Return(nil, domain.ErrConflict)

	body := jsonBody(t, dto.DeviceRequest{SerialNumber: "SN-1001", DeviceName: "iPad", DeviceType: "Tablet"})
	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPut, "/api/v1/devices/1", body), map[string]string{"id": "1"})
	h.UpdateDevice(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

// --- DeleteDevice ---

func TestDeleteDevice_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDeviceHandler(t)

	svc.EXPECT().DeleteDevice(mock.Anything, int64(1)).Return(nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/devices/1", nil), map[string]string{"id": "1"})
	h.DeleteDevice(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestDeleteDevice_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newDeviceHandler(t)

	svc.EXPECT().DeleteDevice(mock.Anything, int64(1)).Return(domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/devices/1", nil), map[string]string{"id": "1"})
	h.DeleteDevice(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}
