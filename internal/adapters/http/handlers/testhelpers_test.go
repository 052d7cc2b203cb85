package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/device-usage-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/device"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/person"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/usage"
)

var testDay = domain.NewDate(2026, time.March, 10)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validDevice() device.Device {
	return device.Device{
		ID:           1,
		SerialNumber: "SN-1001",
		DeviceName:   "iPad Air",
		Type:         device.TypeTablet,
		Version:      1,
	}
}

func validPerson() person.Person {
	return person.Person{
		ID:          3,
		LastName:    "Huber",
		FirstName:   "Anna",
		MailAddress: "anna.huber@example.com",
		Version:     1,
	}
}

func validUsage() usage.Details {
	return usage.Details{
		Usage: usage.Usage{
			ID:       7,
			DeviceID: 1,
			PersonID: 3,
			From:     testDay,
			To:       testDay.AddDays(6),
			Version:  1,
		},
		DeviceName:      "iPad Air",
		PersonFirstName: "Anna",
		PersonLastName:  "Huber",
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// requireErrorLocation decodes a problem response and checks the location
// of its single field error.
func requireErrorLocation(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1; body = %+v", len(resp.Errors), resp)
	}
	if resp.Errors[0].Location != want {
		t.Errorf("Location = %q, want %q", resp.Errors[0].Location, want)
	}
}

func int64Ptr(v int64) *int64 { return &v }
