package dto_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/device-usage-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/device"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/validation"
)

func int64Ptr(v int64) *int64 { return &v }

func TestDeviceRequest_ToInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rawType  string
		wantType device.Type
	}{
		{name: "exact type", rawType: "Tablet", wantType: device.TypeTablet},
		{name: "case insensitive type", rawType: "smartphone", wantType: device.TypeSmartPhone},
		{name: "unknown type passes through", rawType: "Laptop", wantType: device.Type("Laptop")},
		{name: "empty type passes through", rawType: "", wantType: device.Type("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := dto.DeviceRequest{SerialNumber: "SN-1", DeviceName: "Pad", DeviceType: tt.rawType}

			in := req.ToInput()
			if in.Type != tt.wantType {
				t.Errorf("ToInput().Type = %q, want %q", in.Type, tt.wantType)
			}
			if in.SerialNumber != "SN-1" || in.DeviceName != "Pad" {
				t.Errorf("ToInput() = %+v, want fields copied", in)
			}
		})
	}
}

func TestCheckID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		bodyID  *int64
		wantErr bool
	}{
		{name: "absent id", bodyID: nil},
		{name: "matching id", bodyID: int64Ptr(5)},
		{name: "different id", bodyID: int64Ptr(6), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			errs := []error{
				(&dto.DeviceRequest{ID: tt.bodyID}).CheckID(5),
				(&dto.PersonRequest{ID: tt.bodyID}).CheckID(5),
				(&dto.UsageRequest{ID: tt.bodyID}).CheckID(5),
			}
			for _, err := range errs {
				if (err != nil) != tt.wantErr {
					t.Fatalf("CheckID() error = %v, wantErr %v", err, tt.wantErr)
				}
				if !tt.wantErr {
					continue
				}
				var ve *domain.ValidationError
				if !errors.As(err, &ve) || ve.Field != dto.FieldID {
					t.Errorf("CheckID() error = %v, want ValidationError on %q", err, dto.FieldID)
				}
			}
		})
	}
}

func TestUsageRequest_DecodeAndValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "complete", body: `{"deviceId":1,"personId":2,"from":"2026-03-02","to":"2026-03-05"}`},
		{name: "missing from", body: `{"deviceId":1,"personId":2,"to":"2026-03-05"}`, wantField: validation.FieldFrom},
		{name: "missing to", body: `{"deviceId":1,"personId":2,"from":"2026-03-02"}`, wantField: validation.FieldTo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req dto.UsageRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}

			err := req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				in := req.ToInput()
				if !in.From.Equal(domain.NewDate(2026, time.March, 2)) || in.DeviceID != 1 || in.PersonID != 2 {
					t.Errorf("ToInput() = %+v", in)
				}
				return
			}

			var ve *domain.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.wantField {
				t.Errorf("Validate() error = %v, want field %q", err, tt.wantField)
			}
		})
	}
}

func TestPersonRequest_ToInput(t *testing.T) {
	t.Parallel()

	req := dto.PersonRequest{LastName: "Huber", FirstName: "Anna", MailAddress: "anna@example.com"}
	in := req.ToInput()

	if in.LastName != "Huber" || in.FirstName != "Anna" || in.MailAddress != "anna@example.com" {
		t.Errorf("ToInput() = %+v", in)
	}
}
