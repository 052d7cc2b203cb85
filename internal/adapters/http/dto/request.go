package dto

import (
	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/device"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/validation"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

// FieldID is the body member that must match the route id on updates.
const FieldID = "id"

// MsgIDMismatch is reported when a body id differs from the route id.
const MsgIDMismatch = "does not match the id in the path"

// DeviceRequest is the JSON body for creating or replacing a device. Field
// rules are enforced by the domain; the request only maps the input.
type DeviceRequest struct {
	ID           *int64 `json:"id,omitempty"`
	SerialNumber string `json:"serialNumber"`
	DeviceName   string `json:"deviceName"`
	DeviceType   string `json:"deviceType"`
}

// CheckID rejects a body id that differs from the route id.
func (r *DeviceRequest) CheckID(routeID int64) error {
	return checkID(r.ID, routeID)
}

// ToInput maps the request to a ports.DeviceInput. Device types match case
// insensitively; an unknown type is passed through so the domain reports it.
func (r *DeviceRequest) ToInput() ports.DeviceInput {
	t, ok := device.ParseType(r.DeviceType)
	if !ok {
		t = device.Type(r.DeviceType)
	}
	return ports.DeviceInput{
		SerialNumber: r.SerialNumber,
		DeviceName:   r.DeviceName,
		Type:         t,
	}
}

// PersonRequest is the JSON body for creating or replacing a person.
type PersonRequest struct {
	ID          *int64 `json:"id,omitempty"`
	LastName    string `json:"lastName"`
	FirstName   string `json:"firstName"`
	MailAddress string `json:"mailAddress"`
}

// CheckID rejects a body id that differs from the route id.
func (r *PersonRequest) CheckID(routeID int64) error {
	return checkID(r.ID, routeID)
}

// ToInput maps the request to a ports.PersonInput.
func (r *PersonRequest) ToInput() ports.PersonInput {
	return ports.PersonInput{
		LastName:    r.LastName,
		FirstName:   r.FirstName,
		MailAddress: r.MailAddress,
	}
}

// UsageRequest is the JSON body for creating or replacing a usage. Dates are
// calendar days in YYYY-MM-DD form.
type UsageRequest struct {
	ID       *int64      `json:"id,omitempty"`
	DeviceID int64       `json:"deviceId"`
	PersonID int64       `json:"personId"`
	From     domain.Date `json:"from"`
	To       domain.Date `json:"to"`
}

// Validate checks that both dates are present. The remaining rules belong to
// the domain.
func (r *UsageRequest) Validate() error {
	if r.From.IsZero() {
		return domain.NewValidationError(validation.FieldFrom, validation.MsgRequired)
	}
	if r.To.IsZero() {
		return domain.NewValidationError(validation.FieldTo, validation.MsgRequired)
	}
	return nil
}

// CheckID rejects a body id that differs from the route id.
func (r *UsageRequest) CheckID(routeID int64) error {
	return checkID(r.ID, routeID)
}

// ToInput maps the request to a ports.UsageInput.
func (r *UsageRequest) ToInput() ports.UsageInput {
	return ports.UsageInput{
		DeviceID: r.DeviceID,
		PersonID: r.PersonID,
		From:     r.From,
		To:       r.To,
	}
}

func checkID(bodyID *int64, routeID int64) error {
	if bodyID != nil && *bodyID != routeID {
		return domain.NewValidationError(FieldID, MsgIDMismatch)
	}
	return nil
}
