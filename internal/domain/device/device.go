// Package device holds the Device entity.
package device

import (
	"strings"

	"github.com/jsamuelsen11/device-usage-service/internal/domain/validation"
)

// MsgInvalidType is reported when a device type is not one of Types.
const MsgInvalidType = "must be one of Tablet, SmartPhone, Notebook"

// Device is a piece of hardware that people book. SerialNumber uniqueness is
// enforced by storage, not by the entity.
type Device struct {
	ID           int64
	SerialNumber string
	DeviceName   string
	Type         Type
	Version      int64
}

// Summary pairs a Device with the number of usages booked for it.
type Summary struct {
	Device
	UsageCount int64
}

// New trims its input, validates it and returns a Device ready to persist.
// The first failing rule is returned as a *domain.ValidationError.
func New(serialNumber, deviceName string, deviceType Type) (*Device, error) {
	serialNumber = strings.TrimSpace(serialNumber)
	deviceName = strings.TrimSpace(deviceName)

	if err := validate(serialNumber, deviceName, deviceType); err != nil {
		return nil, err
	}

	return &Device{
		SerialNumber: serialNumber,
		DeviceName:   deviceName,
		Type:         deviceType,
	}, nil
}

// Update replaces the device's fields. It is a no-op when the trimmed values
// equal the current ones; otherwise the device is left untouched unless every
// rule passes.
func (d *Device) Update(serialNumber, deviceName string, deviceType Type) error {
	serialNumber = strings.TrimSpace(serialNumber)
	deviceName = strings.TrimSpace(deviceName)

	if d.SerialNumber == serialNumber && d.DeviceName == deviceName && d.Type == deviceType {
		return nil
	}

	if err := validate(serialNumber, deviceName, deviceType); err != nil {
		return err
	}

	d.SerialNumber = serialNumber
	d.DeviceName = deviceName
	d.Type = deviceType
	return nil
}

func validate(serialNumber, deviceName string, deviceType Type) error {
	typeResult := validation.OK(validation.FieldDeviceType)
	if !deviceType.IsValid() {
		typeResult = validation.Fail(validation.FieldDeviceType, MsgInvalidType)
	}

	return validation.First(
		validation.SerialNumber(serialNumber),
		validation.DeviceName(deviceName),
		typeResult,
	)
}
