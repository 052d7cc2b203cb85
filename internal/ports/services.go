package ports

import (
	"context"

	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/device"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/person"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/usage"
)

// DeviceInput carries the client-supplied fields of a device.
type DeviceInput struct {
	SerialNumber string
	DeviceName   string
	Type         device.Type
}

// PersonInput carries the client-supplied fields of a person.
type PersonInput struct {
	LastName    string
	FirstName   string
	MailAddress string
}

// UsageInput carries the client-supplied fields of a usage.
type UsageInput struct {
	DeviceID int64
	PersonID int64
	From     domain.Date
	To       domain.Date
}

// DeviceService defines the service port for device operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type DeviceService interface {
	ListDevices(ctx context.Context) ([]device.Device, error)
	ListDevicesWithUsageCounts(ctx context.Context) ([]device.Summary, error)

	// GetDevice returns domain.ErrNotFound if the device does not exist.
	GetDevice(ctx context.Context, id int64) (*device.Device, error)

	// CreateDevice returns domain.ErrValidation when a field rule fails and
	// domain.ErrConflict when the serial number is taken.
	CreateDevice(ctx context.Context, in DeviceInput) (*device.Device, error)

	UpdateDevice(ctx context.Context, id int64, in DeviceInput) (*device.Device, error)
	DeleteDevice(ctx context.Context, id int64) error
}

// PersonService defines the service port for person operations.
type PersonService interface {
	ListPeople(ctx context.Context) ([]person.Person, error)
	GetPerson(ctx context.Context, id int64) (*person.Person, error)

	// CreatePerson returns domain.ErrValidation when a field rule fails or
	// the mail address already belongs to someone else.
	CreatePerson(ctx context.Context, in PersonInput) (*person.Person, error)

	UpdatePerson(ctx context.Context, id int64, in PersonInput) (*person.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}

// UsageService defines the service port for booking operations. Bookings made
// through it must lie today or later.
type UsageService interface {
	ListUsages(ctx context.Context) ([]usage.Details, error)
	GetUsage(ctx context.Context, id int64) (*usage.Details, error)

	// CreateUsage returns domain.ErrNotFound when the device or person does
	// not exist and domain.ErrValidation when a rule fails or the booking
	// overlaps another one of the same device.
	CreateUsage(ctx context.Context, in UsageInput) (*usage.Details, error)

	UpdateUsage(ctx context.Context, id int64, in UsageInput) (*usage.Details, error)
	DeleteUsage(ctx context.Context, id int64) error
}

// ImportReport summarizes one seed import run.
type ImportReport struct {
	Rows           int
	SkippedRows    int
	DevicesCreated int
	PeopleCreated  int
	UsagesCreated  int
}

// Importer loads historical bookings from a seed source.
type Importer interface {
	// SeedIfEmpty imports the seed data when no device exists yet. It
	// reports whether an import ran.
	SeedIfEmpty(ctx context.Context) (*ImportReport, bool, error)
}
