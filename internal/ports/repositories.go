package ports

import (
	"context"

	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/device"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/person"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/usage"
)

// DeviceRepository persists devices.
// Lookups return domain.ErrNotFound when no row matches. Create and Update
// return domain.ErrConflict on a duplicate serial number; Update also returns
// it when the stored version no longer matches d.Version.
type DeviceRepository interface {
	// List returns all devices ordered by DeviceName.
	List(ctx context.Context) ([]device.Device, error)

	// ListWithUsageCounts returns all devices ordered by DeviceName with
	// the number of usages booked for each.
	ListWithUsageCounts(ctx context.Context) ([]device.Summary, error)

	Get(ctx context.Context, id int64) (*device.Device, error)
	GetBySerialNumber(ctx context.Context, serialNumber string) (*device.Device, error)
	Count(ctx context.Context) (int64, error)

	// Create inserts d and sets its ID and Version.
	Create(ctx context.Context, d *device.Device) error

	// Update writes d if its Version is current and bumps d.Version.
	Update(ctx context.Context, d *device.Device) error

	// Delete removes the device and, through the schema, its usages.
	Delete(ctx context.Context, id int64) error
}

// PersonRepository persists people. Error semantics match DeviceRepository,
// with the mail address as the unique key.
type PersonRepository interface {
	// List returns all people ordered by LastName, then FirstName.
	List(ctx context.Context) ([]person.Person, error)

	Get(ctx context.Context, id int64) (*person.Person, error)
	GetByEmail(ctx context.Context, mailAddress string) (*person.Person, error)
	Create(ctx context.Context, p *person.Person) error
	Update(ctx context.Context, p *person.Person) error

	// Delete removes the person and, through the schema, their usages.
	Delete(ctx context.Context, id int64) error
}

// UsageRepository persists usages.
type UsageRepository interface {
	// List returns all usages with device and person names, ordered by From,
	// then To.
	List(ctx context.Context) ([]usage.Details, error)

	Get(ctx context.Context, id int64) (*usage.Details, error)

	// HasOverlap reports whether a usage of deviceID other than id collides
	// with [from, to] under the inclusive overlap rule of domain.DateRange.
	HasOverlap(ctx context.Context, id, deviceID int64, from, to domain.Date) (bool, error)

	Create(ctx context.Context, u *usage.Usage) error
	Update(ctx context.Context, u *usage.Usage) error
	Delete(ctx context.Context, id int64) error
}

// Repositories groups the repositories bound to one unit of work.
type Repositories struct {
	Devices DeviceRepository
	People  PersonRepository
	Usages  UsageRepository
}

// UnitOfWork runs fn inside a single storage transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
