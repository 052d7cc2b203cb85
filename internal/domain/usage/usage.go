// Package usage holds the Usage entity: an exclusive booking of a device by
// a person for an inclusive range of calendar days.
package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/device"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/person"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/validation"
)

// OverlapChecker reports whether another usage of deviceID collides with
// [from, to]. The usage with id is ignored; id is 0 for a new booking.
type OverlapChecker interface {
	HasOverlap(ctx context.Context, id, deviceID int64, from, to domain.Date) (bool, error)
}

// Usage books a device for a person. It holds ids, not the entities.
type Usage struct {
	ID       int64
	DeviceID int64
	PersonID int64
	From     domain.Date
	To       domain.Date
	Version  int64
}

// Details is a Usage joined with the names of its device and person.
type Details struct {
	Usage
	DeviceName      string
	PersonFirstName string
	PersonLastName  string
}

type options struct {
	allowPastDates bool
	now            func() time.Time
}

// Option adjusts the booking policy of New and Update.
type Option func(*options)

// AllowPastDates lets From and To lie before today. Only bulk imports of
// historical data enable it.
func AllowPastDates(allow bool) Option {
	return func(o *options) { o.allowPastDates = allow }
}

// WithClock sets the source of "today" for the past-dates policy.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New books dev for p from from to to. Steps run in order: nil references are
// rejected, field rules run (DeviceId, PersonId, DateRange, then FutureDates
// unless past dates are allowed), and finally checker is asked for overlaps.
func New(ctx context.Context, dev *device.Device, p *person.Person, from, to domain.Date, checker OverlapChecker, opts ...Option) (*Usage, error) {
	if err := requireRefs(dev, p, checker); err != nil {
		return nil, err
	}

	if err := validate(ctx, 0, dev.ID, p.ID, from, to, checker, buildOptions(opts)); err != nil {
		return nil, err
	}

	return &Usage{
		DeviceID: dev.ID,
		PersonID: p.ID,
		From:     from,
		To:       to,
	}, nil
}

// Update rebooks u. When device, person and both dates are unchanged it
// returns without running any rule or consulting checker. The overlap check
// excludes u itself.
func (u *Usage) Update(ctx context.Context, dev *device.Device, p *person.Person, from, to domain.Date, checker OverlapChecker, opts ...Option) error {
	if err := requireRefs(dev, p, checker); err != nil {
		return err
	}

	if u.Matches(dev.ID, p.ID, from, to) {
		return nil
	}

	if err := validate(ctx, u.ID, dev.ID, p.ID, from, to, checker, buildOptions(opts)); err != nil {
		return err
	}

	u.DeviceID = dev.ID
	u.PersonID = p.ID
	u.From = from
	u.To = to
	return nil
}

// Matches reports whether u already books deviceID for personID over
// [from, to].
func (u *Usage) Matches(deviceID, personID int64, from, to domain.Date) bool {
	return u.DeviceID == deviceID && u.PersonID == personID && u.From.Equal(from) && u.To.Equal(to)
}

// Range returns the booked days.
func (u *Usage) Range() domain.DateRange {
	return domain.DateRange{From: u.From, To: u.To}
}

func requireRefs(dev *device.Device, p *person.Person, checker OverlapChecker) error {
	switch {
	case dev == nil:
		return &domain.NilReferenceError{Param: "device"}
	case p == nil:
		return &domain.NilReferenceError{Param: "person"}
	case checker == nil:
		return &domain.NilReferenceError{Param: "checker"}
	}
	return nil
}

func validate(ctx context.Context, id, deviceID, personID int64, from, to domain.Date, checker OverlapChecker, o options) error {
	results := []validation.Result{
		validation.DeviceID(deviceID),
		validation.PersonID(personID),
		validation.DateRange(from, to),
	}
	if !o.allowPastDates {
		results = append(results, validation.FutureDates(from, to, domain.Today(o.now)))
	}
	if err := validation.First(results...); err != nil {
		return err
	}

	overlaps, err := checker.HasOverlap(ctx, id, deviceID, from, to)
	if err != nil {
		return fmt.Errorf("checking usage overlap: %w", err)
	}
	if overlaps {
		return domain.NewValidationError(validation.FieldDateRange, validation.MsgOverlap)
	}
	return nil
}
