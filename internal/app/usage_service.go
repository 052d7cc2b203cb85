package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	appctx "github.com/jsamuelsen11/device-usage-service/internal/app/context"
	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/device"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/person"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/usage"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/validation"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

// Compile-time check that UsageService implements ports.UsageService.
var _ ports.UsageService = (*UsageService)(nil)

// UsageService implements ports.UsageService. Bookings made through it must
// lie today or later; the usage repository doubles as the overlap checker.
type UsageService struct {
	devices ports.DeviceRepository
	people  ports.PersonRepository
	usages  ports.UsageRepository
	now     func() time.Time
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// UsageServiceOption configures a UsageService.
type UsageServiceOption func(*UsageService)

// WithClock sets the source of "today" for the past-dates policy.
func WithClock(now func() time.Time) UsageServiceOption {
	return func(s *UsageService) { s.now = now }
}

// WithMetrics records booking outcomes on m.
func WithMetrics(m *telemetry.Metrics) UsageServiceOption {
	return func(s *UsageService) { s.metrics = m }
}

// NewUsageService creates a UsageService. A nil logger discards output.
func NewUsageService(
	devices ports.DeviceRepository,
	people ports.PersonRepository,
	usages ports.UsageRepository,
	logger *slog.Logger,
	opts ...UsageServiceOption,
) *UsageService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &UsageService{
		devices: devices,
		people:  people,
		usages:  usages,
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListUsages returns all bookings ordered by start date.
func (s *UsageService) ListUsages(ctx context.Context) ([]usage.Details, error) {
	s.logger.InfoContext(ctx, "listing usages")

	usages, err := s.usages.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list usages",
			slog.String("operation", "ListUsages"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return usages, nil
}

// GetUsage returns a single booking by ID.
func (s *UsageService) GetUsage(ctx context.Context, id int64) (*usage.Details, error) {
	s.logger.InfoContext(ctx, "fetching usage", slog.Int64("id", id))

	u, err := s.usages.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch usage",
			slog.String("operation", "GetUsage"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return u, nil
}

// CreateUsage books a device for a person.
func (s *UsageService) CreateUsage(ctx context.Context, in ports.UsageInput) (*usage.Details, error) {
	s.logger.InfoContext(ctx, "creating usage",
		slog.Int64("device_id", in.DeviceID),
		slog.Int64("person_id", in.PersonID),
		slog.String("from", in.From.String()),
		slog.String("to", in.To.String()),
	)

	dev, p, err := s.loadParties(ctx, "CreateUsage", in)
	if err != nil {
		s.record(ctx, "create", err)
		return nil, err
	}

	u, err := usage.New(ctx, dev, p, in.From, in.To, s.usages, usage.WithClock(s.now))
	s.record(ctx, "create", err)
	if err != nil {
		return nil, err
	}

	if err := s.usages.Create(ctx, u); err != nil {
		s.logger.ErrorContext(ctx, "failed to create usage",
			slog.String("operation", "CreateUsage"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return details(u, dev, p), nil
}

// UpdateUsage rebooks the usage with id. Unchanged input is neither checked
// for overlaps nor written back.
func (s *UsageService) UpdateUsage(ctx context.Context, id int64, in ports.UsageInput) (*usage.Details, error) {
	s.logger.InfoContext(ctx, "updating usage", slog.Int64("id", id))

	current, err := s.usages.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch usage",
			slog.String("operation", "UpdateUsage"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	if current.Matches(in.DeviceID, in.PersonID, in.From, in.To) {
		s.metrics.RecordBooking(ctx, "update", telemetry.ResultUnchanged, "")
		return current, nil
	}

	dev, p, err := s.loadParties(ctx, "UpdateUsage", in)
	if err != nil {
		s.record(ctx, "update", err)
		return nil, err
	}

	u := current.Usage
	err = u.Update(ctx, dev, p, in.From, in.To, s.usages, usage.WithClock(s.now))
	s.record(ctx, "update", err)
	if err != nil {
		return nil, err
	}

	if err := s.usages.Update(ctx, &u); err != nil {
		s.logger.ErrorContext(ctx, "failed to update usage",
			slog.String("operation", "UpdateUsage"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return details(&u, dev, p), nil
}

// DeleteUsage removes a booking.
func (s *UsageService) DeleteUsage(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting usage", slog.Int64("id", id))

	if err := s.usages.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete usage",
			slog.String("operation", "DeleteUsage"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// loadParties resolves the device and person a booking refers to. Ids that
// are not positive fail validation before any lookup.
func (s *UsageService) loadParties(ctx context.Context, op string, in ports.UsageInput) (*device.Device, *person.Person, error) {
	if err := validation.First(
		validation.DeviceID(in.DeviceID),
		validation.PersonID(in.PersonID),
	); err != nil {
		return nil, nil, err
	}

	dev, err := memoized(ctx, appctx.Key("device", in.DeviceID), func(ctx context.Context) (*device.Device, error) {
		return s.devices.Get(ctx, in.DeviceID)
	})
	if err != nil {
		s.logger.WarnContext(ctx, "booking device not loaded",
			slog.String("operation", op),
			slog.Int64("device_id", in.DeviceID),
			slog.Any("error", err),
		)
		return nil, nil, fmt.Errorf("loading device: %w", err)
	}

	p, err := memoized(ctx, appctx.Key("person", in.PersonID), func(ctx context.Context) (*person.Person, error) {
		return s.people.Get(ctx, in.PersonID)
	})
	if err != nil {
		s.logger.WarnContext(ctx, "booking person not loaded",
			slog.String("operation", op),
			slog.Int64("person_id", in.PersonID),
			slog.Any("error", err),
		)
		return nil, nil, fmt.Errorf("loading person: %w", err)
	}

	return dev, p, nil
}

// record counts a booking attempt. Only validation failures count as
// rejections; lookup and storage errors are left to the logs.
func (s *UsageService) record(ctx context.Context, op string, err error) {
	if err == nil {
		s.metrics.RecordBooking(ctx, op, telemetry.ResultAccepted, "")
		return
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		s.metrics.RecordBooking(ctx, op, telemetry.ResultRejected, verr.Field)
	}
}

// memoized routes fetch through the request's memo cache when one is present.
func memoized[T any](ctx context.Context, key string, fetch func(context.Context) (T, error)) (T, error) {
	if rc := appctx.FromContext(ctx); rc != nil {
		return appctx.GetOrFetch(rc, key, fetch)
	}
	return fetch(ctx)
}

func details(u *usage.Usage, dev *device.Device, p *person.Person) *usage.Details {
	return &usage.Details{
		Usage:           *u,
		DeviceName:      dev.DeviceName,
		PersonFirstName: p.FirstName,
		PersonLastName:  p.LastName,
	}
}
