package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/device-usage-service/internal/domain/device"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

// Compile-time check that DeviceService implements ports.DeviceService.
var _ ports.DeviceService = (*DeviceService)(nil)

// DeviceService implements ports.DeviceService on top of a DeviceRepository.
// Serial number uniqueness is left to the repository, which reports
// domain.ErrConflict.
type DeviceService struct {
	devices ports.DeviceRepository
	logger  *slog.Logger
}

// NewDeviceService creates a DeviceService. A nil logger discards output.
func NewDeviceService(devices ports.DeviceRepository, logger *slog.Logger) *DeviceService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DeviceService{
		devices: devices,
		logger:  logger,
	}
}

// ListDevices returns all devices ordered by name.
func (s *DeviceService) ListDevices(ctx context.Context) ([]device.Device, error) {
	s.logger.InfoContext(ctx, "listing devices")

	devices, err := s.devices.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list devices",
			slog.String("operation", "ListDevices"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return devices, nil
}

// ListDevicesWithUsageCounts returns all devices with their booking counts.
func (s *DeviceService) ListDevicesWithUsageCounts(ctx context.Context) ([]device.Summary, error) {
	s.logger.InfoContext(ctx, "listing devices with usage counts")

	summaries, err := s.devices.ListWithUsageCounts(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list devices with usage counts",
			slog.String("operation", "ListDevicesWithUsageCounts"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return summaries, nil
}

// GetDevice returns a single device by ID.
func (s *DeviceService) GetDevice(ctx context.Context, id int64) (*device.Device, error) {
	s.logger.InfoContext(ctx, "fetching device", slog.Int64("id", id))

	d, err := s.devices.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch device",
			slog.String("operation", "GetDevice"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return d, nil
}

// CreateDevice validates and stores a new device.
func (s *DeviceService) CreateDevice(ctx context.Context, in ports.DeviceInput) (*device.Device, error) {
	s.logger.InfoContext(ctx, "creating device", slog.String("serial_number", in.SerialNumber))

	d, err := device.New(in.SerialNumber, in.DeviceName, in.Type)
	if err != nil {
		return nil, err
	}

	if err := s.devices.Create(ctx, d); err != nil {
		s.logger.ErrorContext(ctx, "failed to create device",
			slog.String("operation", "CreateDevice"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return d, nil
}

// UpdateDevice applies in to the device with id. Unchanged input is not
// written back.
func (s *DeviceService) UpdateDevice(ctx context.Context, id int64, in ports.DeviceInput) (*device.Device, error) {
	s.logger.InfoContext(ctx, "updating device", slog.Int64("id", id))

	d, err := s.devices.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch device",
			slog.String("operation", "UpdateDevice"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	before := *d
	if err := d.Update(in.SerialNumber, in.DeviceName, in.Type); err != nil {
		return nil, err
	}
	if *d == before {
		return d, nil
	}

	if err := s.devices.Update(ctx, d); err != nil {
		s.logger.ErrorContext(ctx, "failed to update device",
			slog.String("operation", "UpdateDevice"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return d, nil
}

// DeleteDevice removes a device together with its usages.
func (s *DeviceService) DeleteDevice(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting device", slog.Int64("id", id))

	if err := s.devices.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete device",
			slog.String("operation", "DeleteDevice"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
