package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/device"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

var _ ports.DeviceRepository = (*DeviceRepository)(nil)

// DeviceRepository implements ports.DeviceRepository.
type DeviceRepository struct {
	db *gorm.DB
}

func (r *DeviceRepository) List(ctx context.Context) ([]device.Device, error) {
	var recs []deviceRecord
	if err := r.db.WithContext(ctx).Order("device_name").Order("id").Find(&recs).Error; err != nil {
		return nil, translateError("listing devices", err)
	}

	devices := make([]device.Device, 0, len(recs))
	for _, rec := range recs {
		devices = append(devices, rec.toDomain())
	}
	return devices, nil
}

func (r *DeviceRepository) ListWithUsageCounts(ctx context.Context) ([]device.Summary, error) {
	var rows []deviceCountRow
	err := r.db.WithContext(ctx).
		Model(&deviceRecord{}).
		Select("devices.id, devices.serial_number, devices.device_name, devices.device_type, devices.version, " +
			"COUNT(usages.id) AS usage_count").
		Joins("LEFT JOIN usages ON usages.device_id = devices.id").
		Group("devices.id, devices.serial_number, devices.device_name, devices.device_type, devices.version").
		Order("devices.device_name").
		Order("devices.id").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError("listing devices with usage counts", err)
	}

	summaries := make([]device.Summary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, row.toDomain())
	}
	return summaries, nil
}

func (r *DeviceRepository) Get(ctx context.Context, id int64) (*device.Device, error) {
	var rec deviceRecord
	if err := r.db.WithContext(ctx).Take(&rec, id).Error; err != nil {
		return nil, translateError(fmt.Sprintf("getting device %d", id), err)
	}
	d := rec.toDomain()
	return &d, nil
}

func (r *DeviceRepository) GetBySerialNumber(ctx context.Context, serialNumber string) (*device.Device, error) {
	var rec deviceRecord
	if err := r.db.WithContext(ctx).Where("serial_number = ?", serialNumber).Take(&rec).Error; err != nil {
		return nil, translateError(fmt.Sprintf("getting device by serial number %q", serialNumber), err)
	}
	d := rec.toDomain()
	return &d, nil
}

func (r *DeviceRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&deviceRecord{}).Count(&n).Error; err != nil {
		return 0, translateError("counting devices", err)
	}
	return n, nil
}

func (r *DeviceRepository) Create(ctx context.Context, d *device.Device) error {
	rec := toDeviceRecord(d)
	rec.ID = 0
	rec.Version = 1

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&rec).Error; err != nil {
		return translateError("creating device", err)
	}

	d.ID = rec.ID
	d.Version = rec.Version
	return nil
}

func (r *DeviceRepository) Update(ctx context.Context, d *device.Device) error {
	db := r.db.WithContext(ctx)
	res := db.Model(&deviceRecord{}).
		Where("id = ? AND version = ?", d.ID, d.Version).
		Updates(map[string]any{
			"serial_number": d.SerialNumber,
			"device_name":   d.DeviceName,
			"device_type":   d.Type.String(),
			"version":       d.Version + 1,
		})
	if res.Error != nil {
		return translateError(fmt.Sprintf("updating device %d", d.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return staleOrMissing(db, &deviceRecord{}, "device", d.ID)
	}

	d.Version++
	return nil
}

func (r *DeviceRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&deviceRecord{}, id)
	if res.Error != nil {
		return translateError(fmt.Sprintf("deleting device %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("device %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
