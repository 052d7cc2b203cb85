package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/usage"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

var _ ports.UsageRepository = (*UsageRepository)(nil)

const usageDetailsColumns = "usages.id, usages.device_id, usages.person_id, usages.from_date, usages.to_date, " +
	"usages.version, devices.device_name AS device_name, " +
	"people.first_name AS person_first_name, people.last_name AS person_last_name"

// overlapCondition is the SQL form of domain.DateRange.Overlaps: the
// candidate starts inside, ends inside, or encloses an existing booking.
// Bounds are inclusive.
const overlapCondition = "((from_date <= ? AND to_date >= ?) OR " +
	"(from_date <= ? AND to_date >= ?) OR " +
	"(from_date >= ? AND to_date <= ?))"

// UsageRepository implements ports.UsageRepository.
type UsageRepository struct {
	db *gorm.DB
}

func (r *UsageRepository) detailsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("usages").
		Select(usageDetailsColumns).
		Joins("JOIN devices ON devices.id = usages.device_id").
		Joins("JOIN people ON people.id = usages.person_id")
}

func (r *UsageRepository) List(ctx context.Context) ([]usage.Details, error) {
	var rows []usageDetailsRow
	err := r.detailsQuery(ctx).
		Order("usages.from_date").
		Order("usages.to_date").
		Order("usages.id").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError("listing usages", err)
	}

	usages := make([]usage.Details, 0, len(rows))
	for _, row := range rows {
		usages = append(usages, row.toDomain())
	}
	return usages, nil
}

func (r *UsageRepository) Get(ctx context.Context, id int64) (*usage.Details, error) {
	var rows []usageDetailsRow
	err := r.detailsQuery(ctx).Where("usages.id = ?", id).Limit(1).Scan(&rows).Error
	if err != nil {
		return nil, translateError(fmt.Sprintf("getting usage %d", id), err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("usage %d: %w", id, domain.ErrNotFound)
	}
	details := rows[0].toDomain()
	return &details, nil
}

func (r *UsageRepository) HasOverlap(ctx context.Context, id, deviceID int64, from, to domain.Date) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&usageRecord{}).
		Where("device_id = ? AND id <> ?", deviceID, id).
		Where(overlapCondition, from, from, to, to, from, to).
		Count(&n).Error
	if err != nil {
		return false, translateError("checking usage overlap", err)
	}
	return n > 0, nil
}

func (r *UsageRepository) Create(ctx context.Context, u *usage.Usage) error {
	rec := toUsageRecord(u)
	rec.ID = 0
	rec.Version = 1

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&rec).Error; err != nil {
		return translateError("creating usage", err)
	}

	u.ID = rec.ID
	u.Version = rec.Version
	return nil
}

func (r *UsageRepository) Update(ctx context.Context, u *usage.Usage) error {
	db := r.db.WithContext(ctx)
	res := db.Model(&usageRecord{}).
		Where("id = ? AND version = ?", u.ID, u.Version).
		Updates(map[string]any{
			"device_id": u.DeviceID,
			"person_id": u.PersonID,
			"from_date": u.From,
			"to_date":   u.To,
			"version":   u.Version + 1,
		})
	if res.Error != nil {
		return translateError(fmt.Sprintf("updating usage %d", u.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return staleOrMissing(db, &usageRecord{}, "usage", u.ID)
	}

	u.Version++
	return nil
}

func (r *UsageRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&usageRecord{}, id)
	if res.Error != nil {
		return translateError(fmt.Sprintf("deleting usage %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("usage %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
