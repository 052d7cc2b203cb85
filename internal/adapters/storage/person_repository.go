package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/person"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

var _ ports.PersonRepository = (*PersonRepository)(nil)

// PersonRepository implements ports.PersonRepository.
type PersonRepository struct {
	db *gorm.DB
}

func (r *PersonRepository) List(ctx context.Context) ([]person.Person, error) {
	var recs []personRecord
	err := r.db.WithContext(ctx).Order("last_name").Order("first_name").Order("id").Find(&recs).Error
	if err != nil {
		return nil, translateError("listing people", err)
	}

	people := make([]person.Person, 0, len(recs))
	for _, rec := range recs {
		people = append(people, rec.toDomain())
	}
	return people, nil
}

func (r *PersonRepository) Get(ctx context.Context, id int64) (*person.Person, error) {
	var rec personRecord
	if err := r.db.WithContext(ctx).Take(&rec, id).Error; err != nil {
		return nil, translateError(fmt.Sprintf("getting person %d", id), err)
	}
	p := rec.toDomain()
	return &p, nil
}

func (r *PersonRepository) GetByEmail(ctx context.Context, mailAddress string) (*person.Person, error) {
	var rec personRecord
	if err := r.db.WithContext(ctx).Where("mail_address = ?", mailAddress).Take(&rec).Error; err != nil {
		return nil, translateError("getting person by mail address", err)
	}
	p := rec.toDomain()
	return &p, nil
}

func (r *PersonRepository) Create(ctx context.Context, p *person.Person) error {
	rec := toPersonRecord(p)
	rec.ID = 0
	rec.Version = 1

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return translateError("creating person", err)
	}

	p.ID = rec.ID
	p.Version = rec.Version
	return nil
}

func (r *PersonRepository) Update(ctx context.Context, p *person.Person) error {
	db := r.db.WithContext(ctx)
	res := db.Model(&personRecord{}).
		Where("id = ? AND version = ?", p.ID, p.Version).
		Updates(map[string]any{
			"last_name":    p.LastName,
			"first_name":   p.FirstName,
			"mail_address": p.MailAddress,
			"version":      p.Version + 1,
		})
	if res.Error != nil {
		return translateError(fmt.Sprintf("updating person %d", p.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return staleOrMissing(db, &personRecord{}, "person", p.ID)
	}

	p.Version++
	return nil
}

func (r *PersonRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&personRecord{}, id)
	if res.Error != nil {
		return translateError(fmt.Sprintf("deleting person %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("person %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
