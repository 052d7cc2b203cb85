package app

import (
	"context"
	"errors"

	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/person"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/usage"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

// Compile-time checks. A UsageRepository answers overlap queries directly.
var (
	_ person.UniquenessChecker = (*PersonUniquenessChecker)(nil)
	_ usage.OverlapChecker     = ports.UsageRepository(nil)
)

// PersonUniquenessChecker answers mail address uniqueness by looking the
// address up in the person repository.
type PersonUniquenessChecker struct {
	people ports.PersonRepository
}

// NewPersonUniquenessChecker creates a checker backed by people.
func NewPersonUniquenessChecker(people ports.PersonRepository) *PersonUniquenessChecker {
	return &PersonUniquenessChecker{people: people}
}

// IsUnique reports true when nobody holds mailAddress or the holder is the
// person with id.
func (c *PersonUniquenessChecker) IsUnique(ctx context.Context, id int64, mailAddress string) (bool, error) {
	existing, err := c.people.GetByEmail(ctx, mailAddress)
	if errors.Is(err, domain.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return existing.ID == id, nil
}
