// Package person holds the Person entity and the uniqueness capability it
// consults before accepting a mail address.
package person

import (
	"context"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/validation"
)

// UniquenessChecker answers whether a mail address is free for the person
// with the given id. id is 0 for a person that has not been persisted yet.
// Implementations look the address up in storage and should honor ctx.
type UniquenessChecker interface {
	IsUnique(ctx context.Context, id int64, mailAddress string) (bool, error)
}

// Person is someone who books devices.
type Person struct {
	ID          int64
	LastName    string
	FirstName   string
	MailAddress string
	Version     int64
}

// New trims and validates its input, then asks checker whether the mail
// address is free. Field rules run in order LastName, FirstName, MailAddress
// and the first failure is returned before checker is consulted.
func New(ctx context.Context, lastName, firstName, mailAddress string, checker UniquenessChecker) (*Person, error) {
	if checker == nil {
		return nil, &domain.NilReferenceError{Param: "checker"}
	}

	lastName, firstName, mailAddress = trim(lastName, firstName, mailAddress)

	if err := validate(ctx, 0, lastName, firstName, mailAddress, checker); err != nil {
		return nil, err
	}

	return &Person{
		LastName:    lastName,
		FirstName:   firstName,
		MailAddress: mailAddress,
	}, nil
}

// Update replaces the person's fields. Identical values return immediately
// without consulting checker. The uniqueness check is scoped to p.ID so a
// person keeping their own address never conflicts with themselves.
func (p *Person) Update(ctx context.Context, lastName, firstName, mailAddress string, checker UniquenessChecker) error {
	lastName, firstName, mailAddress = trim(lastName, firstName, mailAddress)

	if p.LastName == lastName && p.FirstName == firstName && p.MailAddress == mailAddress {
		return nil
	}

	if checker == nil {
		return &domain.NilReferenceError{Param: "checker"}
	}

	if err := validate(ctx, p.ID, lastName, firstName, mailAddress, checker); err != nil {
		return err
	}

	p.LastName = lastName
	p.FirstName = firstName
	p.MailAddress = mailAddress
	return nil
}

// FullName returns "FirstName LastName".
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

func validate(ctx context.Context, id int64, lastName, firstName, mailAddress string, checker UniquenessChecker) error {
	if err := validation.First(
		validation.LastName(lastName),
		validation.FirstName(firstName),
		validation.MailAddress(mailAddress),
	); err != nil {
		return err
	}

	unique, err := checker.IsUnique(ctx, id, mailAddress)
	if err != nil {
		return fmt.Errorf("checking mail address uniqueness: %w", err)
	}
	if !unique {
		return domain.NewValidationError(validation.FieldMailAddress, validation.MsgEmailTaken)
	}
	return nil
}

func trim(lastName, firstName, mailAddress string) (string, string, string) {
	return strings.TrimSpace(lastName), strings.TrimSpace(firstName), strings.TrimSpace(mailAddress)
}
