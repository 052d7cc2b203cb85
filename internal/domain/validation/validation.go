// Package validation holds the field rules shared by the domain entities.
// Every rule is a pure function returning a Result; entities evaluate all
// rules of an operation and report the first failure in declared order.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/device-usage-service/internal/domain"
)

// Minimum lengths of trimmed device fields.
const (
	SerialNumberMinLength = 3
	DeviceNameMinLength   = 2
)

// Field names reported in validation errors.
const (
	FieldSerialNumber = "SerialNumber"
	FieldDeviceName   = "DeviceName"
	FieldDeviceType   = "DeviceType"
	FieldLastName     = "LastName"
	FieldFirstName    = "FirstName"
	FieldMailAddress  = "MailAddress"
	FieldDeviceID     = "DeviceId"
	FieldPersonID     = "PersonId"
	FieldDateRange    = "DateRange"
	FieldFrom         = "From"
	FieldTo           = "To"
	FieldFutureDates  = "FutureDates"
)

// Messages reported in validation errors.
const (
	MsgRequired        = "must not be empty"
	MsgInvalidEmail    = "is syntactically invalid"
	MsgMustBePositive  = "must be greater than 0"
	MsgReturnBeforeOut = "return date before start date"
	MsgFromInPast      = "bookings can only start today or later"
	MsgToInPast        = "return date must not be in the past"
	MsgEmailTaken      = "a person with this email already exists"
	MsgOverlap         = "usage overlaps with another booking for this device"
)

// emailPattern requires at least one character before the @, at least one
// between the @ and a following dot, and at least one after that dot.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Result is the outcome of one field rule.
type Result struct {
	Field   string
	Message string
	Valid   bool
}

// OK returns a passing Result for field.
func OK(field string) Result {
	return Result{Field: field, Valid: true}
}

// Fail returns a failing Result for field.
func Fail(field, message string) Result {
	return Result{Field: field, Message: message}
}

// Err converts a failing Result into a *domain.ValidationError.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return domain.NewValidationError(r.Field, r.Message)
}

// First returns the error of the first failing result, or nil when every
// result passed.
func First(results ...Result) error {
	for _, r := range results {
		if !r.Valid {
			return r.Err()
		}
	}
	return nil
}

func SerialNumber(serialNumber string) Result {
	return minLength(FieldSerialNumber, serialNumber, SerialNumberMinLength)
}

func DeviceName(deviceName string) Result {
	return minLength(FieldDeviceName, deviceName, DeviceNameMinLength)
}

func LastName(lastName string) Result {
	return required(FieldLastName, lastName)
}

func FirstName(firstName string) Result {
	return required(FieldFirstName, firstName)
}

func MailAddress(mailAddress string) Result {
	if r := required(FieldMailAddress, mailAddress); !r.Valid {
		return r
	}
	if !emailPattern.MatchString(strings.TrimSpace(mailAddress)) {
		return Fail(FieldMailAddress, MsgInvalidEmail)
	}
	return OK(FieldMailAddress)
}

func DeviceID(id int64) Result {
	return positive(FieldDeviceID, id)
}

func PersonID(id int64) Result {
	return positive(FieldPersonID, id)
}

// DateRange fails when the return date lies before the start date.
// Equal dates form a valid single-day range.
func DateRange(from, to domain.Date) Result {
	if to.Before(from) {
		return Fail(FieldDateRange, MsgReturnBeforeOut)
	}
	return OK(FieldDateRange)
}

// FutureDates fails when either end of the range lies before today. It only
// applies when past dates are not allowed.
func FutureDates(from, to, today domain.Date) Result {
	if from.Before(today) {
		return Fail(FieldFrom, MsgFromInPast)
	}
	if to.Before(today) {
		return Fail(FieldTo, MsgToInPast)
	}
	return OK(FieldFutureDates)
}

func required(field, value string) Result {
	if strings.TrimSpace(value) == "" {
		return Fail(field, MsgRequired)
	}
	return OK(field)
}

func minLength(field, value string, n int) Result {
	if r := required(field, value); !r.Valid {
		return r
	}
	if utf8.RuneCountInString(strings.TrimSpace(value)) < n {
		return Fail(field, MinLengthMessage(n))
	}
	return OK(field)
}

func positive(field string, v int64) Result {
	if v <= 0 {
		return Fail(field, MsgMustBePositive)
	}
	return OK(field)
}

// MinLengthMessage is the message of a failed minimum-length rule.
func MinLengthMessage(n int) string {
	return fmt.Sprintf("must be at least %d characters", n)
}
