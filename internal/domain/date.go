package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar day without time of day or location. Bookings are
// whole-day ranges, so all comparisons happen at day granularity.
// The zero value is January 1, year 1.
type Date struct {
	t time.Time
}

// NewDate returns the Date for the given year, month and day. Out-of-range
// values are normalized the way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today returns the current calendar day as reported by now. A nil now
// falls back to time.Now.
func Today(now func() time.Time) Date {
	if now == nil {
		now = time.Now
	}
	return DateOf(now())
}

// ParseDate parses value with layout and drops any time component.
func ParseDate(layout, value string) (Date, error) {
	t, err := time.Parse(layout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", value, err)
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time { return d.t }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Equal reports whether d and o are the same day.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// Compare returns -1, 0 or +1 like time.Time.Compare.
func (d Date) Compare(o Date) int { return d.t.Compare(o.t) }

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalJSON encodes d as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD" and, for clients that send full
// timestamps, RFC 3339 values whose date part is kept.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(DateLayout, s)
	if err != nil {
		t, tsErr := time.Parse(time.RFC3339, s)
		if tsErr != nil {
			return err
		}
		parsed = DateOf(t)
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer. Dates are stored as "YYYY-MM-DD" so they
// order correctly in every supported database.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("scanning date: unsupported type %T", src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) < len(DateLayout) {
		return fmt.Errorf("scanning date: %q too short", s)
	}
	parsed, err := ParseDate(DateLayout, s[:len(DateLayout)])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From Date
	To   Date
}

// Contains reports whether day lies within r, both ends inclusive.
func (r DateRange) Contains(day Date) bool {
	return !day.Before(r.From) && !day.After(r.To)
}

// Overlaps reports whether r collides with existing. A range collides when
// its start or its end falls inside existing, or when it encloses existing.
// Both ends are inclusive, so a range starting on the day existing ends
// still overlaps.
func (r DateRange) Overlaps(existing DateRange) bool {
	if existing.Contains(r.From) || existing.Contains(r.To) {
		return true
	}
	return !r.From.After(existing.From) && !r.To.Before(existing.To)
}
