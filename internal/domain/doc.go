// Package domain holds what the device, person and usage packages share: the
// sentinel errors, ValidationError, and the whole-day Date and DateRange
// types that bookings are expressed in.
package domain
