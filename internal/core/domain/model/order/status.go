package order

import (
	"fmt"
	"time"

	"tehnoplast/internal/pkg/errs"
)

// Status represents the derived classification of an order.
// It is never stored: the same order may classify differently on
// different days, so the value is computed on read from the delivery
// date, the current date and the existence of an invoice.
//
// Precedence (highest first):
//
//	Overdue > Invoiced > Urgent > InProgress
//
// Status is a value object that provides string representations
// for display and reporting.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusInProgress is the default classification: the order is not
	// invoiced and its delivery date is more than three days away.
	StatusInProgress

	// StatusUrgent indicates the delivery date is within the next
	// three days (today inclusive) and the order is not yet invoiced.
	StatusUrgent

	// StatusInvoiced indicates an invoice has been issued for the order
	// and the delivery date has not yet passed.
	StatusInvoiced

	// StatusOverdue indicates the delivery date has passed. Overdue
	// takes precedence over every other classification.
	StatusOverdue
)

// UrgentWindowDays is the number of days before the delivery date at
// which a not-yet-invoiced order becomes Urgent.
const UrgentWindowDays = 3

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusInProgress: "InProgress",
		StatusUrgent:     "Urgent",
		StatusInvoiced:   "Invoiced",
		StatusOverdue:    "Overdue",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusInProgress: "InProgress",
		StatusUrgent:     "Urgent",
		StatusInvoiced:   "Invoiced",
		StatusOverdue:    "Overdue",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: InProgress, Urgent, Invoiced, Overdue.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values. This method implements
// the fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// DeriveStatus computes the classification of an order from its delivery
// date, the current date and whether an invoice exists for the order.
//
// Rules, in order of precedence:
//   - delivery date before today: Overdue
//   - an invoice exists: Invoiced
//   - delivery date within the next three days (today inclusive): Urgent
//   - otherwise: InProgress
//
// Only calendar dates matter; the time-of-day parts of both arguments
// are ignored.
func DeriveStatus(deliveryDate, today time.Time, hasInvoice bool) Status {
	days := daysBetween(today, deliveryDate)

	switch {
	case days < 0:
		return StatusOverdue
	case hasInvoice:
		return StatusInvoiced
	case days <= UrgentWindowDays:
		return StatusUrgent
	default:
		return StatusInProgress
	}
}

// daysBetween returns the number of whole calendar days from one date to
// another, negative when to precedes from. Time-of-day is discarded.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
