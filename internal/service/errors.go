// Package service holds the domain logic that sits between HTTP
// handlers and repositories: reservation conflict checking, lifecycle
// rules and payment rules.  Services accept small store interfaces so
// tests can drive them with in-memory fakes.
package service

import (
	"errors"
	"fmt"
)

// ErrValidation marks a request rejected by business rules.  Wrap it
// with fmt.Errorf("%w: reason") so handlers can map every variant to a
// 400 with errors.Is.
var ErrValidation = errors.New("validation failed")

// ConflictError reports that a slot is already occupied by another
// live reservation.  It carries the colliding reservation so clients
// can show the user what is blocking them.
type ConflictError struct {
	ReservationID uint64 // the reservation already holding the slot
	FieldID       uint64
	Date          string
	TimeSlotID    uint64
	Start, End    string // colliding interval, "HH:MM"
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("field %d already reserved on %s from %s to %s (reservation %d)",
		e.FieldID, e.Date, e.Start, e.End, e.ReservationID)
}
