package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/iliyamo/sport-complex/internal/model"
)

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: clock value %q must be HH:MM", ErrValidation, s)
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: clock value %q must be HH:MM", ErrValidation, s)
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: clock value %q must be HH:MM", ErrValidation, s)
	}
	return h*60 + m, nil
}

// overlaps reports whether two half-open minute intervals intersect.
// Back-to-back slots (aEnd == bStart) do not overlap.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// CheckReservation validates a candidate booking of slot on field for
// date against the existing non-cancelled reservations of that field
// and date.  excludeID names a reservation to skip, so an update does
// not collide with itself; pass 0 on create.
//
// It is pure: all state arrives as arguments, loaded by the caller.
// Returns nil when the candidate may proceed, an ErrValidation-wrapped
// error for rule violations, or a *ConflictError naming the occupying
// reservation.
func CheckReservation(field *model.Field, slot *model.TimeSlot, date string, existing []*model.Reservation, slots map[uint64]*model.TimeSlot, excludeID uint64, now time.Time) error {
	if field.Status != model.FieldStatusActive {
		return fmt.Errorf("%w: field %d is not open for booking (status %s)", ErrValidation, field.ID, field.Status)
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrValidation, date)
	}
	// The candidate date parsed as UTC midnight, so "today" must come
	// from the UTC calendar too; building it from a local clock shifts
	// the cutoff by a day near midnight.
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		return fmt.Errorf("%w: date %s is in the past", ErrValidation, date)
	}

	start, err := parseClock(slot.Start)
	if err != nil {
		return err
	}
	end, err := parseClock(slot.End)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("%w: time slot %d ends before it starts", ErrValidation, slot.ID)
	}

	for _, r := range existing {
		if r.ID == excludeID || !r.Active() {
			continue
		}
		other, ok := slots[r.TimeSlotID]
		if !ok {
			// Slot row missing for a live reservation; treat its whole
			// day as unknown rather than silently double-book.
			return fmt.Errorf("%w: reservation %d references unknown time slot %d", ErrValidation, r.ID, r.TimeSlotID)
		}
		oStart, err := parseClock(other.Start)
		if err != nil {
			return err
		}
		oEnd, err := parseClock(other.End)
		if err != nil {
			return err
		}
		if overlaps(start, end, oStart, oEnd) {
			return &ConflictError{
				ReservationID: r.ID,
				FieldID:       field.ID,
				Date:          date,
				TimeSlotID:    r.TimeSlotID,
				Start:         other.Start,
				End:           other.End,
			}
		}
	}
	return nil
}
