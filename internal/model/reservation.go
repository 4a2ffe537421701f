package model

import "time"

// Reservation books one field for one time slot on one date by one
// user.  References are non-owning: deleting a reservation leaves the
// field, slot and user rows untouched, and any payment record keeps
// living on its own.
//
// Invariant: at most one non-cancelled reservation may exist per
// (field, date, time slot) combination.  The reservations table
// enforces this with a composite unique key, so the invariant holds
// even when two requests race past the validator.
//
// Fields:
//
//	ID         – primary key identifier.
//	FieldID    – reference to the reserved field.
//	TimeSlotID – reference to the reserved time slot.
//	UserID     – reference to the booking user.
//	Date       – calendar date of the booking, "YYYY-MM-DD".
//	Status     – pending, confirmed or cancelled.
//	CreatedAt  – creation timestamp.
//	UpdatedAt  – last update timestamp.
type Reservation struct {
	ID         uint64    `json:"id"`        // reservations.id
	FieldID    uint64    `json:"field"`     // reservations.field_id
	TimeSlotID uint64    `json:"timeSlot"`  // reservations.time_slot_id
	UserID     uint64    `json:"user"`      // reservations.user_id
	Date       string    `json:"date"`      // reservations.reserved_date
	Status     string    `json:"status"`    // reservations.status
	CreatedAt  time.Time `json:"createdAt"` // reservations.created_at
	UpdatedAt  time.Time `json:"updatedAt"` // reservations.updated_at
}

// Reservation status values.  Cancelled reservations release their
// slot and no longer participate in conflict checks.
const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
)

// Active reports whether the reservation still occupies its slot.
func (r *Reservation) Active() bool {
	return r.Status != ReservationStatusCancelled
}

// ReservationDetail joins a reservation with the display attributes
// the admin tables need: the field's bilingual name, the slot
// interval and the booking user's name.  The join is performed by the
// service layer; clients never re-resolve references themselves.
type ReservationDetail struct {
	Reservation
	FieldName LocalizedName `json:"fieldName"` // fields.name_en / name_th
	SlotStart string        `json:"slotStart"` // time_slots.start_time
	SlotEnd   string        `json:"slotEnd"`   // time_slots.end_time
	Username  string        `json:"username"`  // users.username
}
