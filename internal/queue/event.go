// Package queue defines the message payloads exchanged over the
// broker and the background consumer that records them.
package queue

// Event types carried by ReservationEvent.
const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
)

// ReservationEvent is published when a reservation is created or
// cancelled.  It carries enough display data for downstream consumers
// to log or notify without querying the primary database.
type ReservationEvent struct {
	EventID       string  `json:"event_id"` // uuid, for dedup on redelivery
	Type          string  `json:"type"`
	ReservationID uint64  `json:"reservation_id"`
	UserID        uint64  `json:"user_id"`
	FieldID       uint64  `json:"field_id"`
	FieldName     string  `json:"field_name"`
	Date          string  `json:"date"`
	SlotStart     string  `json:"slot_start"`
	SlotEnd       string  `json:"slot_end"`
	Price         float64 `json:"price"`
	OccurredAt    string  `json:"occurred_at"` // RFC 3339
}
