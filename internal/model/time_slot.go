package model

import "time"

// TimeSlot is a fixed bookable interval within a day, stored as
// "HH:MM" wall-clock strings.  Slots are shared by all fields; a
// reservation pins one slot to one field on one date.
//
// Fields:
//
//	ID        – primary key identifier.
//	Start     – interval start, "HH:MM" 24h clock.
//	End       – interval end, "HH:MM", strictly after Start.
//	CreatedAt – creation timestamp.
//	UpdatedAt – last update timestamp.
type TimeSlot struct {
	ID        uint64    `json:"id"`        // time_slots.id
	Start     string    `json:"start"`     // time_slots.start_time
	End       string    `json:"end"`       // time_slots.end_time
	CreatedAt time.Time `json:"createdAt"` // time_slots.created_at
	UpdatedAt time.Time `json:"updatedAt"` // time_slots.updated_at
}
