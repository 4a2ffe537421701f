package model

import "time"

// LocalizedName carries the bilingual display name used across the
// complex.  The admin client renders the English form and falls back
// to Thai when English is empty.
type LocalizedName struct {
	En string `json:"en"` // fields.name_en
	Th string `json:"th"` // fields.name_th
}

// Field represents a reservable playing field inside the complex.
// Every field belongs to a sport type and carries a per-slot price.
// Reservations reference fields by ID; deleting a reservation never
// touches the field row.
//
// Fields:
//
//	ID          – primary key identifier.
//	Name        – bilingual display name.
//	Price       – price per reserved slot, non-negative.
//	Capacity    – number of players the field accommodates, positive.
//	SportTypeID – reference to the sport type.
//	Status      – active, inactive or maintenance.
//	CreatedAt   – creation timestamp.
//	UpdatedAt   – last update timestamp.
type Field struct {
	ID          uint64        `json:"id"`        // fields.id
	Name        LocalizedName `json:"name"`      // fields.name_en / fields.name_th
	Price       float64       `json:"price"`     // fields.price
	Capacity    uint32        `json:"capacity"`  // fields.capacity
	SportTypeID uint64        `json:"type"`      // fields.sport_type_id
	Status      string        `json:"status"`    // fields.status
	CreatedAt   time.Time     `json:"createdAt"` // fields.created_at
	UpdatedAt   time.Time     `json:"updatedAt"` // fields.updated_at
}

// Field status values.  A reservation may only target an active field.
const (
	FieldStatusActive      = "active"
	FieldStatusInactive    = "inactive"
	FieldStatusMaintenance = "maintenance"
)
