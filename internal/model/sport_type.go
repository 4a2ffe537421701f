package model

import "time"

// SportType categorizes courts and fields (futsal, badminton,
// swimming, ...).  Names are unique per language.
type SportType struct {
	ID        uint64        `json:"id"`        // sport_types.id
	Name      LocalizedName `json:"name"`      // sport_types.name_en / name_th
	CreatedAt time.Time     `json:"createdAt"` // sport_types.created_at
	UpdatedAt time.Time     `json:"updatedAt"` // sport_types.updated_at
}

// Court is a numbered playing court of a given sport type.  Courts
// share the field status vocabulary but are a plain catalog entity:
// bookings target fields, not courts.
type Court struct {
	ID          uint64    `json:"id"`        // courts.id
	Name        string    `json:"name"`      // courts.name
	SportTypeID uint64    `json:"type"`      // courts.sport_type_id
	Status      string    `json:"status"`    // courts.status
	CreatedAt   time.Time `json:"createdAt"` // courts.created_at
	UpdatedAt   time.Time `json:"updatedAt"` // courts.updated_at
}
