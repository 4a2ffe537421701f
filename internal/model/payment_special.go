package model

import "time"

// PaymentSpecial records an out-of-band payment for a reservation,
// typically a bank-transfer slip uploaded by staff.  The reference to
// the reservation is non-exclusive: the payment row survives deletion
// of the reservation it was raised for.
//
// Fields:
//
//	ID            – primary key identifier.
//	ReservationID – reference to the paid reservation.
//	Price         – amount paid, non-negative.
//	Status        – pending, completed or cancelled.
//	PaymentImage  – optional URL of the uploaded slip image.
//	DateTime      – when the payment was made or recorded.
//	CreatedAt     – creation timestamp.
//	UpdatedAt     – last update timestamp.
type PaymentSpecial struct {
	ID            uint64    `json:"id"`                     // payments_special.id
	ReservationID uint64    `json:"reservation"`            // payments_special.reservation_id
	Price         float64   `json:"price"`                  // payments_special.price
	Status        string    `json:"status"`                 // payments_special.status
	PaymentImage  *string   `json:"paymentImage,omitempty"` // payments_special.payment_image (nullable)
	DateTime      time.Time `json:"dateTime"`               // payments_special.date_time
	CreatedAt     time.Time `json:"createdAt"`              // payments_special.created_at
	UpdatedAt     time.Time `json:"updatedAt"`              // payments_special.updated_at
}

// PaymentSpecial status values.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusCancelled = "cancelled"
)
