package service

import (
	"context"
	"fmt"

	"github.com/iliyamo/sport-complex/internal/model"
)

// PaymentStore is the persistence surface the payment service needs.
// *repository.PaymentSpecialRepo satisfies it.
type PaymentStore interface {
	Create(ctx context.Context, p *model.PaymentSpecial) error
	GetByID(ctx context.Context, id uint64) (*model.PaymentSpecial, error)
	List(ctx context.Context) ([]*model.PaymentSpecial, error)
	ListByReservation(ctx context.Context, reservationID uint64) ([]*model.PaymentSpecial, error)
	Update(ctx context.Context, p *model.PaymentSpecial) error
	Delete(ctx context.Context, id uint64) error
}

// ReservationResolver looks up the reservation a payment refers to.
type ReservationResolver interface {
	GetByID(ctx context.Context, id uint64) (*model.Reservation, error)
}

// PaymentService implements payment record rules: the referenced
// reservation must exist at creation time, the price must be
// non-negative.  After creation the record lives on its own; deleting
// the reservation later does not cascade here.
type PaymentService struct {
	payments     PaymentStore
	reservations ReservationResolver
}

// NewPaymentService wires a PaymentService.
func NewPaymentService(p PaymentStore, r ReservationResolver) *PaymentService {
	return &PaymentService{payments: p, reservations: r}
}

// Create validates and stores a new payment record.  A missing
// reservation surfaces as not-found, so the handler answers 404
// rather than 400: the reference is the substance of the request.
func (s *PaymentService) Create(ctx context.Context, p *model.PaymentSpecial) error {
	if err := validatePayment(p); err != nil {
		return err
	}
	if _, err := s.reservations.GetByID(ctx, p.ReservationID); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = model.PaymentStatusPending
	}
	return s.payments.Create(ctx, p)
}

// Get returns one payment record by id.
func (s *PaymentService) Get(ctx context.Context, id uint64) (*model.PaymentSpecial, error) {
	return s.payments.GetByID(ctx, id)
}

// List returns all payment records, or just those of one reservation
// when reservationID is non-zero.
func (s *PaymentService) List(ctx context.Context, reservationID uint64) ([]*model.PaymentSpecial, error) {
	if reservationID != 0 {
		return s.payments.ListByReservation(ctx, reservationID)
	}
	return s.payments.List(ctx)
}

// Update replaces the stored payment record.  The reservation
// reference is not re-resolved: the referenced booking may have been
// deleted since, and the payment record outlives it.
func (s *PaymentService) Update(ctx context.Context, p *model.PaymentSpecial) error {
	if err := validatePayment(p); err != nil {
		return err
	}
	return s.payments.Update(ctx, p)
}

// Delete removes the payment record.
func (s *PaymentService) Delete(ctx context.Context, id uint64) error {
	return s.payments.Delete(ctx, id)
}

func validatePayment(p *model.PaymentSpecial) error {
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	switch p.Status {
	case "", model.PaymentStatusPending, model.PaymentStatusCompleted, model.PaymentStatusCancelled:
	default:
		return fmt.Errorf("%w: unknown payment status %q", ErrValidation, p.Status)
	}
	return nil
}
