package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/sport-complex/internal/model"
	"github.com/iliyamo/sport-complex/internal/queue"
	"github.com/iliyamo/sport-complex/internal/repository"
)

// ReservationStore is the persistence surface the reservation service
// needs.  *repository.ReservationRepo satisfies it.
type ReservationStore interface {
	Create(ctx context.Context, v *model.Reservation) error
	GetByID(ctx context.Context, id uint64) (*model.Reservation, error)
	ListActiveByFieldDate(ctx context.Context, fieldID uint64, date string) ([]*model.Reservation, error)
	List(ctx context.Context, f repository.ReservationFilter) ([]*model.ReservationDetail, error)
	Update(ctx context.Context, v *model.Reservation) error
	Delete(ctx context.Context, id uint64) error
}

// FieldStore resolves field references.
type FieldStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Field, error)
}

// TimeSlotStore resolves time slot references.
type TimeSlotStore interface {
	GetByID(ctx context.Context, id uint64) (*model.TimeSlot, error)
	List(ctx context.Context) ([]*model.TimeSlot, error)
}

// UserStore resolves user references.
type UserStore interface {
	GetByID(ctx context.Context, id uint64) (*model.User, error)
}

// EventPublisher pushes reservation events onto the broker.  Publish
// failures are logged, never propagated: the booking itself has
// already committed.
type EventPublisher interface {
	PublishReservationEvent(ctx context.Context, ev queue.ReservationEvent) error
}

// ReservationService implements the reservation lifecycle: validated
// creation, full-replace update, cancellation and deletion.  The
// conflict validator runs first, but the database unique key has the
// last word, so a race between two creates still yields exactly one
// winner.
type ReservationService struct {
	reservations ReservationStore
	fields       FieldStore
	slots        TimeSlotStore
	users        UserStore
	events       EventPublisher // nil disables publishing
	now          func() time.Time
}

// NewReservationService wires a ReservationService.  events may be nil
// when no broker is configured.
func NewReservationService(r ReservationStore, f FieldStore, s TimeSlotStore, u UserStore, events EventPublisher) *ReservationService {
	return &ReservationService{
		reservations: r,
		fields:       f,
		slots:        s,
		users:        u,
		events:       events,
		now:          time.Now,
	}
}

// Create validates and stores a new reservation.  Status always
// starts at pending regardless of what the client sent.  Returns a
// *ConflictError when the slot is taken, including when the conflict
// only surfaces at insert time.
func (s *ReservationService) Create(ctx context.Context, v *model.Reservation) error {
	v.Status = model.ReservationStatusPending

	field, slot, err := s.resolveRefs(ctx, v)
	if err != nil {
		return err
	}
	if err := s.checkConflict(ctx, field, slot, v.Date, 0); err != nil {
		return err
	}

	if err := s.reservations.Create(ctx, v); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return s.conflictDetail(ctx, field, slot, v.Date)
		}
		return err
	}

	s.publish(ctx, queue.EventReservationCreated, v, field, slot)
	return nil
}

// Get returns one reservation by id.
func (s *ReservationService) Get(ctx context.Context, id uint64) (*model.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// List returns reservations with display attributes, filtered.
func (s *ReservationService) List(ctx context.Context, f repository.ReservationFilter) ([]*model.ReservationDetail, error) {
	return s.reservations.List(ctx, f)
}

// Update replaces the stored reservation with v after re-validating.
// The conflict check excludes v itself, so re-submitting an unchanged
// booking succeeds.  Cancelling skips the date and overlap rules: the
// slot is being released, not claimed.
func (s *ReservationService) Update(ctx context.Context, v *model.Reservation) error {
	prev, err := s.reservations.GetByID(ctx, v.ID)
	if err != nil {
		return err
	}

	field, slot, err := s.resolveRefs(ctx, v)
	if err != nil {
		return err
	}
	if v.Active() {
		if err := s.checkConflict(ctx, field, slot, v.Date, v.ID); err != nil {
			return err
		}
	}

	if err := s.reservations.Update(ctx, v); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return s.conflictDetail(ctx, field, slot, v.Date)
		}
		return err
	}

	if prev.Active() && !v.Active() {
		s.publish(ctx, queue.EventReservationCancelled, v, field, slot)
	}
	return nil
}

// Delete removes the reservation.  Payment records referencing it are
// intentionally left in place.
func (s *ReservationService) Delete(ctx context.Context, id uint64) error {
	return s.reservations.Delete(ctx, id)
}

// resolveRefs loads the referenced field, slot and user, translating
// missing references into validation errors: the reservation body is
// wrong, not the URL.
func (s *ReservationService) resolveRefs(ctx context.Context, v *model.Reservation) (*model.Field, *model.TimeSlot, error) {
	field, err := s.fields.GetByID(ctx, v.FieldID)
	if err != nil {
		return nil, nil, refErr(err)
	}
	slot, err := s.slots.GetByID(ctx, v.TimeSlotID)
	if err != nil {
		return nil, nil, refErr(err)
	}
	if _, err := s.users.GetByID(ctx, v.UserID); err != nil {
		return nil, nil, refErr(err)
	}
	return field, slot, nil
}

func refErr(err error) error {
	if repository.IsNotFound(err) {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	return err
}

// checkConflict runs the pure validator against the field's current
// bookings for the date.
func (s *ReservationService) checkConflict(ctx context.Context, field *model.Field, slot *model.TimeSlot, date string, excludeID uint64) error {
	existing, err := s.reservations.ListActiveByFieldDate(ctx, field.ID, date)
	if err != nil {
		return err
	}
	all, err := s.slots.List(ctx)
	if err != nil {
		return err
	}
	byID := make(map[uint64]*model.TimeSlot, len(all))
	for _, t := range all {
		byID[t.ID] = t
	}
	return CheckReservation(field, slot, date, existing, byID, excludeID, s.now())
}

// conflictDetail builds a ConflictError after the unique key rejected
// a write, re-reading the winner so the response can name it.
func (s *ReservationService) conflictDetail(ctx context.Context, field *model.Field, slot *model.TimeSlot, date string) error {
	ce := &ConflictError{
		FieldID:    field.ID,
		Date:       date,
		TimeSlotID: slot.ID,
		Start:      slot.Start,
		End:        slot.End,
	}
	existing, err := s.reservations.ListActiveByFieldDate(ctx, field.ID, date)
	if err == nil {
		for _, r := range existing {
			if r.TimeSlotID == slot.ID {
				ce.ReservationID = r.ID
				break
			}
		}
	}
	return ce
}

func (s *ReservationService) publish(ctx context.Context, typ string, v *model.Reservation, field *model.Field, slot *model.TimeSlot) {
	if s.events == nil {
		return
	}
	ev := queue.ReservationEvent{
		EventID:       uuid.NewString(),
		Type:          typ,
		ReservationID: v.ID,
		UserID:        v.UserID,
		FieldID:       field.ID,
		FieldName:     field.Name.En,
		Date:          v.Date,
		SlotStart:     slot.Start,
		SlotEnd:       slot.End,
		Price:         field.Price,
		OccurredAt:    s.now().UTC().Format(time.RFC3339),
	}
	if err := s.events.PublishReservationEvent(ctx, ev); err != nil {
		log.Warn().Err(err).Str("type", typ).Uint64("reservation_id", v.ID).Msg("event publish failed")
	}
}
