package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/sport-complex/internal/model"
	"github.com/iliyamo/sport-complex/internal/queue"
	"github.com/iliyamo/sport-complex/internal/repository"
)

// fakeReservationStore keeps reservations in memory and emulates the
// database unique key on (field, date, slot) for live rows.
type fakeReservationStore struct {
	mu     sync.Mutex
	items  map[uint64]*model.Reservation
	nextID uint64
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{items: map[uint64]*model.Reservation{}}
}

func (s *fakeReservationStore) taken(v *model.Reservation) bool {
	if !v.Active() {
		return false
	}
	for _, r := range s.items {
		if r.ID != v.ID && r.Active() &&
			r.FieldID == v.FieldID && r.Date == v.Date && r.TimeSlotID == v.TimeSlotID {
			return true
		}
	}
	return false
}

func (s *fakeReservationStore) Create(_ context.Context, v *model.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.taken(v) {
		return repository.ErrSlotTaken
	}
	s.nextID++
	v.ID = s.nextID
	cp := *v
	s.items[v.ID] = &cp
	return nil
}

func (s *fakeReservationStore) GetByID(_ context.Context, id uint64) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.items[id]
	if !ok {
		return nil, repository.ErrReservationNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *fakeReservationStore) ListActiveByFieldDate(_ context.Context, fieldID uint64, date string) ([]*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Reservation
	for _, r := range s.items {
		if r.FieldID == fieldID && r.Date == date && r.Active() {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeReservationStore) List(_ context.Context, f repository.ReservationFilter) ([]*model.ReservationDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.ReservationDetail
	for _, r := range s.items {
		if f.FieldID != nil && r.FieldID != *f.FieldID {
			continue
		}
		if f.UserID != nil && r.UserID != *f.UserID {
			continue
		}
		if f.DateFrom != nil && r.Date < *f.DateFrom {
			continue
		}
		if f.DateTo != nil && r.Date > *f.DateTo {
			continue
		}
		out = append(out, &model.ReservationDetail{Reservation: *r})
	}
	return out, nil
}

func (s *fakeReservationStore) Update(_ context.Context, v *model.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[v.ID]; !ok {
		return repository.ErrReservationNotFound
	}
	if s.taken(v) {
		return repository.ErrSlotTaken
	}
	cp := *v
	s.items[v.ID] = &cp
	return nil
}

func (s *fakeReservationStore) Delete(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return repository.ErrReservationNotFound
	}
	delete(s.items, id)
	return nil
}

type fakeFieldStore map[uint64]*model.Field

func (s fakeFieldStore) GetByID(_ context.Context, id uint64) (*model.Field, error) {
	f, ok := s[id]
	if !ok {
		return nil, repository.ErrFieldNotFound
	}
	return f, nil
}

type fakeSlotStore map[uint64]*model.TimeSlot

func (s fakeSlotStore) GetByID(_ context.Context, id uint64) (*model.TimeSlot, error) {
	t, ok := s[id]
	if !ok {
		return nil, repository.ErrTimeSlotNotFound
	}
	return t, nil
}

func (s fakeSlotStore) List(_ context.Context) ([]*model.TimeSlot, error) {
	out := make([]*model.TimeSlot, 0, len(s))
	for _, t := range s {
		out = append(out, t)
	}
	return out, nil
}

type fakeUserStore map[uint64]*model.User

func (s fakeUserStore) GetByID(_ context.Context, id uint64) (*model.User, error) {
	u, ok := s[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []queue.ReservationEvent
}

func (p *fakePublisher) PublishReservationEvent(_ context.Context, ev queue.ReservationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

type fixture struct {
	svc    *ReservationService
	store  *fakeReservationStore
	pub    *fakePublisher
	date   string
	fields fakeFieldStore
	slots  fakeSlotStore
}

func newFixture() *fixture {
	store := newFakeReservationStore()
	pub := &fakePublisher{}
	fields := fakeFieldStore{
		1: {ID: 1, Name: model.LocalizedName{En: "Main pitch"}, Price: 400, Status: model.FieldStatusActive},
		2: {ID: 2, Name: model.LocalizedName{En: "Closed pitch"}, Status: model.FieldStatusInactive},
	}
	slots := fakeSlotStore{
		10: {ID: 10, Start: "10:00", End: "11:00"},
		11: {ID: 11, Start: "11:00", End: "12:00"},
		12: {ID: 12, Start: "10:30", End: "11:30"},
	}
	users := fakeUserStore{
		100: {ID: 100, Username: "somchai", Role: model.RoleMember},
	}
	return &fixture{
		svc:    NewReservationService(store, fields, slots, users, pub),
		store:  store,
		pub:    pub,
		date:   time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02"),
		fields: fields,
		slots:  slots,
	}
}

func TestCreateReservation(t *testing.T) {
	fx := newFixture()
	v := &model.Reservation{FieldID: 1, TimeSlotID: 10, UserID: 100, Date: fx.date, Status: "confirmed"}

	require.NoError(t, fx.svc.Create(context.Background(), v))
	assert.NotZero(t, v.ID)
	// Client-sent status is ignored; bookings always start pending.
	assert.Equal(t, model.ReservationStatusPending, v.Status)

	require.Len(t, fx.pub.events, 1)
	ev := fx.pub.events[0]
	assert.Equal(t, queue.EventReservationCreated, ev.Type)
	assert.Equal(t, v.ID, ev.ReservationID)
	assert.Equal(t, "Main pitch", ev.FieldName)
	assert.NotEmpty(t, ev.EventID)
}

func TestCreateReservationUnknownRefs(t *testing.T) {
	fx := newFixture()
	cases := []model.Reservation{
		{FieldID: 99, TimeSlotID: 10, UserID: 100, Date: fx.date},
		{FieldID: 1, TimeSlotID: 99, UserID: 100, Date: fx.date},
		{FieldID: 1, TimeSlotID: 10, UserID: 99, Date: fx.date},
	}
	for _, v := range cases {
		v := v
		err := fx.svc.Create(context.Background(), &v)
		assert.ErrorIs(t, err, ErrValidation)
	}
	assert.Empty(t, fx.pub.events)
}

func TestCreateReservationInactiveField(t *testing.T) {
	fx := newFixture()
	v := &model.Reservation{FieldID: 2, TimeSlotID: 10, UserID: 100, Date: fx.date}
	assert.ErrorIs(t, fx.svc.Create(context.Background(), v), ErrValidation)
}

func TestCreateReservationConflict(t *testing.T) {
	fx := newFixture()
	first := &model.Reservation{FieldID: 1, TimeSlotID: 10, UserID: 100, Date: fx.date}
	require.NoError(t, fx.svc.Create(context.Background(), first))

	second := &model.Reservation{FieldID: 1, TimeSlotID: 10, UserID: 100, Date: fx.date}
	err := fx.svc.Create(context.Background(), second)

	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, first.ID, conflict.ReservationID)
	assert.Equal(t, "10:00", conflict.Start)
	require.Len(t, fx.pub.events, 1) // only the first create published
}

func TestCreateReservationOverlappingSlotConflict(t *testing.T) {
	fx := newFixture()
	first := &model.Reservation{FieldID: 1, TimeSlotID: 10, UserID: 100, Date: fx.date}
	require.NoError(t, fx.svc.Create(context.Background(), first))

	// Slot 12 (10:30-11:30) overlaps slot 10 (10:00-11:00).
	second := &model.Reservation{FieldID: 1, TimeSlotID: 12, UserID: 100, Date: fx.date}
	err := fx.svc.Create(context.Background(), second)

	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, first.ID, conflict.ReservationID)
}

func TestCreateReservationRaceLoserGetsConflict(t *testing.T) {
	// Both requests pass the validator against an empty day; the store
	// key decides the winner.  Exactly one create must succeed and the
	// loser must see a ConflictError naming the winner.
	fx := newFixture()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	ids := make([]uint64, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := &model.Reservation{FieldID: 1, TimeSlotID: 10, UserID: 100, Date: fx.date}
			errs[i] = fx.svc.Create(context.Background(), v)
			ids[i] = v.ID
		}(i)
	}
	wg.Wait()

	var okCount int
	var winner uint64
	for i, err := range errs {
		if err == nil {
			okCount++
			winner = ids[i]
		}
	}
	require.Equal(t, 1, okCount)
	for _, err := range errs {
		if err == nil {
			continue
		}
		var conflict *ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, winner, conflict.ReservationID)
	}
}

func TestUpdateReservationNotFound(t *testing.T) {
	fx := newFixture()
	v := &model.Reservation{ID: 42, FieldID: 1, TimeSlotID: 10, UserID: 100, Date: fx.date}
	err := fx.svc.Update(context.Background(), v)
	assert.ErrorIs(t, err, repository.ErrReservationNotFound)
}

func TestUpdateReservationOntoOwnSlot(t *testing.T) {
	fx := newFixture()
	v := &model.Reservation{FieldID: 1, TimeSlotID: 10, UserID: 100, Date: fx.date}
	require.NoError(t, fx.svc.Create(context.Background(), v))

	v.Status = model.ReservationStatusConfirmed
	assert.NoError(t, fx.svc.Update(context.Background(), v))
}

func TestUpdateReservationConflict(t *testing.T) {
	fx := newFixture()
	first := &model.Reservation{FieldID: 1, TimeSlotID: 10, UserID: 100, Date: fx.date}
	require.NoError(t, fx.svc.Create(context.Background(), first))
	second := &model.Reservation{FieldID: 1, TimeSlotID: 11, UserID: 100, Date: fx.date}
	require.NoError(t, fx.svc.Create(context.Background(), second))

	// Moving the second booking onto the first one's slot must fail.
	second.TimeSlotID = 10
	err := fx.svc.Update(context.Background(), second)
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, first.ID, conflict.ReservationID)
}

func TestUpdateReservationFreesOldSlot(t *testing.T) {
	fx := newFixture()
	v := &model.Reservation{FieldID: 1, TimeSlotID: 10, UserID: 100, Date: fx.date}
	require.NoError(t, fx.svc.Create(context.Background(), v))

	v.TimeSlotID = 11
	require.NoError(t, fx.svc.Update(context.Background(), v))

	// The vacated slot accepts a new booking.
	again := &model.Reservation{FieldID: 1, TimeSlotID: 10, UserID: 100, Date: fx.date}
	assert.NoError(t, fx.svc.Create(context.Background(), again))
}

func TestCancelReleasesSlotAndPublishes(t *testing.T) {
	fx := newFixture()
	v := &model.Reservation{FieldID: 1, TimeSlotID: 10, UserID: 100, Date: fx.date}
	require.NoError(t, fx.svc.Create(context.Background(), v))

	v.Status = model.ReservationStatusCancelled
	require.NoError(t, fx.svc.Update(context.Background(), v))

	require.Len(t, fx.pub.events, 2)
	assert.Equal(t, queue.EventReservationCancelled, fx.pub.events[1].Type)

	// The slot is free again.
	again := &model.Reservation{FieldID: 1, TimeSlotID: 10, UserID: 100, Date: fx.date}
	assert.NoError(t, fx.svc.Create(context.Background(), again))
}

func TestCancelSkipsDateRule(t *testing.T) {
	// A booking whose date has passed can still be cancelled.
	fx := newFixture()
	v := &model.Reservation{FieldID: 1, TimeSlotID: 10, UserID: 100, Date: fx.date}
	require.NoError(t, fx.svc.Create(context.Background(), v))

	stored, err := fx.store.GetByID(context.Background(), v.ID)
	require.NoError(t, err)
	stored.Date = "2020-01-01"
	require.NoError(t, fx.store.Update(context.Background(), stored))

	stored.Status = model.ReservationStatusCancelled
	assert.NoError(t, fx.svc.Update(context.Background(), stored))
}

func TestDeleteReservation(t *testing.T) {
	fx := newFixture()
	v := &model.Reservation{FieldID: 1, TimeSlotID: 10, UserID: 100, Date: fx.date}
	require.NoError(t, fx.svc.Create(context.Background(), v))

	require.NoError(t, fx.svc.Delete(context.Background(), v.ID))
	_, err := fx.svc.Get(context.Background(), v.ID)
	assert.ErrorIs(t, err, repository.ErrReservationNotFound)

	assert.ErrorIs(t, fx.svc.Delete(context.Background(), v.ID), repository.ErrReservationNotFound)
}

func TestListFiltersCompose(t *testing.T) {
	fx := newFixture()
	d1 := fx.date
	d2 := time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")

	mk := func(field, slot uint64, date string) {
		v := &model.Reservation{FieldID: field, TimeSlotID: slot, UserID: 100, Date: date}
		require.NoError(t, fx.svc.Create(context.Background(), v))
	}
	mk(1, 10, d1)
	mk(1, 11, d1)
	mk(1, 10, d2)

	fieldID := uint64(1)
	items, err := fx.svc.List(context.Background(), repository.ReservationFilter{
		FieldID: &fieldID, DateFrom: &d2, DateTo: &d2,
	})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, d2, items[0].Date)
}
