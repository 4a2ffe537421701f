package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/sport-complex/internal/model"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:30", 0, true},
		{"09-30", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := parseClock(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			assert.ErrorIs(t, err, ErrValidation, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestOverlaps(t *testing.T) {
	// 10:00-11:00 against various neighbours.
	assert.True(t, overlaps(600, 660, 630, 690))  // partial
	assert.True(t, overlaps(600, 660, 600, 660))  // identical
	assert.True(t, overlaps(600, 660, 540, 720))  // containing
	assert.False(t, overlaps(600, 660, 660, 720)) // back-to-back after
	assert.False(t, overlaps(600, 660, 540, 600)) // back-to-back before
	assert.False(t, overlaps(600, 660, 720, 780)) // disjoint
}

func tomorrow() string {
	return time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
}

func testField() *model.Field {
	return &model.Field{ID: 1, Status: model.FieldStatusActive}
}

func slotMap(slots ...*model.TimeSlot) map[uint64]*model.TimeSlot {
	m := make(map[uint64]*model.TimeSlot, len(slots))
	for _, s := range slots {
		m[s.ID] = s
	}
	return m
}

func TestCheckReservationAcceptsFreeSlot(t *testing.T) {
	slot := &model.TimeSlot{ID: 10, Start: "10:00", End: "11:00"}
	err := CheckReservation(testField(), slot, tomorrow(), nil, slotMap(slot), 0, time.Now())
	assert.NoError(t, err)
}

func TestCheckReservationInactiveField(t *testing.T) {
	f := testField()
	f.Status = model.FieldStatusMaintenance
	slot := &model.TimeSlot{ID: 10, Start: "10:00", End: "11:00"}
	err := CheckReservation(f, slot, tomorrow(), nil, slotMap(slot), 0, time.Now())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheckReservationPastDate(t *testing.T) {
	slot := &model.TimeSlot{ID: 10, Start: "10:00", End: "11:00"}
	err := CheckReservation(testField(), slot, "2020-01-01", nil, slotMap(slot), 0, time.Now())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheckReservationTodayAllowed(t *testing.T) {
	slot := &model.TimeSlot{ID: 10, Start: "10:00", End: "11:00"}
	today := time.Now().UTC().Format("2006-01-02")
	err := CheckReservation(testField(), slot, today, nil, slotMap(slot), 0, time.Now())
	assert.NoError(t, err)
}

func TestCheckReservationTodayAllowedFromAheadOfUTCZone(t *testing.T) {
	// 01:00 on March 2nd in UTC+14 is still 11:00 on March 1st in UTC.
	// Booking the UTC date must succeed even though the caller's local
	// calendar has already rolled over.
	lintao := time.FixedZone("UTC+14", 14*60*60)
	now := time.Date(2026, time.March, 2, 1, 0, 0, 0, lintao)

	slot := &model.TimeSlot{ID: 10, Start: "10:00", End: "11:00"}
	err := CheckReservation(testField(), slot, "2026-03-01", nil, slotMap(slot), 0, now)
	assert.NoError(t, err)
}

func TestCheckReservationMalformedDate(t *testing.T) {
	slot := &model.TimeSlot{ID: 10, Start: "10:00", End: "11:00"}
	err := CheckReservation(testField(), slot, "01/02/2026", nil, slotMap(slot), 0, time.Now())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheckReservationInvertedSlot(t *testing.T) {
	slot := &model.TimeSlot{ID: 10, Start: "11:00", End: "10:00"}
	err := CheckReservation(testField(), slot, tomorrow(), nil, slotMap(slot), 0, time.Now())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheckReservationConflict(t *testing.T) {
	slot := &model.TimeSlot{ID: 10, Start: "10:00", End: "11:00"}
	other := &model.TimeSlot{ID: 11, Start: "10:30", End: "11:30"}
	date := tomorrow()
	existing := []*model.Reservation{
		{ID: 7, FieldID: 1, TimeSlotID: 11, Date: date, Status: model.ReservationStatusConfirmed},
	}

	err := CheckReservation(testField(), slot, date, existing, slotMap(slot, other), 0, time.Now())
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, uint64(7), conflict.ReservationID)
	assert.Equal(t, uint64(11), conflict.TimeSlotID)
	assert.Equal(t, "10:30", conflict.Start)
	assert.Equal(t, "11:30", conflict.End)
}

func TestCheckReservationCancelledDoesNotBlock(t *testing.T) {
	slot := &model.TimeSlot{ID: 10, Start: "10:00", End: "11:00"}
	date := tomorrow()
	existing := []*model.Reservation{
		{ID: 7, FieldID: 1, TimeSlotID: 10, Date: date, Status: model.ReservationStatusCancelled},
	}
	err := CheckReservation(testField(), slot, date, existing, slotMap(slot), 0, time.Now())
	assert.NoError(t, err)
}

func TestCheckReservationSelfExclusion(t *testing.T) {
	slot := &model.TimeSlot{ID: 10, Start: "10:00", End: "11:00"}
	date := tomorrow()
	existing := []*model.Reservation{
		{ID: 7, FieldID: 1, TimeSlotID: 10, Date: date, Status: model.ReservationStatusPending},
	}

	// Re-validating reservation 7 against itself must pass.
	err := CheckReservation(testField(), slot, date, existing, slotMap(slot), 7, time.Now())
	assert.NoError(t, err)

	// A different reservation must still collide.
	err = CheckReservation(testField(), slot, date, existing, slotMap(slot), 0, time.Now())
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, uint64(7), conflict.ReservationID)
}

func TestCheckReservationBackToBackSlots(t *testing.T) {
	slot := &model.TimeSlot{ID: 10, Start: "11:00", End: "12:00"}
	other := &model.TimeSlot{ID: 11, Start: "10:00", End: "11:00"}
	date := tomorrow()
	existing := []*model.Reservation{
		{ID: 7, FieldID: 1, TimeSlotID: 11, Date: date, Status: model.ReservationStatusConfirmed},
	}
	err := CheckReservation(testField(), slot, date, existing, slotMap(slot, other), 0, time.Now())
	assert.NoError(t, err)
}
