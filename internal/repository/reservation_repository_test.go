package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/sport-complex/internal/model"
)

func reservationRows(vs ...*model.Reservation) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "field_id", "time_slot_id", "user_id", "reserved_date", "status", "created_at", "updated_at",
	})
	for _, v := range vs {
		rows.AddRow(v.ID, v.FieldID, v.TimeSlotID, v.UserID, v.Date, v.Status, time.Now(), time.Now())
	}
	return rows
}

func TestReservationCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepo(db)

	v := &model.Reservation{FieldID: 1, TimeSlotID: 10, UserID: 100, Date: "2026-09-01", Status: model.ReservationStatusPending}

	mock.ExpectExec("INSERT INTO reservations").
		WithArgs(v.FieldID, v.TimeSlotID, v.UserID, v.Date, v.Status, int8(1)).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id").
		WithArgs(uint64(7)).
		WillReturnRows(reservationRows(&model.Reservation{
			ID: 7, FieldID: 1, TimeSlotID: 10, UserID: 100, Date: "2026-09-01", Status: model.ReservationStatusPending,
		}))

	require.NoError(t, repo.Create(context.Background(), v))
	assert.Equal(t, uint64(7), v.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationCreateCancelledStoresNullActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepo(db)

	v := &model.Reservation{FieldID: 1, TimeSlotID: 10, UserID: 100, Date: "2026-09-01", Status: model.ReservationStatusCancelled}

	mock.ExpectExec("INSERT INTO reservations").
		WithArgs(v.FieldID, v.TimeSlotID, v.UserID, v.Date, v.Status, nil).
		WillReturnResult(sqlmock.NewResult(8, 1))
	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id").
		WithArgs(uint64(8)).
		WillReturnRows(reservationRows(&model.Reservation{
			ID: 8, FieldID: 1, TimeSlotID: 10, UserID: 100, Date: "2026-09-01", Status: model.ReservationStatusCancelled,
		}))

	require.NoError(t, repo.Create(context.Background(), v))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationCreateDuplicateKeyIsSlotTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepo(db)

	mock.ExpectExec("INSERT INTO reservations").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	v := &model.Reservation{FieldID: 1, TimeSlotID: 10, UserID: 100, Date: "2026-09-01", Status: model.ReservationStatusPending}
	assert.ErrorIs(t, repo.Create(context.Background(), v), ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationUpdateDuplicateKeyIsSlotTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepo(db)

	mock.ExpectExec("UPDATE reservations").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	v := &model.Reservation{ID: 7, FieldID: 1, TimeSlotID: 10, UserID: 100, Date: "2026-09-01", Status: model.ReservationStatusPending}
	assert.ErrorIs(t, repo.Update(context.Background(), v), ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id").
		WithArgs(uint64(42)).
		WillReturnRows(reservationRows())

	_, err = repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestReservationDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepo(db)

	mock.ExpectExec("DELETE FROM reservations").
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 42), ErrReservationNotFound)
}

func TestReservationListActiveByFieldDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM reservations\\s+WHERE field_id = \\? AND reserved_date = \\? AND active IS NOT NULL").
		WithArgs(uint64(1), "2026-09-01").
		WillReturnRows(reservationRows(
			&model.Reservation{ID: 7, FieldID: 1, TimeSlotID: 10, UserID: 100, Date: "2026-09-01", Status: model.ReservationStatusPending},
		))

	items, err := repo.ListActiveByFieldDate(context.Background(), 1, "2026-09-01")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint64(7), items[0].ID)
}

func detailRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "field_id", "time_slot_id", "user_id", "reserved_date", "status", "created_at", "updated_at",
		"name_en", "name_th", "start_time", "end_time", "username",
	})
}

func TestReservationListNoFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepo(db)

	rows := detailRows().AddRow(
		7, 1, 10, 100, "2026-09-01", "pending", time.Now(), time.Now(),
		"Main pitch", "สนามหลัก", "10:00", "11:00", "somchai",
	)
	mock.ExpectQuery("SELECT (.+) FROM reservations r\\s+JOIN fields f").
		WillReturnRows(rows)

	items, err := repo.List(context.Background(), ReservationFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Main pitch", items[0].FieldName.En)
	assert.Equal(t, "10:00", items[0].SlotStart)
	assert.Equal(t, "somchai", items[0].Username)
}

func TestReservationListFiltersBindInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepo(db)

	fieldID := uint64(1)
	userID := uint64(100)
	from, to := "2026-09-01", "2026-09-30"

	mock.ExpectQuery("WHERE r.field_id = \\? AND r.user_id = \\? AND r.reserved_date >= \\? AND r.reserved_date <= \\?").
		WithArgs(fieldID, userID, from, to).
		WillReturnRows(detailRows())

	items, err := repo.List(context.Background(), ReservationFilter{
		FieldID: &fieldID, UserID: &userID, DateFrom: &from, DateTo: &to,
	})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}
