package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/sport-complex/internal/model"
)

// ReservationRepo provides access to the reservations table.  The
// uq_active_slot key is the final arbiter of the no-double-booking
// invariant: when two requests race for the same (field, date, slot),
// the loser's insert or update fails with a duplicate key error and is
// surfaced here as ErrSlotTaken.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given
// database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// reserved_date is formatted in SQL so it scans into a plain string
// even with parseTime enabled on the connection.
const reservationCols = `id, field_id, time_slot_id, user_id,
	DATE_FORMAT(reserved_date, '%Y-%m-%d'), status, created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }, v *model.Reservation) error {
	return row.Scan(&v.ID, &v.FieldID, &v.TimeSlotID, &v.UserID,
		&v.Date, &v.Status, &v.CreatedAt, &v.UpdatedAt)
}

// activeFlag maps a reservation status onto the active column: 1 while
// the reservation occupies its slot, NULL once cancelled so the unique
// key stops counting it.
func activeFlag(status string) any {
	if status == model.ReservationStatusCancelled {
		return nil
	}
	return int8(1)
}

// Create inserts a new reservation and reads the row back.  Returns
// ErrSlotTaken when a live reservation already holds the same
// (field, date, slot).
func (r *ReservationRepo) Create(ctx context.Context, v *model.Reservation) error {
	const q = `INSERT INTO reservations (field_id, time_slot_id, user_id, reserved_date, status, active)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, v.FieldID, v.TimeSlotID, v.UserID, v.Date, v.Status, activeFlag(v.Status))
	if err != nil {
		if isDuplicate(err) {
			return ErrSlotTaken
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)

	const sel = `SELECT ` + reservationCols + ` FROM reservations WHERE id = ?`
	return scanReservation(r.db.QueryRowContext(ctx, sel, v.ID), v)
}

// GetByID returns one reservation or ErrReservationNotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	const q = `SELECT ` + reservationCols + ` FROM reservations WHERE id = ?`
	var v model.Reservation
	if err := scanReservation(r.db.QueryRowContext(ctx, q, id), &v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &v, nil
}

// ListActiveByFieldDate returns the non-cancelled reservations for one
// field on one date.  The conflict validator reads this set before a
// create or update to reject overlapping intervals up front.
func (r *ReservationRepo) ListActiveByFieldDate(ctx context.Context, fieldID uint64, date string) ([]*model.Reservation, error) {
	const q = `SELECT ` + reservationCols + ` FROM reservations
	           WHERE field_id = ? AND reserved_date = ? AND active IS NOT NULL
	           ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, fieldID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Reservation, 0)
	for rows.Next() {
		v := new(model.Reservation)
		if err := scanReservation(rows, v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReservationFilter narrows List.  Nil members match everything.
type ReservationFilter struct {
	FieldID  *uint64
	UserID   *uint64
	DateFrom *string // inclusive, "YYYY-MM-DD"
	DateTo   *string // inclusive, "YYYY-MM-DD"
}

// List returns reservations joined with their field, slot and user
// display attributes, newest booking dates last.
func (r *ReservationRepo) List(ctx context.Context, f ReservationFilter) ([]*model.ReservationDetail, error) {
	var b strings.Builder
	b.WriteString(`SELECT r.id, r.field_id, r.time_slot_id, r.user_id,
		DATE_FORMAT(r.reserved_date, '%Y-%m-%d'), r.status, r.created_at, r.updated_at,
		f.name_en, f.name_th, s.start_time, s.end_time, u.username
		FROM reservations r
		JOIN fields f ON f.id = r.field_id
		JOIN time_slots s ON s.id = r.time_slot_id
		JOIN users u ON u.id = r.user_id`)

	var (
		conds []string
		args  []any
	)
	if f.FieldID != nil {
		conds = append(conds, "r.field_id = ?")
		args = append(args, *f.FieldID)
	}
	if f.UserID != nil {
		conds = append(conds, "r.user_id = ?")
		args = append(args, *f.UserID)
	}
	if f.DateFrom != nil {
		conds = append(conds, "r.reserved_date >= ?")
		args = append(args, *f.DateFrom)
	}
	if f.DateTo != nil {
		conds = append(conds, "r.reserved_date <= ?")
		args = append(args, *f.DateTo)
	}
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	b.WriteString(" ORDER BY r.reserved_date, s.start_time, r.id")

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.ReservationDetail, 0)
	for rows.Next() {
		d := new(model.ReservationDetail)
		if err := rows.Scan(&d.ID, &d.FieldID, &d.TimeSlotID, &d.UserID,
			&d.Date, &d.Status, &d.CreatedAt, &d.UpdatedAt,
			&d.FieldName.En, &d.FieldName.Th, &d.SlotStart, &d.SlotEnd, &d.Username); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces all mutable columns of the reservation, keeping the
// active column in step with the status.  Returns
// ErrReservationNotFound when the id has no row and ErrSlotTaken when
// the new (field, date, slot) is already held by another live
// reservation.
func (r *ReservationRepo) Update(ctx context.Context, v *model.Reservation) error {
	const q = `UPDATE reservations
	           SET field_id = ?, time_slot_id = ?, user_id = ?, reserved_date = ?, status = ?, active = ?,
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, v.FieldID, v.TimeSlotID, v.UserID, v.Date, v.Status, activeFlag(v.Status), v.ID)
	if err != nil {
		if isDuplicate(err) {
			return ErrSlotTaken
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also 0 on a no-op update; confirm existence.
		if _, err := r.GetByID(ctx, v.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the reservation row.  Payment records referencing it
// are left untouched.  Returns ErrReservationNotFound when the id has
// no row.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM reservations WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrReservationNotFound
	}
	return nil
}
