package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/sport-complex/internal/model"
)

// TimeSlotRepo provides CRUD operations over the time_slots table.
type TimeSlotRepo struct {
	db *sql.DB
}

// NewTimeSlotRepo returns a TimeSlotRepo bound to the given database.
func NewTimeSlotRepo(db *sql.DB) *TimeSlotRepo { return &TimeSlotRepo{db: db} }

const slotCols = `id, start_time, end_time, created_at, updated_at`

func scanSlot(row interface{ Scan(...any) error }, s *model.TimeSlot) error {
	return row.Scan(&s.ID, &s.Start, &s.End, &s.CreatedAt, &s.UpdatedAt)
}

// Create inserts a new time slot and reads the row back.
func (r *TimeSlotRepo) Create(ctx context.Context, s *model.TimeSlot) error {
	const q = `INSERT INTO time_slots (start_time, end_time) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Start, s.End)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	const sel = `SELECT ` + slotCols + ` FROM time_slots WHERE id = ?`
	return scanSlot(r.db.QueryRowContext(ctx, sel, s.ID), s)
}

// GetByID returns one time slot or ErrTimeSlotNotFound.
func (r *TimeSlotRepo) GetByID(ctx context.Context, id uint64) (*model.TimeSlot, error) {
	const q = `SELECT ` + slotCols + ` FROM time_slots WHERE id = ?`
	var s model.TimeSlot
	if err := scanSlot(r.db.QueryRowContext(ctx, q, id), &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTimeSlotNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns all time slots ordered by start time.
func (r *TimeSlotRepo) List(ctx context.Context) ([]*model.TimeSlot, error) {
	const q = `SELECT ` + slotCols + ` FROM time_slots ORDER BY start_time, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.TimeSlot, 0)
	for rows.Next() {
		s := new(model.TimeSlot)
		if err := scanSlot(rows, s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the slot interval.  Returns ErrTimeSlotNotFound
// when the id has no row.
func (r *TimeSlotRepo) Update(ctx context.Context, s *model.TimeSlot) error {
	const q = `UPDATE time_slots SET start_time = ?, end_time = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, s.Start, s.End, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, s.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the slot row.  Returns ErrTimeSlotNotFound when the
// id has no row.
func (r *TimeSlotRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM time_slots WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTimeSlotNotFound
	}
	return nil
}
