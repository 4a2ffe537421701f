package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/sport-complex/internal/model"
)

// CourtRepo provides CRUD operations over the courts table.
type CourtRepo struct {
	db *sql.DB
}

// NewCourtRepo returns a CourtRepo bound to the given database.
func NewCourtRepo(db *sql.DB) *CourtRepo { return &CourtRepo{db: db} }

const courtCols = `id, name, sport_type_id, status, created_at, updated_at`

func scanCourt(row interface{ Scan(...any) error }, c *model.Court) error {
	return row.Scan(&c.ID, &c.Name, &c.SportTypeID, &c.Status, &c.CreatedAt, &c.UpdatedAt)
}

// Create inserts a new court and reads the row back.
func (r *CourtRepo) Create(ctx context.Context, c *model.Court) error {
	const q = `INSERT INTO courts (name, sport_type_id, status) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, c.Name, c.SportTypeID, c.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)

	const sel = `SELECT ` + courtCols + ` FROM courts WHERE id = ?`
	return scanCourt(r.db.QueryRowContext(ctx, sel, c.ID), c)
}

// GetByID returns one court or ErrCourtNotFound.
func (r *CourtRepo) GetByID(ctx context.Context, id uint64) (*model.Court, error) {
	const q = `SELECT ` + courtCols + ` FROM courts WHERE id = ?`
	var c model.Court
	if err := scanCourt(r.db.QueryRowContext(ctx, q, id), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns all courts in insertion order.
func (r *CourtRepo) List(ctx context.Context) ([]*model.Court, error) {
	const q = `SELECT ` + courtCols + ` FROM courts ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Court, 0)
	for rows.Next() {
		c := new(model.Court)
		if err := scanCourt(rows, c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces all mutable columns of the court.  Returns
// ErrCourtNotFound when the id has no row.
func (r *CourtRepo) Update(ctx context.Context, c *model.Court) error {
	const q = `UPDATE courts SET name = ?, sport_type_id = ?, status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, c.Name, c.SportTypeID, c.Status, c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, c.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the court row.  Returns ErrCourtNotFound when the id
// has no row.
func (r *CourtRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM courts WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCourtNotFound
	}
	return nil
}
