package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/sport-complex/internal/model"
)

// FieldRepo provides CRUD operations over the fields table.
type FieldRepo struct {
	db *sql.DB
}

// NewFieldRepo returns a FieldRepo bound to the given database.
func NewFieldRepo(db *sql.DB) *FieldRepo { return &FieldRepo{db: db} }

const fieldCols = `id, name_en, name_th, price, capacity, sport_type_id, status, created_at, updated_at`

func scanField(row interface{ Scan(...any) error }, f *model.Field) error {
	return row.Scan(&f.ID, &f.Name.En, &f.Name.Th, &f.Price, &f.Capacity,
		&f.SportTypeID, &f.Status, &f.CreatedAt, &f.UpdatedAt)
}

// Create inserts a new field and reads the full row back so defaults
// and timestamps are populated on the returned struct.
func (r *FieldRepo) Create(ctx context.Context, f *model.Field) error {
	const q = `INSERT INTO fields (name_en, name_th, price, capacity, sport_type_id, status)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, f.Name.En, f.Name.Th, f.Price, f.Capacity, f.SportTypeID, f.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)

	const sel = `SELECT ` + fieldCols + ` FROM fields WHERE id = ?`
	return scanField(r.db.QueryRowContext(ctx, sel, f.ID), f)
}

// GetByID returns one field or ErrFieldNotFound.
func (r *FieldRepo) GetByID(ctx context.Context, id uint64) (*model.Field, error) {
	const q = `SELECT ` + fieldCols + ` FROM fields WHERE id = ?`
	var f model.Field
	if err := scanField(r.db.QueryRowContext(ctx, q, id), &f); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFieldNotFound
		}
		return nil, err
	}
	return &f, nil
}

// List returns all fields in insertion order.
func (r *FieldRepo) List(ctx context.Context) ([]*model.Field, error) {
	const q = `SELECT ` + fieldCols + ` FROM fields ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Field, 0)
	for rows.Next() {
		f := new(model.Field)
		if err := scanField(rows, f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces all mutable columns of the field.  Returns
// ErrFieldNotFound when the id has no row.
func (r *FieldRepo) Update(ctx context.Context, f *model.Field) error {
	const q = `UPDATE fields
	           SET name_en = ?, name_th = ?, price = ?, capacity = ?, sport_type_id = ?, status = ?,
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, f.Name.En, f.Name.Th, f.Price, f.Capacity, f.SportTypeID, f.Status, f.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also 0 on a no-op update; confirm existence.
		if _, err := r.GetByID(ctx, f.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the field row.  Returns ErrFieldNotFound when the id
// has no row.
func (r *FieldRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM fields WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrFieldNotFound
	}
	return nil
}
