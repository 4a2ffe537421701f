package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/sport-complex/internal/model"
)

// SportTypeRepo provides CRUD operations over the sport_types table.
type SportTypeRepo struct {
	db *sql.DB
}

// NewSportTypeRepo returns a SportTypeRepo bound to the given database.
func NewSportTypeRepo(db *sql.DB) *SportTypeRepo { return &SportTypeRepo{db: db} }

const sportTypeCols = `id, name_en, name_th, created_at, updated_at`

func scanSportType(row interface{ Scan(...any) error }, t *model.SportType) error {
	return row.Scan(&t.ID, &t.Name.En, &t.Name.Th, &t.CreatedAt, &t.UpdatedAt)
}

// Create inserts a new sport type and reads the row back.
func (r *SportTypeRepo) Create(ctx context.Context, t *model.SportType) error {
	const q = `INSERT INTO sport_types (name_en, name_th) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, t.Name.En, t.Name.Th)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)

	const sel = `SELECT ` + sportTypeCols + ` FROM sport_types WHERE id = ?`
	return scanSportType(r.db.QueryRowContext(ctx, sel, t.ID), t)
}

// GetByID returns one sport type or ErrSportTypeNotFound.
func (r *SportTypeRepo) GetByID(ctx context.Context, id uint64) (*model.SportType, error) {
	const q = `SELECT ` + sportTypeCols + ` FROM sport_types WHERE id = ?`
	var t model.SportType
	if err := scanSportType(r.db.QueryRowContext(ctx, q, id), &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSportTypeNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns all sport types in insertion order.
func (r *SportTypeRepo) List(ctx context.Context) ([]*model.SportType, error) {
	const q = `SELECT ` + sportTypeCols + ` FROM sport_types ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.SportType, 0)
	for rows.Next() {
		t := new(model.SportType)
		if err := scanSportType(rows, t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the bilingual name.  Returns ErrSportTypeNotFound
// when the id has no row.
func (r *SportTypeRepo) Update(ctx context.Context, t *model.SportType) error {
	const q = `UPDATE sport_types SET name_en = ?, name_th = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, t.Name.En, t.Name.Th, t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, t.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the sport type row.  Returns ErrSportTypeNotFound
// when the id has no row.
func (r *SportTypeRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM sport_types WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSportTypeNotFound
	}
	return nil
}
