package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/sport-complex/internal/model"
)

// UserRepo provides CRUD operations over the users table.  Email
// uniqueness is enforced by the uq_users_email key; violations are
// reported as ErrEmailTaken.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userCols = `id, username, email, password_hash, role, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }, u *model.User) error {
	return row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
}

// Create inserts a new user and reads the row back.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `INSERT INTO users (username, email, password_hash, role) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, u.Username, u.Email, u.PasswordHash, u.Role)
	if err != nil {
		if isDuplicate(err) {
			return ErrEmailTaken
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)

	const sel = `SELECT ` + userCols + ` FROM users WHERE id = ?`
	return scanUser(r.db.QueryRowContext(ctx, sel, u.ID), u)
}

// GetByID returns one user or ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	const q = `SELECT ` + userCols + ` FROM users WHERE id = ?`
	var u model.User
	if err := scanUser(r.db.QueryRowContext(ctx, q, id), &u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail returns one user by email or ErrUserNotFound.  Used by
// the login handler.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT ` + userCols + ` FROM users WHERE email = ?`
	var u model.User
	if err := scanUser(r.db.QueryRowContext(ctx, q, email), &u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List returns all users in insertion order.
func (r *UserRepo) List(ctx context.Context) ([]*model.User, error) {
	const q = `SELECT ` + userCols + ` FROM users ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.User, 0)
	for rows.Next() {
		u := new(model.User)
		if err := scanUser(rows, u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces username, email, role and password hash.  Returns
// ErrUserNotFound when the id has no row and ErrEmailTaken when the
// new email collides with another account.
func (r *UserRepo) Update(ctx context.Context, u *model.User) error {
	const q = `UPDATE users
	           SET username = ?, email = ?, password_hash = ?, role = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, u.Username, u.Email, u.PasswordHash, u.Role, u.ID)
	if err != nil {
		if isDuplicate(err) {
			return ErrEmailTaken
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, u.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the user row.  Returns ErrUserNotFound when the id
// has no row.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM users WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}
