package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/sport-complex/internal/model"
)

// PaymentSpecialRepo provides CRUD operations over the
// payments_special table.
type PaymentSpecialRepo struct {
	db *sql.DB
}

// NewPaymentSpecialRepo returns a PaymentSpecialRepo bound to the
// given database.
func NewPaymentSpecialRepo(db *sql.DB) *PaymentSpecialRepo {
	return &PaymentSpecialRepo{db: db}
}

const paymentCols = `id, reservation_id, price, status, payment_image, date_time, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }, p *model.PaymentSpecial) error {
	return row.Scan(&p.ID, &p.ReservationID, &p.Price, &p.Status,
		&p.PaymentImage, &p.DateTime, &p.CreatedAt, &p.UpdatedAt)
}

// Create inserts a new payment record and reads the row back.
func (r *PaymentSpecialRepo) Create(ctx context.Context, p *model.PaymentSpecial) error {
	const q = `INSERT INTO payments_special (reservation_id, price, status, payment_image, date_time)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, p.ReservationID, p.Price, p.Status, p.PaymentImage, p.DateTime)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)

	const sel = `SELECT ` + paymentCols + ` FROM payments_special WHERE id = ?`
	return scanPayment(r.db.QueryRowContext(ctx, sel, p.ID), p)
}

// GetByID returns one payment record or ErrPaymentNotFound.
func (r *PaymentSpecialRepo) GetByID(ctx context.Context, id uint64) (*model.PaymentSpecial, error) {
	const q = `SELECT ` + paymentCols + ` FROM payments_special WHERE id = ?`
	var p model.PaymentSpecial
	if err := scanPayment(r.db.QueryRowContext(ctx, q, id), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns all payment records, newest first.
func (r *PaymentSpecialRepo) List(ctx context.Context) ([]*model.PaymentSpecial, error) {
	const q = `SELECT ` + paymentCols + ` FROM payments_special ORDER BY date_time DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.PaymentSpecial, 0)
	for rows.Next() {
		p := new(model.PaymentSpecial)
		if err := scanPayment(rows, p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByReservation returns the payment records raised for one
// reservation, oldest first.
func (r *PaymentSpecialRepo) ListByReservation(ctx context.Context, reservationID uint64) ([]*model.PaymentSpecial, error) {
	const q = `SELECT ` + paymentCols + ` FROM payments_special WHERE reservation_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.PaymentSpecial, 0)
	for rows.Next() {
		p := new(model.PaymentSpecial)
		if err := scanPayment(rows, p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces all mutable columns of the payment record.  Returns
// ErrPaymentNotFound when the id has no row.
func (r *PaymentSpecialRepo) Update(ctx context.Context, p *model.PaymentSpecial) error {
	const q = `UPDATE payments_special
	           SET reservation_id = ?, price = ?, status = ?, payment_image = ?, date_time = ?,
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, p.ReservationID, p.Price, p.Status, p.PaymentImage, p.DateTime, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, p.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the payment row.  Returns ErrPaymentNotFound when the
// id has no row.
func (r *PaymentSpecialRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM payments_special WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
