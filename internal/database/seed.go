package database

import (
	"context"
	"database/sql"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/iliyamo/sport-complex/internal/utils"
)

// Seed inserts a first administrator account when the users table is
// empty, so a fresh deployment can log into the admin client.  The
// credentials come from ADMIN_EMAIL / ADMIN_PASSWORD and default to a
// local development pair.
func Seed(ctx context.Context, db *sql.DB, bcryptCost int) error {
	var count int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@localhost"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin1234"
	}
	hash, err := utils.HashPassword(password, bcryptCost)
	if err != nil {
		return err
	}

	const q = `INSERT INTO users (username, email, password_hash, role) VALUES (?, ?, ?, 'admin')`
	if _, err := db.ExecContext(ctx, q, "admin", email, hash); err != nil {
		return err
	}
	log.Info().Str("email", email).Msg("seeded initial admin user")
	return nil
}
