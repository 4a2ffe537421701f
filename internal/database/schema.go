package database

import (
	"context"
	"database/sql"
)

// EnsureSchema creates all tables when they do not exist yet.  The
// statements are idempotent so the server can run them on every boot.
//
// The reservations table is the one with real invariants.  Its
// `active` column is 1 for pending/confirmed rows and NULL for
// cancelled ones; because MySQL excludes NULLs from unique keys, the
// composite key uq_active_slot admits at most one live reservation
// per (field, date, slot) while cancelled rows never block a re-book.
// Concurrent create requests that both pass the application-level
// conflict check therefore still serialize here: the loser receives a
// duplicate-key error which the repository reports as a conflict.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(120) NOT NULL,
			email VARCHAR(190) NOT NULL,
			password_hash VARCHAR(100) NOT NULL,
			role ENUM('admin','member') NOT NULL DEFAULT 'member',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uq_users_email (email)
		) ENGINE=InnoDB`,

		`CREATE TABLE IF NOT EXISTS sport_types (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			name_en VARCHAR(120) NOT NULL,
			name_th VARCHAR(120) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uq_sport_types_name (name_en)
		) ENGINE=InnoDB`,

		`CREATE TABLE IF NOT EXISTS courts (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(120) NOT NULL,
			sport_type_id BIGINT UNSIGNED NOT NULL,
			status ENUM('active','inactive','maintenance') NOT NULL DEFAULT 'active',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			KEY idx_courts_type (sport_type_id),
			CONSTRAINT fk_courts_type FOREIGN KEY (sport_type_id) REFERENCES sport_types (id)
		) ENGINE=InnoDB`,

		`CREATE TABLE IF NOT EXISTS fields (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			name_en VARCHAR(120) NOT NULL,
			name_th VARCHAR(120) NOT NULL DEFAULT '',
			price DECIMAL(10,2) NOT NULL DEFAULT 0,
			capacity INT UNSIGNED NOT NULL,
			sport_type_id BIGINT UNSIGNED NOT NULL,
			status ENUM('active','inactive','maintenance') NOT NULL DEFAULT 'active',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			KEY idx_fields_type (sport_type_id),
			CONSTRAINT fk_fields_type FOREIGN KEY (sport_type_id) REFERENCES sport_types (id)
		) ENGINE=InnoDB`,

		`CREATE TABLE IF NOT EXISTS time_slots (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			start_time CHAR(5) NOT NULL,
			end_time CHAR(5) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uq_time_slots_interval (start_time, end_time)
		) ENGINE=InnoDB`,

		`CREATE TABLE IF NOT EXISTS reservations (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			field_id BIGINT UNSIGNED NOT NULL,
			time_slot_id BIGINT UNSIGNED NOT NULL,
			user_id BIGINT UNSIGNED NOT NULL,
			reserved_date DATE NOT NULL,
			status ENUM('pending','confirmed','cancelled') NOT NULL DEFAULT 'pending',
			active TINYINT(1) NULL DEFAULT 1,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uq_active_slot (field_id, reserved_date, time_slot_id, active),
			KEY idx_res_field_date (field_id, reserved_date),
			KEY idx_res_user (user_id),
			CONSTRAINT fk_res_field FOREIGN KEY (field_id) REFERENCES fields (id),
			CONSTRAINT fk_res_slot FOREIGN KEY (time_slot_id) REFERENCES time_slots (id),
			CONSTRAINT fk_res_user FOREIGN KEY (user_id) REFERENCES users (id)
		) ENGINE=InnoDB`,

		// No FK to reservations: a payment record's lifetime is
		// independent of the reservation it was raised for.
		`CREATE TABLE IF NOT EXISTS payments_special (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			reservation_id BIGINT UNSIGNED NOT NULL,
			price DECIMAL(10,2) NOT NULL DEFAULT 0,
			status ENUM('pending','completed','cancelled') NOT NULL DEFAULT 'pending',
			payment_image VARCHAR(500) NULL,
			date_time DATETIME NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			KEY idx_pay_reservation (reservation_id)
		) ENGINE=InnoDB`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
