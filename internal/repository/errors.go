// Package repository holds the data access layer.  Each entity gets
// its own repo over *sql.DB.  Sentinel errors defined here let
// handlers and services distinguish failure modes without inspecting
// driver errors themselves.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// Not-found sentinels, one per entity, returned when a lookup,
// update or delete targets an id that has no row.
var (
	ErrFieldNotFound       = errors.New("field not found")
	ErrTimeSlotNotFound    = errors.New("time slot not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrSportTypeNotFound   = errors.New("sport type not found")
	ErrCourtNotFound       = errors.New("court not found")
)

// ErrSlotTaken is returned when an insert or update violates the
// uq_active_slot key on reservations, i.e. another live reservation
// already occupies the exact (field, date, slot).  Services translate
// this into a Conflict response.
var ErrSlotTaken = errors.New("slot already reserved")

// ErrEmailTaken is returned when a user insert or update violates the
// unique email key.
var ErrEmailTaken = errors.New("email already registered")

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	for _, sentinel := range []error{
		ErrFieldNotFound, ErrTimeSlotNotFound, ErrUserNotFound,
		ErrReservationNotFound, ErrPaymentNotFound,
		ErrSportTypeNotFound, ErrCourtNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// mysqlDuplicateEntry is the server error number MySQL raises on a
// unique key violation.
const mysqlDuplicateEntry = 1062

// isDuplicate reports whether err is a unique key violation.
func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}
