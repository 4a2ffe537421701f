package model

import "time"

// User is an account known to the complex: members who book fields
// and administrators who manage the catalog.  Emails are unique.
// The password hash never leaves the server.
//
// Fields:
//
//	ID           – primary key identifier.
//	Username     – display name.
//	Email        – unique contact address, used to log in.
//	PasswordHash – bcrypt hash of the password.
//	Role         – admin or member.
//	CreatedAt    – creation timestamp.
//	UpdatedAt    – last update timestamp.
type User struct {
	ID           uint64    `json:"id"`        // users.id
	Username     string    `json:"username"`  // users.username
	Email        string    `json:"email"`     // users.email
	PasswordHash string    `json:"-"`         // users.password_hash
	Role         string    `json:"role"`      // users.role
	CreatedAt    time.Time `json:"createdAt"` // users.created_at
	UpdatedAt    time.Time `json:"updatedAt"` // users.updated_at
}

// User roles.  Only admins may mutate catalog and booking data
// through the API.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)
