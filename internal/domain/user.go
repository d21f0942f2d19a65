package domain

import "time"

// UserStatus represents account lifecycle states. Only "active" accounts may
// authenticate.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

// User is an account in the directory. Email is the login identifier and is
// unique across all users. Role is a free-form string such as "admin" or
// "employee".
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	Status       UserStatus
	DisplayName  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
