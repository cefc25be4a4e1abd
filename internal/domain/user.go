package domain

import (
	"strings"
	"time"
)

// UserStatus represents lifecycle states for an account.
type UserStatus string

const (
	UserStatusActive UserStatus = "Active"
	UserStatusBanned UserStatus = "Banned"
)

// Role distinguishes end-users from administrators.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the domain model for both end-user and admin accounts; the Role
// field discriminates. PasswordHash is nil for accounts created through an
// external identity provider, and such accounts can never log in by password.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Username     string
	Email        string
	PasswordHash *string
	Phone        *string
	Address      *string
	Status       UserStatus
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Banned reports whether the account is blocked, tolerating legacy
// lower-cased status values.
func (u *User) Banned() bool {
	return strings.EqualFold(string(u.Status), string(UserStatusBanned))
}
