// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus represents the lifecycle state of a user account.
type UserStatus string

const (
	// UserStatusActive indicates an account that may authenticate and act.
	UserStatusActive UserStatus = "active"
	// UserStatusInactive indicates a deactivated account. Inactive accounts
	// are denied by the access gate regardless of their roles.
	UserStatusInactive UserStatus = "inactive"
)

// String returns the string representation of the UserStatus.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive:
		return true
	default:
		return false
	}
}

// User is the core identity in the system, representing a unique account.
// A user authenticates with username/email plus password and carries a set
// of roles that gate what it may do.
type User struct {
	ID           uuid.UUID  // The unique identifier for the user.
	Username     string     // Unique login name.
	Email        string     // Unique contact email, also accepted as a login identifier.
	PasswordHash string     // bcrypt hash of the user's password.
	FirstName    string     // Given name, optional.
	LastName     string     // Family name, optional.
	Status       UserStatus // Account lifecycle state; only active users pass the access gate.
	Roles        []Role     // Assigned roles (many-to-many).
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this account.
}

// IsActive reports whether the account may authenticate and act.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(name RoleName) bool {
	for _, role := range u.Roles {
		if role.Name == name {
			return true
		}
	}

	return false
}

// RoleNames returns the user's role names as strings, in assignment order.
// Used when embedding roles into access token claims.
func (u *User) RoleNames() []string {
	names := make([]string, len(u.Roles))
	for i, role := range u.Roles {
		names[i] = role.Name.String()
	}

	return names
}
