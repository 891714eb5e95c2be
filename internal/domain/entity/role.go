// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// RoleName represents the tag of a role a user can hold in the system.
type RoleName string

const (
	// RoleAdmin satisfies every role-gated check.
	RoleAdmin RoleName = "admin"
	// RoleCourseManager manages course content and request processing.
	RoleCourseManager RoleName = "course_manager"
	// RoleTrainer reads course material to deliver training.
	RoleTrainer RoleName = "trainer"
	// RoleSales creates and manages course requests for clients.
	RoleSales RoleName = "sales"
	// RoleStudent consumes published course content.
	RoleStudent RoleName = "student"
)

// String returns the string representation of the RoleName.
func (r RoleName) String() string {
	return string(r)
}

// IsValid checks if the RoleName is a valid value.
func (r RoleName) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCourseManager, RoleTrainer, RoleSales, RoleStudent:
		return true
	default:
		return false
	}
}

// RoleNames is a slice of RoleName for convenience.
type RoleNames []RoleName

// Contains checks if the slice contains a specific role name.
func (rs RoleNames) Contains(role RoleName) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts RoleNames to []string for JWT compatibility.
func (rs RoleNames) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RoleNamesFromStrings converts []string to RoleNames, filtering out invalid values.
func RoleNamesFromStrings(ss []string) RoleNames {
	result := make(RoleNames, 0, len(ss))
	for _, s := range ss {
		role := RoleName(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// Role is a named capability group assigned to users. Roles are static
// reference data seeded at deployment and carry a permission set.
type Role struct {
	ID          uuid.UUID    // The unique identifier for the role.
	Name        RoleName     // Unique role tag, e.g. "admin" or "sales".
	Description string       // Human-readable summary of what the role grants.
	Permissions []Permission // Fine-grained permissions attached to the role.
	CreatedAt   time.Time    // Timestamp of when this role was created.
	UpdatedAt   time.Time    // Timestamp of the last modification to this role.
}

// Permission is a fine-grained capability attached to roles.
type Permission struct {
	ID          uuid.UUID // The unique identifier for the permission.
	Name        string    // Unique permission name, e.g. "courses.approve".
	Description string    // Human-readable summary of the permission.
}
