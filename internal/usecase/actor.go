// Package usecase contains the application-specific business rules.
package usecase

import (
	"coursebridge/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of a usecase operation. It is
// built by the delivery layer from the resolved user and passed down so
// ownership checks happen next to the business rules they protect.
type Actor struct {
	UserID uuid.UUID
	Roles  entity.RoleNames
}

// IsAdmin reports whether the caller holds the admin role. Admins bypass
// ownership scoping and see every row.
func (a Actor) IsAdmin() bool {
	return a.Roles.Contains(entity.RoleAdmin)
}

// HasRole reports whether the caller holds the given role.
func (a Actor) HasRole(role entity.RoleName) bool {
	return a.Roles.Contains(role)
}
