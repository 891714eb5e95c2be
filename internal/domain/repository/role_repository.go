// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"coursebridge/internal/domain/entity"
)

// ErrRoleNotFound is a domain-specific error returned when a role is not found.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository defines read operations over the static role reference data.
type RoleRepository interface {
	// FindByName retrieves a single role by its unique name.
	FindByName(ctx context.Context, name entity.RoleName) (*entity.Role, error)

	// FindByNames retrieves the roles matching the given names. A missing
	// name surfaces as ErrRoleNotFound so callers can reject unknown tags.
	FindByNames(ctx context.Context, names []entity.RoleName) ([]entity.Role, error)

	// List retrieves all roles with their permissions preloaded.
	List(ctx context.Context) ([]entity.Role, error)
}
