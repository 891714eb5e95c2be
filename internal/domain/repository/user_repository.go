// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"coursebridge/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserListFilter narrows and pages a user listing.
type UserListFilter struct {
	Role    *entity.RoleName   // Only users holding this role.
	Status  *entity.UserStatus // Only users in this status.
	Page    int                // 1-based page number.
	PerPage int                // Page size.
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, roles preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List retrieves users matching the filter and the total match count.
	List(ctx context.Context, filter UserListFilter) ([]*entity.User, int64, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// ReplaceRoles replaces the user's role set with the given roles.
	ReplaceRoles(ctx context.Context, userID uuid.UUID, roles []entity.Role) error

	// AcquireSessionMutex takes a row-level lock on the user for the duration
	// of the surrounding transaction. Used to serialize session-limit checks.
	AcquireSessionMutex(ctx context.Context, userID uuid.UUID) error
}
