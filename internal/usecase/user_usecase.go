// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"coursebridge/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListUsersInput narrows and pages the admin user listing. Empty filter
// values match everything.
type ListUsersInput struct {
	Role    string
	Status  string
	Page    int
	PerPage int
}

// UpdateUserInput defines the fields an admin may change on any account.
// Nil fields are left untouched.
type UpdateUserInput struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// AssignRolesInput defines the replacement role set for an account.
type AssignRolesInput struct {
	Roles []string
}

// --- Output DTOs ---

// UserListOutput returns one page of users plus the total match count.
type UserListOutput struct {
	Users   []*entity.User
	Total   int64
	Page    int
	PerPage int
}

// UserUsecase defines the interface for administrative user management.
// Every operation here is admin-gated at the delivery layer.
type UserUsecase interface {
	ListUsers(ctx context.Context, input *ListUsersInput) (*UserListOutput, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	AssignRoles(ctx context.Context, userID uuid.UUID, input *AssignRolesInput) (*entity.User, error)
	ActivateUser(ctx context.Context, userID uuid.UUID) error
	DeactivateUser(ctx context.Context, userID uuid.UUID) error
}
