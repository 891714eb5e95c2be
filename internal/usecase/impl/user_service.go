// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "coursebridge/internal/delivery/context"
	"coursebridge/internal/domain/entity"
	domainerrors "coursebridge/internal/domain/errors"
	"coursebridge/internal/domain/repository"
	"coursebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface. Every operation is
// admin-gated at the delivery layer, so no actor scoping happens here.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	roleRepo  repository.RoleRepository
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	RoleRepo  repository.RoleRepository
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		roleRepo:  params.RoleRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns one page of users matching the optional role and status filters.
func (srv *userService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*usecase.UserListOutput, error) {
	srv.log(ctx).Debug("Listing users", slog.String("role", input.Role), slog.String("status", input.Status))

	filter := repository.UserListFilter{
		Page:    input.Page,
		PerPage: input.PerPage,
	}

	if input.Role != "" {
		role := entity.RoleName(input.Role)
		if !role.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown role filter %q", input.Role)
		}
		filter.Role = &role
	}

	if input.Status != "" {
		status := entity.UserStatus(input.Status)
		if !status.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown status filter %q", input.Status)
		}
		filter.Status = &status
	}

	// Single query operation - use direct repository instance
	users, total, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.UserListOutput{
		Users:   users,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

// GetUser returns a single user with roles preloaded.
func (srv *userService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
		}
		srv.log(ctx).Error("Failed to get user", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateUser applies allow-listed field changes to any account.
func (srv *userService) UpdateUser(ctx context.Context, userID uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user", slog.Any("userID", userID))

	var updatedUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.FirstName != nil {
			user.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			user.LastName = *input.LastName
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		updatedUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute user update transaction", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	return updatedUser, nil
}

// AssignRoles replaces the user's role set with the given role tags.
func (srv *userService) AssignRoles(ctx context.Context, userID uuid.UUID, input *usecase.AssignRolesInput) (*entity.User, error) {
	srv.log(ctx).Info("Assigning roles", slog.Any("userID", userID), slog.Any("roles", input.Roles))

	if len(input.Roles) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "at least one role is required")
	}

	roleNames := make([]entity.RoleName, 0, len(input.Roles))
	for _, name := range input.Roles {
		role := entity.RoleName(name)
		if !role.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown role name %q", name)
		}
		roleNames = append(roleNames, role)
	}

	var updatedUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		roleRepo := repoFactory.RoleRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
			}

			return errors.Wrap(err, "failed to find user")
		}

		roles, err := roleRepo.FindByNames(ctx, roleNames)
		if err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return errors.Wrap(domainerrors.ErrValidationFailed, "unknown role name in assignment")
			}

			return errors.Wrap(err, "failed to resolve roles")
		}

		if err := userRepo.ReplaceRoles(ctx, userID, roles); err != nil {
			return errors.Wrap(err, "failed to replace roles")
		}

		user.Roles = roles
		updatedUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute role assignment transaction", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to execute role assignment transaction")
	}
	srv.log(ctx).Info("Roles assigned", slog.Any("userID", userID), slog.Any("roles", input.Roles))

	return updatedUser, nil
}

// ActivateUser flips the account status to active.
func (srv *userService) ActivateUser(ctx context.Context, userID uuid.UUID) error {
	return srv.setUserStatus(ctx, userID, entity.UserStatusActive)
}

// DeactivateUser flips the account status to inactive. Accounts are never
// hard-deleted; the access gate denies inactive accounts on every request,
// so existing sessions stop working immediately.
func (srv *userService) DeactivateUser(ctx context.Context, userID uuid.UUID) error {
	return srv.setUserStatus(ctx, userID, entity.UserStatusInactive)
}

func (srv *userService) setUserStatus(ctx context.Context, userID uuid.UUID, status entity.UserStatus) error {
	srv.log(ctx).Info("Setting user status", slog.Any("userID", userID), slog.String("status", status.String()))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if user.Status == status {
			// Already in the requested state.
			return nil
		}

		user.Status = status

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user status")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute status change transaction", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to execute status change transaction")
	}

	return nil
}
