package impl

import (
	"context"
	"testing"

	"coursebridge/internal/domain/entity"
	domainerrors "coursebridge/internal/domain/errors"
	"coursebridge/internal/domain/repository"
	mockRepo "coursebridge/internal/mocks/repository"
	"coursebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	roleRepo  *mockRepo.MockRoleRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		RoleRepo:  roleRepo,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		roleRepo:  roleRepo,
	}
}

func TestUserService_ListUsers_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	trainer := entity.RoleTrainer

	fx.userRepo.EXPECT().
		List(ctx, repository.UserListFilter{Role: &trainer, Page: 1, PerPage: 20}).
		Return([]*entity.User{newTestUser(entity.RoleTrainer)}, int64(1), nil)

	output, err := fx.service.ListUsers(ctx, &usecase.ListUsersInput{
		Role:    "trainer",
		Page:    1,
		PerPage: 20,
	})

	require.NoError(t, err)
	assert.Len(t, output.Users, 1)
	assert.Equal(t, int64(1), output.Total)
}

func TestUserService_ListUsers_InvalidRoleFilter(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.ListUsers(context.Background(), &usecase.ListUsersInput{
		Role: "superuser",
		Page: 1,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_ListUsers_InvalidStatusFilter(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.ListUsers(context.Background(), &usecase.ListUsersInput{
		Status: "banned",
		Page:   1,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_AssignRoles_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := newTestUser(entity.RoleStudent)
	trainerRole := entity.Role{ID: uuid.New(), Name: entity.RoleTrainer}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RoleRepo().Return(mockRoleRepo)

			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockRoleRepo.EXPECT().
				FindByNames(ctx, []entity.RoleName{entity.RoleTrainer}).
				Return([]entity.Role{trainerRole}, nil)
			mockUserRepo.EXPECT().
				ReplaceRoles(ctx, user.ID, []entity.Role{trainerRole}).
				Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.AssignRoles(ctx, user.ID, &usecase.AssignRolesInput{Roles: []string{"trainer"}})

	require.NoError(t, err)
	assert.True(t, updated.HasRole(entity.RoleTrainer))
	assert.False(t, updated.HasRole(entity.RoleStudent))
}

func TestUserService_AssignRoles_UnknownRole(t *testing.T) {
	fx := createTestUserService(t)

	updated, err := fx.service.AssignRoles(context.Background(), uuid.New(), &usecase.AssignRolesInput{
		Roles: []string{"superuser"},
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_AssignRoles_EmptyRoles(t *testing.T) {
	fx := createTestUserService(t)

	updated, err := fx.service.AssignRoles(context.Background(), uuid.New(), &usecase.AssignRolesInput{})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_DeactivateUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := newTestUser(entity.RoleTrainer)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(updated *entity.User) bool {
					return updated.Status == entity.UserStatusInactive
				})).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeactivateUser(ctx, user.ID)

	require.NoError(t, err)
}

func TestUserService_ActivateUser_AlreadyActive(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := newTestUser(entity.RoleTrainer)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			// No Update expectation: an account already in the requested
			// state is a no-op.
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			return fn(mockFactory)
		})

	err := fx.service.ActivateUser(ctx, user.ID)

	require.NoError(t, err)
}
