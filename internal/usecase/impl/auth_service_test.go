package impl

import (
	"context"
	"testing"
	"time"

	"coursebridge/internal/domain/entity"
	domainerrors "coursebridge/internal/domain/errors"
	"coursebridge/internal/domain/repository"
	"coursebridge/internal/domain/service"
	mockRepo "coursebridge/internal/mocks/repository"
	mockSvc "coursebridge/internal/mocks/service"
	"coursebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T, maxActiveSessions int) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})

	return authServiceFixtures{
		service:          service,
		txManager:        txManager,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "Password123!",
		FirstName: "Alice",
		Roles:     []string{"sales"},
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	salesRole := entity.Role{ID: uuid.New(), Name: entity.RoleSales}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RoleRepo().Return(mockRoleRepo)

			mockRoleRepo.EXPECT().
				FindByNames(ctx, []entity.RoleName{entity.RoleSales}).
				Return([]entity.Role{salesRole}, nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockUserRepo.EXPECT().
				ReplaceRoles(ctx, mock.AnythingOfType("uuid.UUID"), []entity.Role{salesRole}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, entity.UserStatusActive, output.User.Status)
	assert.True(t, output.User.HasRole(entity.RoleSales))
}

func TestAuthService_Register_UnknownRole(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123!",
		Roles:    []string{"superuser"},
	}

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Register_DuplicateUser(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123!",
		Roles:    []string{"sales"},
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RoleRepo().Return(mockRoleRepo)

			mockRoleRepo.EXPECT().
				FindByNames(ctx, []entity.RoleName{entity.RoleSales}).
				Return([]entity.Role{{ID: uuid.New(), Name: entity.RoleSales}}, nil)

			// The unique constraint on username/email surfaces as the
			// conflict error and rolls the transaction back.
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(domainerrors.ErrUserAlreadyExists)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func expectLoginUserLookup(t *testing.T, fx authServiceFixtures, ctx context.Context, login string, user *entity.User, findErr error) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByUsername(ctx, login).Return(user, findErr)
			if findErr != nil {
				mockUserRepo.EXPECT().FindByEmail(ctx, login).Return(user, findErr)
			}

			return fn(mockFactory)
		}).
		Once()
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	user := newTestUser(entity.RoleSales)
	input := &usecase.LoginInput{Login: "alice", Password: "Password123!"}

	expectLoginUserLookup(t, fx, ctx, input.Login, user, nil)

	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"sales"}).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, user.ID, token.UserID)
			assert.Equal(t, "refresh_token_hash", token.TokenHash)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	user := newTestUser(entity.RoleSales)
	input := &usecase.LoginInput{Login: "alice", Password: "wrong"}

	expectLoginUserLookup(t, fx, ctx, input.Login, user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	input := &usecase.LoginInput{Login: "nobody", Password: "Password123!"}

	expectLoginUserLookup(t, fx, ctx, input.Login, nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// Unknown accounts are indistinguishable from wrong passwords.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	user := newTestUser(entity.RoleAdmin)
	user.Status = entity.UserStatusInactive
	input := &usecase.LoginInput{Login: "alice", Password: "Password123!"}

	expectLoginUserLookup(t, fx, ctx, input.Login, user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
}

func TestAuthService_Login_SessionLimitExceeded(t *testing.T) {
	fx := createTestAuthService(t, 1)

	ctx := context.Background()
	user := newTestUser(entity.RoleSales)
	input := &usecase.LoginInput{Login: "alice", Password: "Password123!"}

	expectLoginUserLookup(t, fx, ctx, input.Login, user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"sales"}).
		Return("access_token", "refresh_token", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockUserRepo.EXPECT().AcquireSessionMutex(ctx, user.ID).Return(nil)
			mockRefreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, user.ID).Return(1, nil)

			return fn(mockFactory)
		}).
		Once()

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	user := newTestUser(entity.RoleSales)
	input := &usecase.RefreshTokenInput{RefreshToken: "refresh_token"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(&service.Claims{UserID: user.ID, Type: "refresh"}, nil)

	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("refresh_token_hash")
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"sales"}).
		Return("new_access_token", "unused_refresh", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, "refresh_token_hash").
				Return(&entity.RefreshToken{ID: uuid.New(), UserID: user.ID}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshToken(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "new_access_token", output.AccessToken)
}

func TestAuthService_RefreshToken_SessionRevoked(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshTokenInput{RefreshToken: "refresh_token"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("refresh_token_hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			// The token still verifies cryptographically, but the session
			// row was deleted by a logout.
			mockRefreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, "refresh_token_hash").
				Return(nil, repository.ErrRefreshTokenNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshToken(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	input := &usecase.RefreshTokenInput{RefreshToken: "garbage"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(nil, errors.Wrap(domainerrors.ErrTokenInvalid, "bad signature"))

	output, err := fx.service.RefreshToken(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	input := &usecase.LogoutInput{RefreshToken: "refresh_token"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("refresh_token_hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh_token_hash").Return(nil)

	err := fx.service.Logout(ctx, input)

	require.NoError(t, err)
}

func TestAuthService_RevokeSession_WrongOwner(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	callerID := uuid.New()
	tokenID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
			mockRefreshRepo.EXPECT().
				FindRefreshTokenByID(ctx, tokenID).
				Return(&entity.RefreshToken{ID: tokenID, UserID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	err := fx.service.RevokeSession(ctx, callerID, tokenID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	user := newTestUser(entity.RoleSales)
	input := &usecase.ChangePasswordInput{OldPassword: "wrong", NewPassword: "NewPassword123!"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check(input.OldPassword, user.PasswordHash).Return(false)

	err := fx.service.ChangePassword(ctx, user.ID, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
