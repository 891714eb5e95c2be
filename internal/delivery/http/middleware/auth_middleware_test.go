package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"coursebridge/internal/domain/entity"
	domainerrors "coursebridge/internal/domain/errors"
	"coursebridge/internal/domain/repository"
	"coursebridge/internal/domain/service"
	mockRepo "coursebridge/internal/mocks/repository"
	mockSvc "coursebridge/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	userRepo   *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, userRepo),
		tokenSvc:   tokenSvc,
		userRepo:   userRepo,
	}
}

func newActiveUser(roles ...entity.RoleName) *entity.User {
	user := &entity.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Status:   entity.UserStatusActive,
	}
	for _, name := range roles {
		user.Roles = append(user.Roles, entity.Role{ID: uuid.New(), Name: name})
	}

	return user
}

// invoke runs the handler chain against a request carrying the given
// authorization header and returns the chain error.
func invoke(authHeader string, handler echo.HandlerFunc) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return handler(e.NewContext(req, rec))
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	err := invoke("", fx.middleware.Authenticate(okHandler))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	err := invoke("Basic dXNlcjpwYXNz", fx.middleware.Authenticate(okHandler))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().
		ValidateAccessToken("garbage").
		Return(nil, errors.Wrap(domainerrors.ErrTokenInvalid, "bad signature"))

	err := invoke("Bearer garbage", fx.middleware.Authenticate(okHandler))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthenticate_DeletedAccount(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	fx.tokenSvc.EXPECT().
		ValidateAccessToken("token").
		Return(&service.Claims{UserID: userID, Type: "access"}, nil)
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	err := invoke("Bearer token", fx.middleware.Authenticate(okHandler))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthenticate_SetsIdentityOnContext(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := newActiveUser(entity.RoleSales)
	fx.tokenSvc.EXPECT().
		ValidateAccessToken("token").
		Return(&service.Claims{UserID: user.ID, Type: "access"}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	err := invoke("Bearer token", fx.middleware.Authenticate(func(c echo.Context) error {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, user.ID, userID)

		roles, ok := GetRoles(c)
		require.True(t, ok)
		assert.True(t, roles.Contains(entity.RoleSales))

		actor, err := Actor(c)
		require.NoError(t, err)
		assert.Equal(t, user.ID, actor.UserID)

		return c.NoContent(http.StatusOK)
	}))

	require.NoError(t, err)
}

func TestAuthenticate_InactiveAccountDeniedBeforeRoleCheck(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	// Even an admin is denied once deactivated, and the denial carries the
	// account status, not a permission error.
	user := newActiveUser(entity.RoleAdmin)
	user.Status = entity.UserStatusInactive

	fx.tokenSvc.EXPECT().
		ValidateAccessToken("token").
		Return(&service.Claims{UserID: user.ID, Type: "access"}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	chain := fx.middleware.Authenticate(fx.middleware.RequireRole(entity.RoleTrainer)(okHandler))

	err := invoke("Bearer token", chain)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
	assert.NotErrorIs(t, err, domainerrors.ErrInsufficientPermissions)
}

func TestRequireRole_AdminSatisfiesEveryGate(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := newActiveUser(entity.RoleAdmin)
	fx.tokenSvc.EXPECT().
		ValidateAccessToken("token").
		Return(&service.Claims{UserID: user.ID, Type: "access"}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	chain := fx.middleware.Authenticate(fx.middleware.RequireRole(entity.RoleTrainer)(okHandler))

	require.NoError(t, invoke("Bearer token", chain))
}

func TestRequireRole_MatchingRoleAdmitted(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := newActiveUser(entity.RoleTrainer)
	fx.tokenSvc.EXPECT().
		ValidateAccessToken("token").
		Return(&service.Claims{UserID: user.ID, Type: "access"}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	chain := fx.middleware.Authenticate(fx.middleware.RequireRole(entity.RoleTrainer, entity.RoleCourseManager)(okHandler))

	require.NoError(t, invoke("Bearer token", chain))
}

func TestRequireRole_MissingRoleDenied(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := newActiveUser(entity.RoleSales)
	fx.tokenSvc.EXPECT().
		ValidateAccessToken("token").
		Return(&service.Claims{UserID: user.ID, Type: "access"}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	chain := fx.middleware.Authenticate(fx.middleware.RequireRole(entity.RoleTrainer)(okHandler))

	err := invoke("Bearer token", chain)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientPermissions)
}

func TestRequireRole_WithoutAuthenticate(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	err := invoke("", fx.middleware.RequireRole(entity.RoleTrainer)(okHandler))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientPermissions)
}
