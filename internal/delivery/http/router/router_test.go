package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursebridge/config"
	"coursebridge/internal/delivery/http/middleware"
	"coursebridge/internal/delivery/http/router/handler"
	"coursebridge/internal/delivery/http/validator"
	"coursebridge/internal/domain/entity"
	"coursebridge/internal/domain/repository"
	"coursebridge/internal/domain/service"
	mockRepo "coursebridge/internal/mocks/repository"
	mockSvc "coursebridge/internal/mocks/service"
	"coursebridge/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// routerFixtures wires the full HTTP surface over mocked persistence, so the
// route gates and the error envelope can be exercised end to end.
type routerFixtures struct {
	echo        *echo.Echo
	tokenSvc    *mockSvc.MockTokenService
	userRepo    *mockRepo.MockUserRepository
	requestRepo *mockRepo.MockCourseRequestRepository
	courseRepo  *mockRepo.MockCourseRepository
}

func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}

	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	requestRepo := mockRepo.NewMockCourseRequestRepository(t)
	courseRepo := mockRepo.NewMockCourseRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	fileStore := mockSvc.NewMockFileStore(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	authUsecase := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenSvc,
		Config:           cfg,
		Logger:           logger,
	})
	userUsecase := impl.NewUserService(impl.UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		RoleRepo:  roleRepo,
		Logger:    logger,
	})
	requestUsecase := impl.NewCourseRequestService(impl.CourseRequestServiceParams{
		TxManager:      txManager,
		RequestRepo:    requestRepo,
		FileStore:      fileStore,
		EventPublisher: eventPublisher,
		Config:         cfg,
		Logger:         logger,
	})
	courseUsecase := impl.NewCourseService(impl.CourseServiceParams{
		TxManager:      txManager,
		CourseRepo:     courseRepo,
		EventPublisher: eventPublisher,
		Logger:         logger,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		Cfg:                  cfg,
		HealthHandler:        handler.NewHealthHandler(cfg, logger, nil),
		AuthHandler:          handler.NewAuthHandler(authUsecase, logger),
		UserHandler:          handler.NewUserHandler(userUsecase, logger),
		CourseRequestHandler: handler.NewCourseRequestHandler(requestUsecase, logger),
		CourseHandler:        handler.NewCourseHandler(courseUsecase, logger),
		AuthMiddleware:       middleware.NewAuthMiddleware(tokenSvc, userRepo),
	})
	r.RegisterRoutes(e)

	return routerFixtures{
		echo:        e,
		tokenSvc:    tokenSvc,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		courseRepo:  courseRepo,
	}
}

// loginAs wires the token and user lookups an authenticated request performs.
func (fx routerFixtures) loginAs(token string, roles ...entity.RoleName) *entity.User {
	user := &entity.User{
		ID:       uuid.New(),
		Username: "caller",
		Email:    "caller@example.com",
		Status:   entity.UserStatusActive,
	}
	for _, name := range roles {
		user.Roles = append(user.Roles, entity.Role{ID: uuid.New(), Name: name})
	}

	fx.tokenSvc.EXPECT().
		ValidateAccessToken(token).
		Return(&service.Claims{UserID: user.ID, Type: "access"}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	return user
}

func (fx routerFixtures) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestRouter_MissingTokenIsUnauthorized(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.do(http.MethodGet, "/api/v1/sales/requests", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", errorCode(t, rec))
}

func TestRouter_SalesUserListsOwnRequests(t *testing.T) {
	fx := createTestRouter(t)

	user := fx.loginAs("sales-token", entity.RoleSales)

	fx.requestRepo.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(filter repository.CourseRequestListFilter) bool {
			return filter.SalesUserID != nil && *filter.SalesUserID == user.ID
		})).
		Return([]*entity.CourseRequest{}, int64(0), nil)

	rec := fx.do(http.MethodGet, "/api/v1/sales/requests", "sales-token")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_SalesUserCannotManageUsers(t *testing.T) {
	fx := createTestRouter(t)

	fx.loginAs("sales-token", entity.RoleSales)

	rec := fx.do(http.MethodGet, "/api/v1/users", "sales-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "INSUFFICIENT_PERMISSIONS", errorCode(t, rec))
}

func TestRouter_AdminPassesEveryGate(t *testing.T) {
	fx := createTestRouter(t)

	fx.loginAs("admin-token", entity.RoleAdmin)

	fx.userRepo.EXPECT().
		List(mock.Anything, mock.AnythingOfType("repository.UserListFilter")).
		Return([]*entity.User{}, int64(0), nil)

	rec := fx.do(http.MethodGet, "/api/v1/users", "admin-token")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_TrainerReadsCourseCatalog(t *testing.T) {
	fx := createTestRouter(t)

	fx.loginAs("trainer-token", entity.RoleTrainer)

	fx.courseRepo.EXPECT().
		List(mock.Anything, mock.AnythingOfType("repository.CourseListFilter")).
		Return([]*entity.Course{}, int64(0), nil)

	rec := fx.do(http.MethodGet, "/api/v1/courses", "trainer-token")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_TrainerCannotAuthorContent(t *testing.T) {
	fx := createTestRouter(t)

	fx.loginAs("trainer-token", entity.RoleTrainer)

	rec := fx.do(http.MethodDelete, "/api/v1/courses/"+uuid.NewString(), "trainer-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "INSUFFICIENT_PERMISSIONS", errorCode(t, rec))
}

func TestRouter_InactiveAccountDeniedEverywhere(t *testing.T) {
	fx := createTestRouter(t)

	user := &entity.User{
		ID:     uuid.New(),
		Status: entity.UserStatusInactive,
		Roles:  []entity.Role{{ID: uuid.New(), Name: entity.RoleAdmin}},
	}
	fx.tokenSvc.EXPECT().
		ValidateAccessToken("stale-token").
		Return(&service.Claims{UserID: user.ID, Type: "access"}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	rec := fx.do(http.MethodGet, "/api/v1/users", "stale-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ACCOUNT_INACTIVE", errorCode(t, rec))
}
