package middleware

import (
	"strings"

	"coursebridge/internal/domain/entity"
	domainerrors "coursebridge/internal/domain/errors"
	"coursebridge/internal/domain/repository"
	"coursebridge/internal/domain/service"
	"coursebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Echo context keys for the authenticated identity.
const (
	ContextKeyUserID = "userID"
	ContextKeyRoles  = "roles"
	ContextKeyUser   = "user"
)

// AuthMiddleware validates access tokens and gates routes by role. The
// account status check always runs before any role check, so a deactivated
// admin is denied with ACCOUNT_INACTIVE rather than passing a role gate.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer access token, resolves the account with
// its roles and stores the identity on the request. Errors surface through
// the central error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrTokenInvalid, "authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return errors.Wrap(domainerrors.ErrTokenInvalid, "authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return errors.Wrap(err, "access token rejected")
		}

		// Resolve the persisted account. Roles come from the database, not
		// the token, so role revocations apply to tokens already issued.
		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "token subject no longer exists")
			}

			return errors.Wrap(err, "failed to resolve token subject")
		}

		// Status precedes every role check.
		if !user.IsActive() {
			return errors.Wrap(domainerrors.ErrAccountInactive, "account is deactivated")
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyRoles, entity.RoleNamesFromStrings(user.RoleNames()))
		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// RequireRole is a middleware factory that admits callers holding any of the
// given roles. The admin role satisfies every gate. It must be used AFTER
// the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(required ...entity.RoleName) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return errors.Wrap(domainerrors.ErrInsufficientPermissions, "role information missing from context")
			}

			if roles.Contains(entity.RoleAdmin) {
				return next(c)
			}

			for _, role := range required {
				if roles.Contains(role) {
					return next(c)
				}
			}

			return errors.Wrapf(domainerrors.ErrInsufficientPermissions, "requires one of roles %v", required)
		}
	}
}

// GetUserID returns the authenticated user's ID from the echo context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the authenticated user's roles from the echo context.
func GetRoles(c echo.Context) (entity.RoleNames, bool) {
	roles, ok := c.Get(ContextKeyRoles).(entity.RoleNames)

	return roles, ok
}

// GetUser returns the resolved user entity from the echo context.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*entity.User)

	return user, ok
}

// Actor builds the usecase actor for the authenticated caller. Requests that
// reach a handler without passing Authenticate are rejected as unauthorized.
func Actor(c echo.Context) (usecase.Actor, error) {
	userID, ok := GetUserID(c)
	if !ok {
		return usecase.Actor{}, errors.Wrap(domainerrors.ErrTokenInvalid, "authenticated identity missing from context")
	}

	roles, _ := GetRoles(c)

	return usecase.Actor{UserID: userID, Roles: roles}, nil
}
