package handler

import (
	"log/slog"
	"net/http"

	"coursebridge/internal/delivery/http/response"
	"coursebridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the admin user management handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type assignRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1"`
}

// ListUsers returns one page of accounts, optionally filtered by role
// and status.
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, perPage := queryPagination(c)

	output, err := h.uc.ListUsers(c.Request().Context(), &usecase.ListUsersInput{
		Role:    c.QueryParam("role"),
		Status:  c.QueryParam("status"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.PaginatedData{
		Items:   newUserViews(output.Users),
		Total:   output.Total,
		Page:    output.Page,
		PerPage: output.PerPage,
	})
}

// GetUser returns a single account by ID.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}

// UpdateUser applies partial changes to any account.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}

// AssignRoles replaces an account's role set.
func (h *UserHandler) AssignRoles(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req assignRolesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid roles input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.AssignRoles(c.Request().Context(), userID, &usecase.AssignRolesInput{
		Roles: req.Roles,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}

// ActivateUser flips an account back to active.
func (h *UserHandler) ActivateUser(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ActivateUser(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User activated"})
}

// DeactivateUser flips an account to inactive. Deactivated accounts fail
// the access gate on their next request; there is no hard delete.
func (h *UserHandler) DeactivateUser(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeactivateUser(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deactivated"})
}
