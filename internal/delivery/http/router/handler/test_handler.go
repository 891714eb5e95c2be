package handler

import (
	"net/http"

	"coursebridge/internal/delivery/http/middleware"
	"coursebridge/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// TestHandler serves the develop-only endpoints used to probe the
// middleware chain. The router mounts it only when testRoutes.enabled
// is set in the configuration.
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance.
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// WhoAmI echoes the identity the auth middleware resolved from the
// bearer token.
func (h *TestHandler) WhoAmI(c echo.Context) error {
	userID, _ := middleware.GetUserID(c)
	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id": userID,
		"roles":   roles.ToStrings(),
		"status":  "authenticated",
	})
}

// Ping confirms the public middleware chain without authentication.
func (h *TestHandler) Ping(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{"status": "public"})
}
