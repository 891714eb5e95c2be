// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	domainerrors "coursebridge/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Pagination bounds for list endpoints.
const (
	defaultPage    = 1
	defaultPerPage = 20
	maxPerPage     = 100
)

// pathUUID parses a UUID path parameter. A malformed value is a client
// mistake, so it maps to the validation error rather than a 500.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " path parameter")
	}

	return id, nil
}

// queryPagination reads the page and per_page query parameters, applying
// the defaults and the per-page ceiling. Unparseable values fall back to
// the defaults instead of failing the request.
func queryPagination(c echo.Context) (page, perPage int) {
	page = defaultPage
	if raw := c.QueryParam("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}

	perPage = defaultPerPage
	if raw := c.QueryParam("per_page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			perPage = parsed
		}
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	return page, perPage
}
