// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	"stockroom/internal/delivery/http/middleware"
	"stockroom/internal/delivery/http/response"
	domainerrors "stockroom/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// listResponse wraps a page of records with its pagination envelope.
type listResponse struct {
	Items      any `json:"items"`
	Pagination any `json:"pagination"`
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.BadRequest(c, "INVALID_INPUT", "Invalid id parameter")
	}

	return id, nil
}

// currentUserID reads the principal id placed on the context by the auth
// middleware.
func currentUserID(c echo.Context) (int64, error) {
	userID, ok := c.Get(middleware.ContextUserID).(int64)
	if !ok || userID <= 0 {
		return 0, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// queryInt parses an optional integer query parameter, returning the
// fallback when absent or malformed.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

// handleAppError renders domain errors through the unified envelope and
// defers everything else to the error middleware.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
