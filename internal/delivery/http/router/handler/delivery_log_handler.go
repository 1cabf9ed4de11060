package handler

import (
	"log/slog"
	"net/http"
	"time"

	"stockroom/internal/delivery/http/response"
	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DeliveryLogHandler holds dependencies for delivery history handlers.
type DeliveryLogHandler struct {
	uc     usecase.DispatchUsecase
	logger *slog.Logger
}

// NewDeliveryLogHandler is the constructor for DeliveryLogHandler, injected by Fx.
func NewDeliveryLogHandler(uc usecase.DispatchUsecase, logger *slog.Logger) *DeliveryLogHandler {
	return &DeliveryLogHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the paginated delivery history listing with status and
// date-range filters.
func (h *DeliveryLogHandler) List(c echo.Context) error {
	input := usecase.ListAttemptsInput{
		Page:   queryInt(c, "page", 0),
		Limit:  queryInt(c, "limit", 0),
		Status: c.QueryParam("status"),
	}

	var err error
	if input.DateFrom, err = queryDate(c, "dateFrom"); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dateFrom parameter")
	}
	if input.DateTo, err = queryDate(c, "dateTo"); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dateTo parameter")
	}

	attempts, pagination, err := h.uc.ListAttempts(c.Request().Context(), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listResponse{
		Items:      attempts,
		Pagination: pagination,
	}, "Delivery logs retrieved successfully")
}

// Get handles a single delivery attempt read, including the full content.
func (h *DeliveryLogHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	attempt, err := h.uc.GetAttempt(c.Request().Context(), id)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, attempt, "Delivery log retrieved successfully")
}

// queryDate parses an optional RFC 3339 or date-only query parameter.
func queryDate(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}

	return nil, echo.ErrBadRequest
}
