package handler

import (
	"log/slog"
	"net/http"

	"stockroom/internal/delivery/http/response"
	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReportHandler holds dependencies for report-related handlers.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendReportRequest represents the request body for an explicit-recipient
// report dispatch.
type SendReportRequest struct {
	Recipients    []string `json:"recipients" validate:"required,min=1,dive,email"`
	Subject       string   `json:"subject" validate:"omitempty,max=255"`
	CustomMessage string   `json:"customMessage"`
}

// SendToAllRequest represents the request body for dispatching to every
// active merchant.
type SendToAllRequest struct {
	Subject       string `json:"subject" validate:"omitempty,max=255"`
	CustomMessage string `json:"customMessage"`
}

// Snapshot handles the inventory snapshot read. CSV is served as plain
// text, everything else as the structured JSON rows.
func (h *ReportHandler) Snapshot(c echo.Context) error {
	format := usecase.ReportFormat(c.QueryParam("format"))

	snapshot, err := h.uc.GetSnapshot(c.Request().Context(), format)
	if err != nil {
		return handleAppError(c, err)
	}

	if snapshot.Format == usecase.ReportFormatCSV {
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="inventory-report.csv"`)

		return c.Blob(http.StatusOK, "text/csv", []byte(snapshot.CSV))
	}

	return response.Success(c, http.StatusOK, snapshot.Rows, "Inventory report retrieved successfully")
}

// Stats handles the reporting readiness counters.
func (h *ReportHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Report stats retrieved successfully")
}

// SendInventory handles dispatching the inventory report to an explicit
// recipient list.
func (h *ReportHandler) SendInventory(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req SendReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.uc.SendReport(c.Request().Context(), usecase.SendReportInput{
		Recipients:    req.Recipients,
		Subject:       req.Subject,
		CustomMessage: req.CustomMessage,
	}, userID)
	if err != nil {
		return handleAppError(c, err)
	}

	h.logger.Info("inventory report dispatched",
		slog.String("job_id", result.JobID),
		slog.Int("sent", result.TotalSent),
		slog.Int("failed", result.TotalFailed))

	return response.Success(c, http.StatusOK, result, "Inventory report sent")
}

// SendToAllMerchants handles dispatching the inventory report to every
// active merchant.
func (h *ReportHandler) SendToAllMerchants(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req SendToAllRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.uc.SendToAllMerchants(c.Request().Context(), req.Subject, req.CustomMessage, userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Inventory report sent to all active merchants")
}
