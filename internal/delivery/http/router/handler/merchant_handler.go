package handler

import (
	"log/slog"
	"net/http"

	"stockroom/internal/delivery/http/response"
	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MerchantHandler holds dependencies for report recipient handlers.
type MerchantHandler struct {
	uc     usecase.MerchantUsecase
	logger *slog.Logger
}

// NewMerchantHandler is the constructor for MerchantHandler, injected by Fx.
func NewMerchantHandler(uc usecase.MerchantUsecase, logger *slog.Logger) *MerchantHandler {
	return &MerchantHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateMerchantRequest represents the request body for registering a merchant.
type CreateMerchantRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	IsActive *bool  `json:"isActive"`
}

// UpdateMerchantRequest represents the request body for a partial merchant update.
type UpdateMerchantRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Email    *string `json:"email" validate:"omitempty,email"`
	IsActive *bool   `json:"isActive"`
}

// BulkImportRequest represents the request body for a free-text email import.
type BulkImportRequest struct {
	Emails      string `json:"emails" validate:"required"`
	DefaultName string `json:"defaultName" validate:"omitempty,max=255"`
}

// List handles the paginated merchant listing.
func (h *MerchantHandler) List(c echo.Context) error {
	input := usecase.ListMerchantsInput{
		Page:   queryInt(c, "page", 0),
		Limit:  queryInt(c, "limit", 0),
		Search: c.QueryParam("search"),
	}

	switch c.QueryParam("status") {
	case "active":
		active := true
		input.Active = &active
	case "inactive":
		active := false
		input.Active = &active
	}

	merchants, pagination, err := h.uc.ListMerchants(c.Request().Context(), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listResponse{
		Items:      merchants,
		Pagination: pagination,
	}, "Merchants retrieved successfully")
}

// Stats handles the merchant aggregate counters.
func (h *MerchantHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Merchant stats retrieved successfully")
}

// ActiveEmails handles listing the addresses of all active merchants.
func (h *MerchantHandler) ActiveEmails(c echo.Context) error {
	emails, err := h.uc.ActiveEmails(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"emails": emails,
		"count":  len(emails),
	}, "Active merchant emails retrieved successfully")
}

// Get handles a single merchant read.
func (h *MerchantHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	merchant, err := h.uc.GetMerchant(c.Request().Context(), id)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, merchant, "Merchant retrieved successfully")
}

// Create handles registering a single merchant.
func (h *MerchantHandler) Create(c echo.Context) error {
	var req CreateMerchantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merchant input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	merchant, err := h.uc.CreateMerchant(c.Request().Context(), usecase.CreateMerchantInput{
		Name:   req.Name,
		Email:  req.Email,
		Active: req.IsActive,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, merchant, "Merchant created successfully")
}

// BulkImport handles registering merchants from a free-text email blob.
func (h *MerchantHandler) BulkImport(c echo.Context) error {
	var req BulkImportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk import input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.uc.BulkImport(c.Request().Context(), req.Emails, req.DefaultName)
	if err != nil {
		return handleAppError(c, err)
	}

	h.logger.Info("merchant bulk import finished",
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped))

	return response.Success(c, http.StatusCreated, result, "Bulk import finished")
}

// Update handles a partial merchant update.
func (h *MerchantHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateMerchantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merchant input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	merchant, err := h.uc.UpdateMerchant(c.Request().Context(), id, usecase.UpdateMerchantInput{
		Name:   req.Name,
		Email:  req.Email,
		Active: req.IsActive,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, merchant, "Merchant updated successfully")
}

// Delete handles removing a merchant.
func (h *MerchantHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteMerchant(c.Request().Context(), id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Merchant deleted"}, "Merchant deleted successfully")
}
