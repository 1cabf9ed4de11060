package handler

import (
	"log/slog"
	"net/http"

	"stockroom/internal/delivery/http/response"
	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
)

// InventoryHandler holds dependencies for inventory-related handlers.
type InventoryHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateItemRequest represents the request body for creating an inventory item.
type CreateItemRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description string   `json:"description"`
	Quantity    int      `json:"quantity" validate:"gte=0"`
	UnitPrice   *float64 `json:"unitPrice" validate:"omitempty,gte=0"`
	SKU         *string  `json:"sku" validate:"omitempty,max=100"`
}

// UpdateItemRequest represents the request body for a partial item update.
type UpdateItemRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=255"`
	Description *string  `json:"description"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
	UnitPrice   *float64 `json:"unitPrice" validate:"omitempty,gte=0"`
	SKU         *string  `json:"sku" validate:"omitempty,max=100"`
}

// UpdateQuantityRequest represents the request body for an absolute quantity set.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// List handles the paginated inventory listing.
func (h *InventoryHandler) List(c echo.Context) error {
	input := usecase.ListItemsInput{
		Page:      queryInt(c, "page", 0),
		Limit:     queryInt(c, "limit", 0),
		Search:    c.QueryParam("search"),
		LowStock:  c.QueryParam("lowStock") == "true",
		SortBy:    c.QueryParam("sort"),
		SortOrder: c.QueryParam("order"),
	}

	items, pagination, err := h.uc.ListItems(c.Request().Context(), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listResponse{
		Items:      items,
		Pagination: pagination,
	}, "Inventory retrieved successfully")
}

// Stats handles the inventory aggregate counters.
func (h *InventoryHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Inventory stats retrieved successfully")
}

// LowStock handles the low-stock listing, with an optional threshold override.
func (h *InventoryHandler) LowStock(c echo.Context) error {
	threshold := queryInt(c, "threshold", 0)

	items, err := h.uc.LowStockItems(c.Request().Context(), threshold)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Low stock items retrieved successfully")
}

// Get handles a single item read.
func (h *InventoryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item, err := h.uc.GetItem(c.Request().Context(), id)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Item retrieved successfully")
}

// Create handles creating an inventory item.
func (h *InventoryHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.CreateItem(c.Request().Context(), usecase.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		SKU:         req.SKU,
	}, userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Item created successfully")
}

// Update handles a partial item update.
func (h *InventoryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.UpdateItem(c.Request().Context(), id, usecase.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		SKU:         req.SKU,
	}, userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Item updated successfully")
}

// UpdateQuantity handles an absolute quantity set.
func (h *InventoryHandler) UpdateQuantity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.UpdateQuantity(c.Request().Context(), id, req.Quantity, userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Quantity updated successfully")
}

// Delete handles removing an item.
func (h *InventoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteItem(c.Request().Context(), id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Item deleted"}, "Item deleted successfully")
}

// Search handles the quick typeahead lookup.
func (h *InventoryHandler) Search(c echo.Context) error {
	term := c.QueryParam("q")
	limit := queryInt(c, "limit", 0)

	items, err := h.uc.SearchItems(c.Request().Context(), term, limit)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Search results retrieved successfully")
}
