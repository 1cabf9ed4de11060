package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stockroom/internal/delivery/http/middleware"
	"stockroom/internal/delivery/http/validator"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	mocksusecase "stockroom/internal/mocks/usecase"
	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an Echo context with the validator installed and an
// authenticated principal on it.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, int64(7))
	c.Set(middleware.ContextRole, "Manager")

	return c, rec
}

func TestInventoryHandler_List(t *testing.T) {
	uc := mocksusecase.NewMockInventoryUsecase(t)
	h := NewInventoryHandler(uc, testLogger())

	items := []*entity.InventoryItem{{ID: 1, Name: "Widget", Quantity: 3}}
	uc.EXPECT().
		ListItems(mock.Anything, usecase.ListItemsInput{
			Page:      2,
			Limit:     5,
			Search:    "wid",
			LowStock:  true,
			SortBy:    "name",
			SortOrder: "asc",
		}).
		Return(items, usecase.NewPagination(2, 5, 11), nil)

	c, rec := newTestContext(t, http.MethodGet,
		"/inventory?page=2&limit=5&search=wid&lowStock=true&sort=name&order=asc", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Widget"`)
	assert.Contains(t, rec.Body.String(), `"totalPages":3`)
}

func TestInventoryHandler_Create(t *testing.T) {
	uc := mocksusecase.NewMockInventoryUsecase(t)
	h := NewInventoryHandler(uc, testLogger())

	uc.EXPECT().
		CreateItem(mock.Anything, mock.MatchedBy(func(input usecase.CreateItemInput) bool {
			return input.Name == "Widget" && input.Quantity == 4
		}), int64(7)).
		Return(&entity.InventoryItem{ID: 10, Name: "Widget", Quantity: 4}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/inventory",
		`{"name":"Widget","quantity":4}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":10`)
}

func TestInventoryHandler_Create_ValidationRejected(t *testing.T) {
	uc := mocksusecase.NewMockInventoryUsecase(t)
	h := NewInventoryHandler(uc, testLogger())

	c, _ := newTestContext(t, http.MethodPost, "/inventory", `{"quantity":4}`)

	err := h.Create(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestInventoryHandler_Create_Conflict(t *testing.T) {
	uc := mocksusecase.NewMockInventoryUsecase(t)
	h := NewInventoryHandler(uc, testLogger())

	uc.EXPECT().
		CreateItem(mock.Anything, mock.Anything, int64(7)).
		Return(nil, domainerrors.ErrItemNameExists)

	c, rec := newTestContext(t, http.MethodPost, "/inventory",
		`{"name":"Widget","quantity":4}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestInventoryHandler_Get_NotFound(t *testing.T) {
	uc := mocksusecase.NewMockInventoryUsecase(t)
	h := NewInventoryHandler(uc, testLogger())

	uc.EXPECT().
		GetItem(mock.Anything, int64(99)).
		Return(nil, domainerrors.ErrItemNotFound)

	c, rec := newTestContext(t, http.MethodGet, "/inventory/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInventoryHandler_Get_BadID(t *testing.T) {
	uc := mocksusecase.NewMockInventoryUsecase(t)
	h := NewInventoryHandler(uc, testLogger())

	c, rec := newTestContext(t, http.MethodGet, "/inventory/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInventoryHandler_UpdateQuantity(t *testing.T) {
	uc := mocksusecase.NewMockInventoryUsecase(t)
	h := NewInventoryHandler(uc, testLogger())

	uc.EXPECT().
		UpdateQuantity(mock.Anything, int64(3), 25, int64(7)).
		Return(&entity.InventoryItem{ID: 3, Name: "Widget", Quantity: 25}, nil)

	c, rec := newTestContext(t, http.MethodPatch, "/inventory/3/quantity",
		`{"quantity":25}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.UpdateQuantity(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quantity":25`)
}

func TestInventoryHandler_LowStock_ThresholdParam(t *testing.T) {
	uc := mocksusecase.NewMockInventoryUsecase(t)
	h := NewInventoryHandler(uc, testLogger())

	uc.EXPECT().
		LowStockItems(mock.Anything, 5).
		Return([]*entity.InventoryItem{}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/inventory/low-stock?threshold=5", "")

	require.NoError(t, h.LowStock(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInventoryHandler_Search(t *testing.T) {
	uc := mocksusecase.NewMockInventoryUsecase(t)
	h := NewInventoryHandler(uc, testLogger())

	uc.EXPECT().
		SearchItems(mock.Anything, "gad", 5).
		Return([]*entity.InventoryItem{{ID: 2, Name: "Gadget"}}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/search/inventory?q=gad&limit=5", "")

	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Gadget"`)
}

func TestInventoryHandler_Create_MissingPrincipal(t *testing.T) {
	uc := mocksusecase.NewMockInventoryUsecase(t)
	h := NewInventoryHandler(uc, testLogger())

	c, rec := newTestContext(t, http.MethodPost, "/inventory",
		`{"name":"Widget","quantity":4}`)
	c.Set(middleware.ContextUserID, nil)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
