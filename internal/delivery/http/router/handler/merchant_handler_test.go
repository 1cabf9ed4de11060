package handler

import (
	"net/http"
	"testing"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	mocksusecase "stockroom/internal/mocks/usecase"
	"stockroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMerchantHandler_List_StatusFilter(t *testing.T) {
	uc := mocksusecase.NewMockMerchantUsecase(t)
	h := NewMerchantHandler(uc, testLogger())

	uc.EXPECT().
		ListMerchants(mock.Anything, mock.MatchedBy(func(input usecase.ListMerchantsInput) bool {
			return input.Active != nil && !*input.Active && input.Search == "acme"
		})).
		Return([]*entity.Merchant{{ID: 1, Name: "Acme", Email: "po@acme.test"}},
			usecase.NewPagination(1, 10, 1), nil)

	c, rec := newTestContext(t, http.MethodGet, "/merchants?status=inactive&search=acme", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"po@acme.test"`)
}

func TestMerchantHandler_Create_DuplicateEmail(t *testing.T) {
	uc := mocksusecase.NewMockMerchantUsecase(t)
	h := NewMerchantHandler(uc, testLogger())

	uc.EXPECT().
		CreateMerchant(mock.Anything, usecase.CreateMerchantInput{
			Name:  "Acme",
			Email: "po@acme.test",
		}).
		Return(nil, domainerrors.ErrMerchantEmailExists)

	c, rec := newTestContext(t, http.MethodPost, "/merchants",
		`{"name":"Acme","email":"po@acme.test"}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMerchantHandler_BulkImport(t *testing.T) {
	uc := mocksusecase.NewMockMerchantUsecase(t)
	h := NewMerchantHandler(uc, testLogger())

	uc.EXPECT().
		BulkImport(mock.Anything, "a@x.test, b@x.test", "Wholesale").
		Return(&usecase.BulkImportResult{
			Imported:  2,
			Skipped:   0,
			Errors:    []string{},
			Merchants: []*entity.Merchant{{ID: 1}, {ID: 2}},
		}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/merchants/bulk-import",
		`{"emails":"a@x.test, b@x.test","defaultName":"Wholesale"}`)

	require.NoError(t, h.BulkImport(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"imported":2`)
}

func TestMerchantHandler_BulkImport_EmptyBody(t *testing.T) {
	uc := mocksusecase.NewMockMerchantUsecase(t)
	h := NewMerchantHandler(uc, testLogger())

	c, _ := newTestContext(t, http.MethodPost, "/merchants/bulk-import", `{}`)

	err := h.BulkImport(c)
	require.Error(t, err)
}

func TestMerchantHandler_ActiveEmails(t *testing.T) {
	uc := mocksusecase.NewMockMerchantUsecase(t)
	h := NewMerchantHandler(uc, testLogger())

	uc.EXPECT().
		ActiveEmails(mock.Anything).
		Return([]string{"a@x.test", "b@x.test"}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/merchants/active-emails", "")

	require.NoError(t, h.ActiveEmails(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":2`)
}

func TestMerchantHandler_Delete_NotFound(t *testing.T) {
	uc := mocksusecase.NewMockMerchantUsecase(t)
	h := NewMerchantHandler(uc, testLogger())

	uc.EXPECT().
		DeleteMerchant(mock.Anything, int64(4)).
		Return(domainerrors.ErrMerchantNotFound)

	c, rec := newTestContext(t, http.MethodDelete, "/merchants/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
