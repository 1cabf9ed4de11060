package handler

import (
	"net/http"
	"testing"
	"time"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	mocksusecase "stockroom/internal/mocks/usecase"
	"stockroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeliveryLogHandler_List_Filters(t *testing.T) {
	uc := mocksusecase.NewMockDispatchUsecase(t)
	h := NewDeliveryLogHandler(uc, testLogger())

	uc.EXPECT().
		ListAttempts(mock.Anything, mock.MatchedBy(func(input usecase.ListAttemptsInput) bool {
			return input.Status == "sent" &&
				input.DateFrom != nil && input.DateFrom.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) &&
				input.DateTo == nil
		})).
		Return([]*entity.DeliveryAttempt{
			{ID: 1, RecipientEmail: "a@x.test", Status: entity.DeliverySent},
		}, usecase.NewPagination(1, 10, 1), nil)

	c, rec := newTestContext(t, http.MethodGet, "/email-logs?status=sent&dateFrom=2026-08-01", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"a@x.test"`)
}

func TestDeliveryLogHandler_List_BadDate(t *testing.T) {
	uc := mocksusecase.NewMockDispatchUsecase(t)
	h := NewDeliveryLogHandler(uc, testLogger())

	c, rec := newTestContext(t, http.MethodGet, "/email-logs?dateFrom=yesterday", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeliveryLogHandler_Get(t *testing.T) {
	uc := mocksusecase.NewMockDispatchUsecase(t)
	h := NewDeliveryLogHandler(uc, testLogger())

	uc.EXPECT().
		GetAttempt(mock.Anything, int64(8)).
		Return(&entity.DeliveryAttempt{
			ID:             8,
			RecipientEmail: "a@x.test",
			Subject:        "Inventory Report - 2026-08-31",
			Content:        "<html></html>",
			Status:         entity.DeliveryFailed,
		}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/email-logs/8", "")
	c.SetParamNames("id")
	c.SetParamValues("8")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"content"`)
}

func TestDeliveryLogHandler_Get_NotFound(t *testing.T) {
	uc := mocksusecase.NewMockDispatchUsecase(t)
	h := NewDeliveryLogHandler(uc, testLogger())

	uc.EXPECT().
		GetAttempt(mock.Anything, int64(404)).
		Return(nil, domainerrors.ErrAttemptNotFound)

	c, rec := newTestContext(t, http.MethodGet, "/email-logs/404", "")
	c.SetParamNames("id")
	c.SetParamValues("404")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
