package handler

import (
	"net/http"
	"testing"

	domainerrors "stockroom/internal/domain/errors"
	mocksusecase "stockroom/internal/mocks/usecase"
	"stockroom/internal/report"
	"stockroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportHandler_Snapshot_JSON(t *testing.T) {
	uc := mocksusecase.NewMockReportUsecase(t)
	h := NewReportHandler(uc, testLogger())

	uc.EXPECT().
		GetSnapshot(mock.Anything, usecase.ReportFormat("")).
		Return(&usecase.Snapshot{
			Format: usecase.ReportFormatJSON,
			Rows:   []report.Row{{Name: "Widget", Quantity: 3, SKU: "N/A"}},
		}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/reports/inventory", "")

	require.NoError(t, h.Snapshot(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Widget"`)
}

func TestReportHandler_Snapshot_CSV(t *testing.T) {
	uc := mocksusecase.NewMockReportUsecase(t)
	h := NewReportHandler(uc, testLogger())

	uc.EXPECT().
		GetSnapshot(mock.Anything, usecase.ReportFormatCSV).
		Return(&usecase.Snapshot{
			Format: usecase.ReportFormatCSV,
			CSV:    "Item Name,Quantity,SKU,Unit Price\n\"Widget\",3,\"N/A\",0\n",
		}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/reports/inventory?format=csv", "")

	require.NoError(t, h.Snapshot(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "inventory-report.csv")
	assert.Contains(t, rec.Body.String(), "Item Name,Quantity,SKU,Unit Price")
}

func TestReportHandler_SendInventory(t *testing.T) {
	uc := mocksusecase.NewMockReportUsecase(t)
	h := NewReportHandler(uc, testLogger())

	uc.EXPECT().
		SendReport(mock.Anything, usecase.SendReportInput{
			Recipients:    []string{"a@x.test"},
			Subject:       "Weekly stock",
			CustomMessage: "FYI",
		}, int64(7)).
		Return(&usecase.SendReportResult{
			JobID:          "report_1_abc",
			RecipientCount: 1,
			TotalSent:      1,
			Results:        []usecase.SendOutcome{{Email: "a@x.test", Success: true, MessageID: "sim_1"}},
		}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/reports/send-inventory",
		`{"recipients":["a@x.test"],"subject":"Weekly stock","customMessage":"FYI"}`)

	require.NoError(t, h.SendInventory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"jobId":"report_1_abc"`)
}

func TestReportHandler_SendInventory_NoRecipients(t *testing.T) {
	uc := mocksusecase.NewMockReportUsecase(t)
	h := NewReportHandler(uc, testLogger())

	c, _ := newTestContext(t, http.MethodPost, "/reports/send-inventory",
		`{"recipients":[]}`)

	err := h.SendInventory(c)
	require.Error(t, err)
}

func TestReportHandler_SendToAllMerchants_NoneActive(t *testing.T) {
	uc := mocksusecase.NewMockReportUsecase(t)
	h := NewReportHandler(uc, testLogger())

	uc.EXPECT().
		SendToAllMerchants(mock.Anything, "", "", int64(7)).
		Return(nil, domainerrors.ErrNoRecipients)

	c, rec := newTestContext(t, http.MethodPost, "/reports/send-to-all-merchants", `{}`)

	require.NoError(t, h.SendToAllMerchants(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportHandler_Stats(t *testing.T) {
	uc := mocksusecase.NewMockReportUsecase(t)
	h := NewReportHandler(uc, testLogger())

	uc.EXPECT().
		Stats(mock.Anything).
		Return(&usecase.ReportStats{TotalItems: 12, LowStockItems: 2, ActiveMerchants: 4}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/reports/stats", "")

	require.NoError(t, h.Stats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalItems":12`)
}
