package impl

import (
	"context"
	"strings"
	"testing"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	domainservice "stockroom/internal/domain/service"
	mockRepo "stockroom/internal/mocks/repository"
	mockSvc "stockroom/internal/mocks/service"
	mockUC "stockroom/internal/mocks/usecase"
	"stockroom/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReportService(t *testing.T) (
	usecase.ReportUsecase,
	*mockRepo.MockInventoryRepository,
	*mockUC.MockMerchantUsecase,
	*mockRepo.MockMerchantRepository,
	*mockUC.MockDispatchUsecase,
	*mockSvc.MockEventPublisher,
) {
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	merchantUsecase := mockUC.NewMockMerchantUsecase(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)
	dispatcher := mockUC.NewMockDispatchUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewReportService(ReportServiceParams{
		InventoryRepo:   inventoryRepo,
		MerchantUsecase: merchantUsecase,
		MerchantRepo:    merchantRepo,
		Dispatcher:      dispatcher,
		Publisher:       publisher,
		Logger:          discardLogger(),
	})

	return service, inventoryRepo, merchantUsecase, merchantRepo, dispatcher, publisher
}

func reportTestItems() []*entity.InventoryItem {
	price := 2.5
	sku := "WID-1"

	return []*entity.InventoryItem{
		{Name: "Gadget", Quantity: 0},
		{Name: "Widget", Quantity: 5, UnitPrice: &price, SKU: &sku},
	}
}

func TestReportService_GetSnapshot_JSON(t *testing.T) {
	service, inventoryRepo, _, _, _, _ := createTestReportService(t)
	ctx := context.Background()

	inventoryRepo.EXPECT().ListForReport(ctx).Return(reportTestItems(), nil)

	snapshot, err := service.GetSnapshot(ctx, usecase.ReportFormatJSON)

	require.NoError(t, err)
	assert.Equal(t, usecase.ReportFormatJSON, snapshot.Format)
	require.Len(t, snapshot.Rows, 2)
	assert.Equal(t, "Gadget", snapshot.Rows[0].Name)
	assert.Equal(t, "N/A", snapshot.Rows[0].SKU)
	assert.Empty(t, snapshot.CSV)
}

func TestReportService_GetSnapshot_CSV(t *testing.T) {
	service, inventoryRepo, _, _, _, _ := createTestReportService(t)
	ctx := context.Background()

	inventoryRepo.EXPECT().ListForReport(ctx).Return(reportTestItems(), nil)

	snapshot, err := service.GetSnapshot(ctx, usecase.ReportFormatCSV)

	require.NoError(t, err)
	assert.Equal(t, usecase.ReportFormatCSV, snapshot.Format)
	assert.Nil(t, snapshot.Rows)

	lines := strings.Split(snapshot.CSV, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Item Name,Quantity,SKU,Unit Price", lines[0])
	assert.Equal(t, `"Widget",5,"WID-1",2.5`, lines[2])
}

func TestReportService_GetSnapshot_DefaultsToJSON(t *testing.T) {
	service, inventoryRepo, _, _, _, _ := createTestReportService(t)
	ctx := context.Background()

	inventoryRepo.EXPECT().ListForReport(ctx).Return(nil, nil)

	snapshot, err := service.GetSnapshot(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, usecase.ReportFormatJSON, snapshot.Format)
}

func TestReportService_GetSnapshot_UnknownFormat(t *testing.T) {
	service, _, _, _, _, _ := createTestReportService(t)

	_, err := service.GetSnapshot(context.Background(), "xml")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestReportService_SendReport_Success(t *testing.T) {
	service, inventoryRepo, _, _, dispatcher, publisher := createTestReportService(t)
	ctx := context.Background()

	recipients := []string{"a@b.com", "c@d.com"}

	inventoryRepo.EXPECT().ListForReport(ctx).Return(reportTestItems(), nil)

	dispatcher.EXPECT().
		SendBatch(ctx, recipients, mock.AnythingOfType("string"), mock.MatchedBy(func(html string) bool {
			return strings.Contains(html, "Widget") && strings.Contains(html, "please restock")
		}), int64(7)).
		Return(&usecase.BatchResult{
			TotalSent:   1,
			TotalFailed: 1,
			Results: []usecase.SendOutcome{
				{Email: "a@b.com", Success: true, MessageID: "m1"},
				{Email: "c@d.com", Success: false, Error: "mailbox full"},
			},
		}, nil)

	publisher.EXPECT().PublishReportEvent(ctx, mock.MatchedBy(func(event *domainservice.ReportEvent) bool {
		return event.SenderID == 7 && event.TotalSent == 1 && event.TotalFailed == 1
	})).Return(nil)

	result, err := service.SendReport(ctx, usecase.SendReportInput{
		Recipients:    recipients,
		CustomMessage: "please restock",
	}, 7)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.JobID, "report_"))
	assert.Equal(t, 2, result.RecipientCount)
	assert.Equal(t, 1, result.TotalSent)
	assert.Equal(t, 1, result.TotalFailed)
	require.Len(t, result.Results, 2)
	assert.Equal(t, "a@b.com", result.Results[0].Email)
}

func TestReportService_SendReport_PublishFailureDoesNotFailRun(t *testing.T) {
	service, inventoryRepo, _, _, dispatcher, publisher := createTestReportService(t)
	ctx := context.Background()

	inventoryRepo.EXPECT().ListForReport(ctx).Return(nil, nil)
	dispatcher.EXPECT().SendBatch(ctx, mock.Anything, mock.Anything, mock.Anything, int64(7)).
		Return(&usecase.BatchResult{TotalSent: 1, Results: []usecase.SendOutcome{{Email: "a@b.com", Success: true}}}, nil)
	publisher.EXPECT().PublishReportEvent(ctx, mock.Anything).Return(errors.New("broker unavailable"))

	result, err := service.SendReport(ctx, usecase.SendReportInput{Recipients: []string{"a@b.com"}}, 7)

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalSent)
}

func TestReportService_SendReport_NoRecipients(t *testing.T) {
	service, _, _, _, _, _ := createTestReportService(t)

	_, err := service.SendReport(context.Background(), usecase.SendReportInput{}, 7)

	assert.ErrorIs(t, err, domainerrors.ErrNoRecipients)
}

func TestReportService_SendReport_InvalidRecipient(t *testing.T) {
	service, _, _, _, _, _ := createTestReportService(t)

	_, err := service.SendReport(context.Background(), usecase.SendReportInput{
		Recipients: []string{"a@b.com", "not-an-email"},
	}, 7)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestReportService_SendReport_RequiresSender(t *testing.T) {
	service, _, _, _, _, _ := createTestReportService(t)

	_, err := service.SendReport(context.Background(), usecase.SendReportInput{
		Recipients: []string{"a@b.com"},
	}, 0)

	assert.Error(t, err)
}

func TestReportService_SendToAllMerchants_NoActiveMerchants(t *testing.T) {
	service, _, merchantUsecase, _, _, _ := createTestReportService(t)
	ctx := context.Background()

	merchantUsecase.EXPECT().ActiveEmails(ctx).Return(nil, nil)

	_, err := service.SendToAllMerchants(ctx, "", "", 7)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrNoRecipients.ErrorCode(), appErr.ErrorCode())
}

func TestReportService_SendToAllMerchants_Success(t *testing.T) {
	service, inventoryRepo, merchantUsecase, _, dispatcher, publisher := createTestReportService(t)
	ctx := context.Background()

	merchantUsecase.EXPECT().ActiveEmails(ctx).Return([]string{"m1@x.com", "m2@x.com"}, nil)
	inventoryRepo.EXPECT().ListForReport(ctx).Return(nil, nil)
	dispatcher.EXPECT().SendBatch(ctx, []string{"m1@x.com", "m2@x.com"}, mock.Anything, mock.Anything, int64(7)).
		Return(&usecase.BatchResult{TotalSent: 2, Results: []usecase.SendOutcome{
			{Email: "m1@x.com", Success: true},
			{Email: "m2@x.com", Success: true},
		}}, nil)
	publisher.EXPECT().PublishReportEvent(ctx, mock.Anything).Return(nil)

	result, err := service.SendToAllMerchants(ctx, "Weekly report", "", 7)

	require.NoError(t, err)
	assert.Equal(t, 2, result.RecipientCount)
	assert.Equal(t, 2, result.TotalSent)
}

func TestReportService_Stats(t *testing.T) {
	service, inventoryRepo, _, merchantRepo, _, _ := createTestReportService(t)
	ctx := context.Background()

	inventoryRepo.EXPECT().Aggregate(ctx, defaultLowStockLevel).Return(&repository.InventoryAggregate{
		TotalItems:    20,
		LowStockItems: 4,
	}, nil)
	merchantRepo.EXPECT().Aggregate(ctx).Return(&repository.MerchantAggregate{ActiveMerchants: 6}, nil)

	stats, err := service.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(20), stats.TotalItems)
	assert.Equal(t, int64(4), stats.LowStockItems)
	assert.Equal(t, int64(6), stats.ActiveMerchants)
	assert.NotEmpty(t, stats.LastReportGenerated)
}
