package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stockroom/config"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/domain/service"
	"stockroom/internal/report"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	inventoryRepo     repository.InventoryRepository
	merchantUsecase   usecase.MerchantUsecase
	merchantRepo      repository.MerchantRepository
	dispatcher        usecase.DispatchUsecase
	publisher         service.EventPublisher
	lowStockThreshold int
	logger            *slog.Logger
}

// ReportServiceParams holds dependencies for reportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	InventoryRepo   repository.InventoryRepository
	MerchantUsecase usecase.MerchantUsecase
	MerchantRepo    repository.MerchantRepository
	Dispatcher      usecase.DispatchUsecase
	Publisher       service.EventPublisher
	Config          *config.Config
	Logger          *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	threshold := defaultLowStockLevel
	if params.Config != nil && params.Config.Report.LowStockThreshold > 0 {
		threshold = params.Config.Report.LowStockThreshold
	}

	return &reportService{
		inventoryRepo:     params.InventoryRepo,
		merchantUsecase:   params.MerchantUsecase,
		merchantRepo:      params.MerchantRepo,
		dispatcher:        params.Dispatcher,
		publisher:         params.Publisher,
		lowStockThreshold: threshold,
		logger:            params.Logger,
	}
}

// GetSnapshot renders the current inventory in the requested format. Items
// are ordered by name so consecutive snapshots diff cleanly.
func (srv *reportService) GetSnapshot(ctx context.Context, format usecase.ReportFormat) (*usecase.Snapshot, error) {
	switch format {
	case usecase.ReportFormatJSON, usecase.ReportFormatCSV:
	case "":
		format = usecase.ReportFormatJSON
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown report format: " + string(format))
	}

	items, err := srv.inventoryRepo.ListForReport(ctx)
	if err != nil {
		return nil, err
	}

	rows := report.RowsFromItems(items)

	snapshot := &usecase.Snapshot{Format: format}
	if format == usecase.ReportFormatCSV {
		snapshot.CSV = report.BuildCSV(rows)
	} else {
		snapshot.Rows = rows
	}

	return snapshot, nil
}

// SendReport renders the current inventory and dispatches it to the given
// recipients on behalf of the sender.
func (srv *reportService) SendReport(ctx context.Context, input usecase.SendReportInput, sentByID int64) (*usecase.SendReportResult, error) {
	if sentByID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sender is required")
	}
	if len(input.Recipients) == 0 {
		return nil, domainerrors.ErrNoRecipients
	}
	for _, recipient := range input.Recipients {
		if !emailPattern.MatchString(recipient) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid recipient address: " + recipient)
		}
	}

	items, err := srv.inventoryRepo.ListForReport(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rows := report.RowsFromItems(items)

	htmlContent, err := report.BuildHTML(rows, input.CustomMessage, now, srv.lowStockThreshold)
	if err != nil {
		return nil, err
	}

	subject := input.Subject
	if subject == "" {
		subject = "Inventory Report - " + now.Format("2006-01-02")
	}

	batch, err := srv.dispatcher.SendBatch(ctx, input.Recipients, subject, htmlContent, sentByID)
	if err != nil {
		return nil, err
	}

	jobID := fmt.Sprintf("report_%d_%s", now.UnixMilli(), uuid.NewString()[:8])

	result := &usecase.SendReportResult{
		JobID:          jobID,
		RecipientCount: len(input.Recipients),
		TotalSent:      batch.TotalSent,
		TotalFailed:    batch.TotalFailed,
		Results:        batch.Results,
	}

	srv.publishCompletion(ctx, result, sentByID)

	return result, nil
}

// SendToAllMerchants dispatches the report to every active recipient.
func (srv *reportService) SendToAllMerchants(ctx context.Context, subject, customMessage string, sentByID int64) (*usecase.SendReportResult, error) {
	emails, err := srv.merchantUsecase.ActiveEmails(ctx)
	if err != nil {
		return nil, err
	}

	if len(emails) == 0 {
		return nil, domainerrors.ErrNoRecipients.WithDetails("no active merchants found")
	}

	return srv.SendReport(ctx, usecase.SendReportInput{
		Recipients:    emails,
		Subject:       subject,
		CustomMessage: customMessage,
	}, sentByID)
}

// Stats returns aggregate reporting counters.
func (srv *reportService) Stats(ctx context.Context) (*usecase.ReportStats, error) {
	inventory, err := srv.inventoryRepo.Aggregate(ctx, srv.lowStockThreshold)
	if err != nil {
		return nil, err
	}

	merchants, err := srv.merchantRepo.Aggregate(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.ReportStats{
		TotalItems:          inventory.TotalItems,
		LowStockItems:       inventory.LowStockItems,
		ActiveMerchants:     merchants.ActiveMerchants,
		LastReportGenerated: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// publishCompletion emits the completion event. Publish failures are logged
// but never fail the report run.
func (srv *reportService) publishCompletion(ctx context.Context, result *usecase.SendReportResult, sentByID int64) {
	event := &service.ReportEvent{
		JobID:          result.JobID,
		SenderID:       sentByID,
		RecipientCount: result.RecipientCount,
		TotalSent:      result.TotalSent,
		TotalFailed:    result.TotalFailed,
		CompletedAt:    time.Now(),
	}

	if err := srv.publisher.PublishReportEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish report completion event",
			slog.String("job_id", result.JobID),
			slog.Any("error", err))
	}
}
