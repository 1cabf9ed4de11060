package usecase

import (
	"context"

	"stockroom/internal/report"
)

// ReportFormat selects the snapshot rendering.
type ReportFormat string

const (
	ReportFormatJSON ReportFormat = "json"
	ReportFormatCSV  ReportFormat = "csv"
)

// Snapshot is an inventory report snapshot in one of the supported
// formats. Rows is set for JSON, CSV for CSV.
type Snapshot struct {
	Format ReportFormat `json:"format"`
	Rows   []report.Row `json:"data,omitempty"`
	CSV    string       `json:"-"`
}

// SendReportInput carries an explicit-recipient report request.
type SendReportInput struct {
	Recipients    []string
	Subject       string
	CustomMessage string
}

// SendReportResult summarizes a dispatched report run.
type SendReportResult struct {
	JobID          string        `json:"jobId"`
	RecipientCount int           `json:"recipientCount"`
	TotalSent      int           `json:"totalSent"`
	TotalFailed    int           `json:"totalFailed"`
	Results        []SendOutcome `json:"results"`
}

// ReportStats summarizes reporting readiness for the stats endpoint.
type ReportStats struct {
	TotalItems          int64  `json:"totalItems"`
	LowStockItems       int64  `json:"lowStockItems"`
	ActiveMerchants     int64  `json:"activeMerchants"`
	LastReportGenerated string `json:"lastReportGenerated"`
}

// ReportUsecase defines the interface for inventory report use cases
type ReportUsecase interface {
	// GetSnapshot renders the current inventory in the requested format
	GetSnapshot(ctx context.Context, format ReportFormat) (*Snapshot, error)

	// SendReport renders the current inventory and dispatches it to the
	// given recipients on behalf of the sender
	SendReport(ctx context.Context, input SendReportInput, sentByID int64) (*SendReportResult, error)

	// SendToAllMerchants dispatches the report to every active recipient
	SendToAllMerchants(ctx context.Context, subject, customMessage string, sentByID int64) (*SendReportResult, error)

	// Stats returns aggregate reporting counters
	Stats(ctx context.Context) (*ReportStats, error)
}
