package service

import (
	"context"
	"time"
)

// ReportEvent summarizes one completed report dispatch for downstream
// consumers (audit sinks, dashboards). Published best-effort after the batch
// finishes; delivery bookkeeping never depends on it.
type ReportEvent struct {
	JobID          string    `json:"job_id"`
	SenderID       int64     `json:"sender_id"`
	RecipientCount int       `json:"recipient_count"`
	TotalSent      int       `json:"total_sent"`
	TotalFailed    int       `json:"total_failed"`
	CompletedAt    time.Time `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReportEvent publishes a report-completed event.
	PublishReportEvent(ctx context.Context, event *ReportEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
