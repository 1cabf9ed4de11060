// Package service declares the external-capability interfaces the use case
// layer depends on. Concrete implementations live under internal/infra.
package service

import (
	"context"
)

// MailSender is the pluggable send capability. Implementations hand one
// message to an outside provider and return the provider-assigned message id.
// The dispatcher treats any returned error as a delivery failure for that one
// recipient; it never retries here.
type MailSender interface {
	// Send delivers htmlBody to a single recipient and returns a message id.
	Send(ctx context.Context, to, subject, htmlBody string) (messageID string, err error)
}
