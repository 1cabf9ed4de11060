package mail

import (
	"context"
	"log/slog"

	"stockroom/internal/domain/service"

	"github.com/google/uuid"
)

// simulator implements MailSender without touching the network. Every send
// succeeds and is logged, which is enough for development and demos.
type simulator struct {
	logger *slog.Logger
}

// NewSimulator creates the simulated mail sender.
func NewSimulator(logger *slog.Logger) service.MailSender {
	return &simulator{logger: logger}
}

// Send pretends to deliver the message and returns a simulated message id.
func (s *simulator) Send(ctx context.Context, to, subject, htmlBody string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := "sim_" + uuid.NewString()

	s.logger.Info("[MailSimulator] Message delivered",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.Int("body_bytes", len(htmlBody)),
		slog.String("message_id", messageID),
	)

	return messageID, nil
}
