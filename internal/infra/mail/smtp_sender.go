package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stockroom/config"
	"stockroom/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// smtpSender implements MailSender over a real SMTP server using gomail.
type smtpSender struct {
	cfg    *config.MailConfig
	dialer *gomail.Dialer
	logger *slog.Logger
}

// NewSMTPSender creates a new SMTP sender from configuration.
func NewSMTPSender(cfg *config.MailConfig, logger *slog.Logger) service.MailSender {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	dialer.SSL = cfg.SSL

	return &smtpSender{
		cfg:    cfg,
		dialer: dialer,
		logger: logger,
	}
}

// Send delivers one message and returns its message id. gomail has no context
// support, so the dial-and-send runs in a goroutine and the call returns early
// when ctx expires; the attempt is then treated as failed.
func (s *smtpSender) Send(ctx context.Context, to, subject, htmlBody string) (string, error) {
	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.cfg.Host)

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.cfg.SenderEmail, s.cfg.SenderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetHeader("Message-ID", messageID)
	msg.SetDateHeader("Date", time.Now())
	msg.SetBody("text/html", htmlBody)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return "", errors.Wrap(err, "smtp send")
		}
	case <-ctx.Done():
		return "", errors.Wrap(ctx.Err(), "smtp send")
	}

	s.logger.Debug("mail sent",
		slog.String("to", to),
		slog.String("message_id", messageID),
	)

	return messageID, nil
}
