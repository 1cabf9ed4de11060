// Package mail provides MailSender implementations for outgoing report mail.
package mail

import (
	"log/slog"

	"stockroom/config"
	"stockroom/internal/domain/constants"
	"stockroom/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SenderParams holds dependencies for MailSender, injected by Fx
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailSender creates a MailSender based on configuration. When mail is not
// configured the simulator is used so development setups work out of the box.
func NewMailSender(params SenderParams) (service.MailSender, error) {
	cfg := params.Config.Mail
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.MailProviderSimulator {
		logger.Info("Using mail simulator, no mail leaves the process")

		return NewSimulator(logger), nil
	}

	if cfg.Provider != constants.MailProviderSMTP {
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}

	if cfg.Host == "" || cfg.Port == 0 {
		return nil, errors.New("host and port are required for smtp provider")
	}
	if cfg.SenderEmail == "" {
		return nil, errors.New("sender email is required for smtp provider")
	}

	logger.Info("Using SMTP mail sender",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port),
		slog.String("sender", cfg.SenderEmail),
	)

	return NewSMTPSender(cfg, logger), nil
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailSender),
)
