package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"stockroom/config"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/domain/service"
	"stockroom/internal/errors"
	"stockroom/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultBatchWorkers = 4
	defaultSendTimeout  = 30 * time.Second
)

// dispatchService implements the DispatchUsecase interface.
type dispatchService struct {
	attemptRepo repository.DeliveryAttemptRepository
	mailSender  service.MailSender
	workers     int
	sendTimeout time.Duration
	logger      *slog.Logger
}

// DispatchServiceParams holds dependencies for dispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	AttemptRepo repository.DeliveryAttemptRepository
	MailSender  service.MailSender
	Config      *config.Config
	Logger      *slog.Logger
}

// NewDispatchService is the constructor for dispatchService.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	workers := defaultBatchWorkers
	sendTimeout := defaultSendTimeout
	if params.Config != nil {
		if params.Config.Report.BatchWorkers > 0 {
			workers = params.Config.Report.BatchWorkers
		}
		if params.Config.Report.SendTimeout > 0 {
			sendTimeout = params.Config.Report.SendTimeout
		}
	}

	return &dispatchService{
		attemptRepo: params.AttemptRepo,
		mailSender:  params.MailSender,
		workers:     workers,
		sendTimeout: sendTimeout,
		logger:      params.Logger,
	}
}

// SendOne dispatches a single message. The attempt row is written before the
// send so a crash mid-send leaves a pending record rather than nothing, and
// is finalized to sent or failed afterwards.
func (srv *dispatchService) SendOne(ctx context.Context, to, subject, htmlContent string, sentByID int64) (usecase.SendOutcome, error) {
	attempt := &entity.DeliveryAttempt{
		RecipientEmail: to,
		Subject:        subject,
		Content:        htmlContent,
		Status:         entity.DeliveryPending,
		SentByID:       sentByID,
	}

	if err := srv.attemptRepo.Create(ctx, attempt); err != nil {
		return usecase.SendOutcome{}, err
	}

	sendCtx, cancel := context.WithTimeout(ctx, srv.sendTimeout)
	defer cancel()

	messageID, sendErr := srv.mailSender.Send(sendCtx, to, subject, htmlContent)
	if sendErr != nil {
		if err := srv.attemptRepo.MarkFailed(ctx, attempt.ID); err != nil {
			srv.logger.Error("failed to finalize delivery attempt",
				slog.Int64("attempt_id", attempt.ID),
				slog.Any("error", err))
		}

		srv.logger.Warn("mail delivery failed",
			slog.String("recipient", to),
			slog.Any("error", sendErr))

		return usecase.SendOutcome{Email: to, Success: false, Error: sendErr.Error()}, nil
	}

	if err := srv.attemptRepo.MarkSent(ctx, attempt.ID, time.Now()); err != nil {
		srv.logger.Error("failed to finalize delivery attempt",
			slog.Int64("attempt_id", attempt.ID),
			slog.Any("error", err))
	}

	return usecase.SendOutcome{Email: to, Success: true, MessageID: messageID}, nil
}

// SendBatch dispatches one message per recipient over a bounded worker pool.
// The result slice keeps the order of the requested recipients.
func (srv *dispatchService) SendBatch(ctx context.Context, recipients []string, subject, htmlContent string, sentByID int64) (*usecase.BatchResult, error) {
	if len(recipients) == 0 {
		return nil, domainerrors.ErrNoRecipients
	}

	outcomes := make([]usecase.SendOutcome, len(recipients))
	sem := make(chan struct{}, srv.workers)

	var wg sync.WaitGroup
	for i, recipient := range recipients {
		wg.Add(1)
		go func(idx int, to string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			outcome, err := srv.SendOne(ctx, to, subject, htmlContent, sentByID)
			if err != nil {
				outcome = usecase.SendOutcome{Email: to, Success: false, Error: err.Error()}
			}
			outcomes[idx] = outcome
		}(i, recipient)
	}
	wg.Wait()

	result := &usecase.BatchResult{Results: outcomes}
	for _, outcome := range outcomes {
		if outcome.Success {
			result.TotalSent++
		} else {
			result.TotalFailed++
		}
	}

	srv.logger.Info("batch dispatch finished",
		slog.Int("recipients", len(recipients)),
		slog.Int("sent", result.TotalSent),
		slog.Int("failed", result.TotalFailed))

	return result, nil
}

// ListAttempts returns a page of delivery attempts, newest first.
func (srv *dispatchService) ListAttempts(ctx context.Context, input usecase.ListAttemptsInput) ([]*entity.DeliveryAttempt, usecase.Pagination, error) {
	if input.Status != "" && !entity.DeliveryStatus(input.Status).Valid() {
		return nil, usecase.Pagination{}, domainerrors.ErrValidationFailed.WithDetails("unknown delivery status: " + input.Status)
	}

	page, limit := normalizePage(input.Page, input.Limit)

	query := repository.AttemptListQuery{
		Status:   entity.DeliveryStatus(input.Status),
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
		Offset:   (page - 1) * limit,
		Limit:    limit,
	}

	attempts, total, err := srv.attemptRepo.List(ctx, query)
	if err != nil {
		return nil, usecase.Pagination{}, err
	}

	return attempts, usecase.NewPagination(page, limit, total), nil
}

// GetAttempt returns a single delivery attempt by ID.
func (srv *dispatchService) GetAttempt(ctx context.Context, id int64) (*entity.DeliveryAttempt, error) {
	attempt, err := srv.attemptRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAttemptNotFound) {
			return nil, domainerrors.ErrAttemptNotFound
		}

		return nil, err
	}

	return attempt, nil
}
