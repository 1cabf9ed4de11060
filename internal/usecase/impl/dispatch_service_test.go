package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	mockRepo "stockroom/internal/mocks/repository"
	mockSvc "stockroom/internal/mocks/service"
	"stockroom/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDispatchService(t *testing.T) (
	usecase.DispatchUsecase,
	*mockRepo.MockDeliveryAttemptRepository,
	*mockSvc.MockMailSender,
) {
	attemptRepo := mockRepo.NewMockDeliveryAttemptRepository(t)
	mailSender := mockSvc.NewMockMailSender(t)

	service := NewDispatchService(DispatchServiceParams{
		AttemptRepo: attemptRepo,
		MailSender:  mailSender,
		Logger:      discardLogger(),
	})

	return service, attemptRepo, mailSender
}

func TestDispatchService_SendOne_Success(t *testing.T) {
	service, attemptRepo, mailSender := createTestDispatchService(t)
	ctx := context.Background()

	attemptRepo.EXPECT().Create(ctx, mock.MatchedBy(func(attempt *entity.DeliveryAttempt) bool {
		return attempt.Status == entity.DeliveryPending &&
			attempt.RecipientEmail == "a@b.com" &&
			attempt.SentByID == 7
	})).Run(func(_ context.Context, attempt *entity.DeliveryAttempt) {
		attempt.ID = 11
	}).Return(nil)

	mailSender.EXPECT().Send(mock.Anything, "a@b.com", "Subject", "<p>body</p>").Return("msg-123", nil)
	attemptRepo.EXPECT().MarkSent(ctx, int64(11), mock.AnythingOfType("time.Time")).Return(nil)

	outcome, err := service.SendOne(ctx, "a@b.com", "Subject", "<p>body</p>", 7)

	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, "msg-123", outcome.MessageID)
	assert.Empty(t, outcome.Error)
}

func TestDispatchService_SendOne_SendFailureIsRecorded(t *testing.T) {
	service, attemptRepo, mailSender := createTestDispatchService(t)
	ctx := context.Background()

	attemptRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, attempt *entity.DeliveryAttempt) {
		attempt.ID = 12
	}).Return(nil)

	mailSender.EXPECT().Send(mock.Anything, "a@b.com", "Subject", "body").Return("", errors.New("smtp: connection refused"))
	attemptRepo.EXPECT().MarkFailed(ctx, int64(12)).Return(nil)

	outcome, err := service.SendOne(ctx, "a@b.com", "Subject", "body", 7)

	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Error, "connection refused")
	assert.Empty(t, outcome.MessageID)
}

func TestDispatchService_SendOne_CreateFailureAbortsSend(t *testing.T) {
	service, attemptRepo, _ := createTestDispatchService(t)
	ctx := context.Background()

	attemptRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))

	_, err := service.SendOne(ctx, "a@b.com", "Subject", "body", 7)

	assert.Error(t, err)
}

func TestDispatchService_SendBatch_EmptyRecipients(t *testing.T) {
	service, _, _ := createTestDispatchService(t)

	_, err := service.SendBatch(context.Background(), nil, "Subject", "body", 7)

	assert.ErrorIs(t, err, domainerrors.ErrNoRecipients)
}

func TestDispatchService_SendBatch_PartialFailure(t *testing.T) {
	service, attemptRepo, mailSender := createTestDispatchService(t)
	ctx := context.Background()

	var nextID atomic.Int64
	attemptRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, attempt *entity.DeliveryAttempt) {
		attempt.ID = nextID.Add(1)
	}).Return(nil).Times(3)

	mailSender.EXPECT().Send(mock.Anything, "ok1@b.com", "Subject", "body").Return("m1", nil)
	mailSender.EXPECT().Send(mock.Anything, "fail@b.com", "Subject", "body").Return("", errors.New("mailbox full"))
	mailSender.EXPECT().Send(mock.Anything, "ok2@b.com", "Subject", "body").Return("m2", nil)

	attemptRepo.EXPECT().MarkSent(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
	attemptRepo.EXPECT().MarkFailed(mock.Anything, mock.Anything).Return(nil).Times(1)

	result, err := service.SendBatch(ctx, []string{"ok1@b.com", "fail@b.com", "ok2@b.com"}, "Subject", "body", 7)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalSent)
	assert.Equal(t, 1, result.TotalFailed)

	// outcomes keep the order of the requested recipients
	require.Len(t, result.Results, 3)
	assert.Equal(t, "ok1@b.com", result.Results[0].Email)
	assert.True(t, result.Results[0].Success)
	assert.Equal(t, "fail@b.com", result.Results[1].Email)
	assert.False(t, result.Results[1].Success)
	assert.Equal(t, "ok2@b.com", result.Results[2].Email)
	assert.True(t, result.Results[2].Success)
}

func TestDispatchService_ListAttempts_UnknownStatus(t *testing.T) {
	service, _, _ := createTestDispatchService(t)

	_, _, err := service.ListAttempts(context.Background(), usecase.ListAttemptsInput{Status: "bounced"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestDispatchService_ListAttempts_Success(t *testing.T) {
	service, attemptRepo, _ := createTestDispatchService(t)
	ctx := context.Background()

	sentAt := time.Now()
	attemptRepo.EXPECT().List(ctx, mock.Anything).Return([]*entity.DeliveryAttempt{
		{ID: 2, Status: entity.DeliverySent, SentAt: &sentAt},
		{ID: 1, Status: entity.DeliveryFailed},
	}, 2, nil)

	attempts, pagination, err := service.ListAttempts(ctx, usecase.ListAttemptsInput{Status: "sent"})

	require.NoError(t, err)
	assert.Len(t, attempts, 2)
	assert.Equal(t, int64(2), pagination.Total)
	assert.False(t, pagination.HasNext)
}

func TestDispatchService_GetAttempt_NotFound(t *testing.T) {
	service, attemptRepo, _ := createTestDispatchService(t)
	ctx := context.Background()

	attemptRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrAttemptNotFound)

	_, err := service.GetAttempt(ctx, 404)

	assert.ErrorIs(t, err, domainerrors.ErrAttemptNotFound)
}
