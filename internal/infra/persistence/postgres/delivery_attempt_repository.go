package postgres

import (
	"context"
	"time"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deliveryAttemptRepository implements the repository.DeliveryAttemptRepository interface.
type deliveryAttemptRepository struct {
	db *gorm.DB
}

// NewDeliveryAttemptRepository is the constructor for deliveryAttemptRepository.
func NewDeliveryAttemptRepository(db *gorm.DB) repository.DeliveryAttemptRepository {
	return &deliveryAttemptRepository{
		db: db,
	}
}

// Create persists a new attempt.
func (repo *deliveryAttemptRepository) Create(ctx context.Context, attempt *entity.DeliveryAttempt) error {
	attemptM := fromDeliveryAttemptDomain(attempt)

	if err := repo.db.WithContext(ctx).Create(attemptM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("unknown sender reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery attempt")
	}

	attempt.ID = attemptM.ID
	attempt.CreatedAt = attemptM.CreatedAt

	return nil
}

// MarkSent finalizes an attempt as successfully delivered at sentAt.
func (repo *deliveryAttemptRepository) MarkSent(ctx context.Context, id int64, sentAt time.Time) error {
	return repo.finalize(ctx, id, map[string]any{
		"status":  string(entity.DeliverySent),
		"sent_at": sentAt,
	})
}

// MarkFailed finalizes an attempt as failed.
func (repo *deliveryAttemptRepository) MarkFailed(ctx context.Context, id int64) error {
	return repo.finalize(ctx, id, map[string]any{
		"status": string(entity.DeliveryFailed),
	})
}

func (repo *deliveryAttemptRepository) finalize(ctx context.Context, id int64, fields map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryAttemptModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to finalize delivery attempt")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAttemptNotFound
	}

	return nil
}

// List returns one page of attempts, newest first, with the sender reference.
// Content is omitted to keep history listings light.
func (repo *deliveryAttemptRepository) List(ctx context.Context, q repository.AttemptListQuery) ([]*entity.DeliveryAttempt, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.DeliveryAttemptModel{})

	if q.Status != "" {
		query = query.Where("status = ?", string(q.Status))
	}
	if q.DateFrom != nil {
		query = query.Where("created_at >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		query = query.Where("created_at <= ?", *q.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count delivery attempts")
	}

	var attemptModels []*model.DeliveryAttemptModel
	if err := query.
		Omit("content").
		Preload("SentBy").
		Order("created_at DESC").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&attemptModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list delivery attempts")
	}

	attempts := make([]*entity.DeliveryAttempt, 0, len(attemptModels))
	for _, attemptM := range attemptModels {
		attempts = append(attempts, toDeliveryAttemptDomain(attemptM))
	}

	return attempts, total, nil
}

// FindByID retrieves a single attempt with its full rendered content and sender.
func (repo *deliveryAttemptRepository) FindByID(ctx context.Context, id int64) (*entity.DeliveryAttempt, error) {
	var attemptM model.DeliveryAttemptModel

	if err := repo.db.WithContext(ctx).
		Preload("SentBy").
		Where("id = ?", id).
		First(&attemptM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttemptNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery attempt by ID")
	}

	return toDeliveryAttemptDomain(&attemptM), nil
}

func toDeliveryAttemptDomain(attemptM *model.DeliveryAttemptModel) *entity.DeliveryAttempt {
	return &entity.DeliveryAttempt{
		ID:             attemptM.ID,
		RecipientEmail: attemptM.RecipientEmail,
		Subject:        attemptM.Subject,
		Content:        attemptM.Content,
		Status:         entity.DeliveryStatus(attemptM.Status),
		SentByID:       attemptM.SentByID,
		SentBy:         toUserRef(attemptM.SentBy),
		SentAt:         attemptM.SentAt,
		CreatedAt:      attemptM.CreatedAt,
	}
}

func fromDeliveryAttemptDomain(attempt *entity.DeliveryAttempt) *model.DeliveryAttemptModel {
	return &model.DeliveryAttemptModel{
		ID:             attempt.ID,
		RecipientEmail: attempt.RecipientEmail,
		Subject:        attempt.Subject,
		Content:        attempt.Content,
		Status:         string(attempt.Status),
		SentByID:       attempt.SentByID,
		SentAt:         attempt.SentAt,
	}
}
