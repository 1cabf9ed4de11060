package impl

import (
	"context"
	"testing"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	mockRepo "stockroom/internal/mocks/repository"
	"stockroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMerchantService(t *testing.T) (
	usecase.MerchantUsecase,
	*mockRepo.MockMerchantRepository,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockRepositoryFactory,
) {
	merchantRepo := mockRepo.NewMockMerchantRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)

	service := NewMerchantService(MerchantServiceParams{
		TxManager:    txManager,
		MerchantRepo: merchantRepo,
		Logger:       discardLogger(),
	})

	return service, merchantRepo, txManager, factory
}

func TestMerchantService_CreateMerchant_NormalizesEmail(t *testing.T) {
	service, merchantRepo, _, _ := createTestMerchantService(t)
	ctx := context.Background()

	merchantRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, merchant *entity.Merchant) {
		merchant.ID = 3
	}).Return(nil)

	merchant, err := service.CreateMerchant(ctx, usecase.CreateMerchantInput{
		Name:  "Acme Foods",
		Email: "  Orders@Acme.COM  ",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), merchant.ID)
	assert.Equal(t, "orders@acme.com", merchant.Email)
	assert.True(t, merchant.IsActive)
}

func TestMerchantService_CreateMerchant_InvalidEmail(t *testing.T) {
	service, _, _, _ := createTestMerchantService(t)

	_, err := service.CreateMerchant(context.Background(), usecase.CreateMerchantInput{
		Name:  "Acme",
		Email: "not-an-email",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestMerchantService_CreateMerchant_DuplicateEmail(t *testing.T) {
	service, merchantRepo, _, _ := createTestMerchantService(t)
	ctx := context.Background()

	merchantRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrMerchantEmailExists)

	_, err := service.CreateMerchant(ctx, usecase.CreateMerchantInput{
		Name:  "Acme",
		Email: "orders@acme.com",
	})

	assert.ErrorIs(t, err, domainerrors.ErrMerchantEmailExists)
}

func TestMerchantService_BulkImport_MixedInput(t *testing.T) {
	service, merchantRepo, txManager, factory := createTestMerchantService(t)
	ctx := context.Background()

	text := "john.doe@example.com, BAD-ENTRY; existing@example.com\nJOHN.DOE@example.com\rmary_smith@example.com"

	merchantRepo.EXPECT().
		FindByEmails(ctx, []string{"john.doe@example.com", "existing@example.com", "mary_smith@example.com"}).
		Return([]*entity.Merchant{{ID: 1, Email: "existing@example.com"}}, nil)

	txRepo := mockRepo.NewMockMerchantRepository(t)
	factory.EXPECT().NewMerchantRepository().Return(txRepo)
	txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	})

	var created []*entity.Merchant
	txRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, merchant *entity.Merchant) {
		merchant.ID = int64(len(created) + 10)
		created = append(created, merchant)
	}).Return(nil).Times(2)

	result, err := service.BulkImport(ctx, text, "")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "bad-entry")

	require.Len(t, created, 2)
	assert.Equal(t, "John Doe", created[0].Name)
	assert.Equal(t, "john.doe@example.com", created[0].Email)
	assert.Equal(t, "Mary Smith", created[1].Name)
	assert.True(t, created[0].IsActive)
}

func TestMerchantService_BulkImport_DefaultName(t *testing.T) {
	service, merchantRepo, txManager, factory := createTestMerchantService(t)
	ctx := context.Background()

	merchantRepo.EXPECT().FindByEmails(ctx, []string{"a@b.co"}).Return(nil, nil)

	txRepo := mockRepo.NewMockMerchantRepository(t)
	factory.EXPECT().NewMerchantRepository().Return(txRepo)
	txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	})

	txRepo.EXPECT().Create(ctx, mock.MatchedBy(func(merchant *entity.Merchant) bool {
		return merchant.Name == "Wholesale Partner"
	})).Return(nil)

	result, err := service.BulkImport(ctx, "a@b.co", "Wholesale Partner")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
}

func TestMerchantService_BulkImport_NoValidEmails(t *testing.T) {
	service, _, _, _ := createTestMerchantService(t)

	_, err := service.BulkImport(context.Background(), "nonsense; also@bad", "")

	assert.ErrorIs(t, err, domainerrors.ErrNoValidEmails)
}

func TestMerchantService_BulkImport_EmptyInput(t *testing.T) {
	service, _, _, _ := createTestMerchantService(t)

	_, err := service.BulkImport(context.Background(), " \n ; , ", "")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrNoValidEmails.ErrorCode(), appErr.ErrorCode())
}

func TestMerchantService_UpdateMerchant_Deactivate(t *testing.T) {
	service, merchantRepo, _, _ := createTestMerchantService(t)
	ctx := context.Background()

	existing := &entity.Merchant{ID: 4, Name: "Acme", Email: "orders@acme.com", IsActive: true}
	merchantRepo.EXPECT().FindByID(ctx, int64(4)).Return(existing, nil)
	merchantRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	inactive := false
	merchant, err := service.UpdateMerchant(ctx, 4, usecase.UpdateMerchantInput{Active: &inactive})

	require.NoError(t, err)
	assert.False(t, merchant.IsActive)
	assert.Equal(t, "Acme", merchant.Name)
}

func TestMerchantService_GetMerchant_NotFound(t *testing.T) {
	service, merchantRepo, _, _ := createTestMerchantService(t)
	ctx := context.Background()

	merchantRepo.EXPECT().FindByID(ctx, int64(8)).Return(nil, repository.ErrMerchantNotFound)

	_, err := service.GetMerchant(ctx, 8)

	assert.ErrorIs(t, err, domainerrors.ErrMerchantNotFound)
}

func TestMerchantService_Stats(t *testing.T) {
	service, merchantRepo, _, _ := createTestMerchantService(t)
	ctx := context.Background()

	merchantRepo.EXPECT().Aggregate(ctx).Return(&repository.MerchantAggregate{
		TotalMerchants:    10,
		ActiveMerchants:   7,
		InactiveMerchants: 3,
	}, nil)

	stats, err := service.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalMerchants)
	assert.Equal(t, int64(7), stats.ActiveMerchants)
	assert.Equal(t, int64(3), stats.InactiveMerchants)
}

func TestNameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{email: "john.doe@example.com", want: "John Doe"},
		{email: "mary_jane-smith@example.com", want: "Mary Jane Smith"},
		{email: "sales@example.com", want: "Sales"},
		{email: "@example.com", want: "Merchant"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, nameFromEmail(tt.email))
		})
	}
}
