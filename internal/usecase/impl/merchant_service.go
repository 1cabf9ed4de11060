package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/errors"
	"stockroom/internal/usecase"

	"go.uber.org/fx"
)

var (
	emailSeparators = regexp.MustCompile(`[,;\n\r]+`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// merchantService implements the MerchantUsecase interface.
type merchantService struct {
	txManager    repository.TransactionManager
	merchantRepo repository.MerchantRepository
	logger       *slog.Logger
}

// MerchantServiceParams holds dependencies for merchantService, injected by Fx.
type MerchantServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	MerchantRepo repository.MerchantRepository
	Logger       *slog.Logger
}

// NewMerchantService is the constructor for merchantService.
func NewMerchantService(params MerchantServiceParams) usecase.MerchantUsecase {
	return &merchantService{
		txManager:    params.TxManager,
		merchantRepo: params.MerchantRepo,
		logger:       params.Logger,
	}
}

// CreateMerchant registers a single recipient.
func (srv *merchantService) CreateMerchant(ctx context.Context, input usecase.CreateMerchantInput) (*entity.Merchant, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !emailPattern.MatchString(email) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid email address")
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	merchant := &entity.Merchant{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		IsActive: active,
	}

	if err := srv.merchantRepo.Create(ctx, merchant); err != nil {
		return nil, err
	}

	srv.logger.Info("merchant created",
		slog.Int64("merchant_id", merchant.ID),
		slog.String("email", merchant.Email))

	return merchant, nil
}

// ListMerchants returns a page of recipients with filtering.
func (srv *merchantService) ListMerchants(ctx context.Context, input usecase.ListMerchantsInput) ([]*entity.Merchant, usecase.Pagination, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	query := repository.MerchantListQuery{
		Search: strings.TrimSpace(input.Search),
		Active: input.Active,
		Offset: (page - 1) * limit,
		Limit:  limit,
	}

	merchants, total, err := srv.merchantRepo.List(ctx, query)
	if err != nil {
		return nil, usecase.Pagination{}, err
	}

	return merchants, usecase.NewPagination(page, limit, total), nil
}

// GetMerchant returns a single recipient by ID.
func (srv *merchantService) GetMerchant(ctx context.Context, id int64) (*entity.Merchant, error) {
	merchant, err := srv.merchantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, err
	}

	return merchant, nil
}

// UpdateMerchant applies a partial update.
func (srv *merchantService) UpdateMerchant(ctx context.Context, id int64, input usecase.UpdateMerchantInput) (*entity.Merchant, error) {
	merchant, err := srv.GetMerchant(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		merchant.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if !emailPattern.MatchString(email) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid email address")
		}
		merchant.Email = email
	}
	if input.Active != nil {
		merchant.IsActive = *input.Active
	}

	if err := srv.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, err
	}

	return merchant, nil
}

// DeleteMerchant removes a recipient by ID.
func (srv *merchantService) DeleteMerchant(ctx context.Context, id int64) error {
	if err := srv.merchantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return domainerrors.ErrMerchantNotFound
		}

		return err
	}

	srv.logger.Info("merchant deleted", slog.Int64("merchant_id", id))

	return nil
}

// BulkImport parses a free-text blob of addresses and registers the new ones.
// Invalid entries are reported, duplicates inside the blob and addresses
// already registered are skipped.
func (srv *merchantService) BulkImport(ctx context.Context, text, defaultName string) (*usecase.BulkImportResult, error) {
	var candidates []string
	seen := make(map[string]struct{})
	for _, raw := range emailSeparators.Split(text, -1) {
		email := strings.ToLower(strings.TrimSpace(raw))
		if email == "" {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		candidates = append(candidates, email)
	}

	if len(candidates) == 0 {
		return nil, domainerrors.ErrNoValidEmails.WithDetails("no email addresses provided")
	}

	var validEmails []string
	var importErrors []string
	for _, email := range candidates {
		if emailPattern.MatchString(email) {
			validEmails = append(validEmails, email)
		} else {
			importErrors = append(importErrors, "Invalid email format: "+email)
		}
	}

	if len(validEmails) == 0 {
		return nil, domainerrors.ErrNoValidEmails
	}

	existing, err := srv.merchantRepo.FindByEmails(ctx, validEmails)
	if err != nil {
		return nil, err
	}

	existingSet := make(map[string]struct{}, len(existing))
	for _, merchant := range existing {
		existingSet[strings.ToLower(merchant.Email)] = struct{}{}
	}

	var created []*entity.Merchant
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewMerchantRepository()
		for _, email := range validEmails {
			if _, exists := existingSet[email]; exists {
				continue
			}

			name := defaultName
			if name == "" {
				name = nameFromEmail(email)
			}

			merchant := &entity.Merchant{
				Name:     name,
				Email:    email,
				IsActive: true,
			}
			if err := repo.Create(ctx, merchant); err != nil {
				return err
			}
			created = append(created, merchant)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("merchants bulk imported",
		slog.Int("imported", len(created)),
		slog.Int("skipped", len(existing)),
		slog.Int("invalid", len(importErrors)))

	return &usecase.BulkImportResult{
		Imported:  len(created),
		Skipped:   len(existing),
		Errors:    importErrors,
		Merchants: created,
	}, nil
}

// ActiveEmails returns the addresses of all active recipients.
func (srv *merchantService) ActiveEmails(ctx context.Context) ([]string, error) {
	return srv.merchantRepo.ActiveEmails(ctx)
}

// Stats returns aggregate recipient counters.
func (srv *merchantService) Stats(ctx context.Context) (*usecase.MerchantStats, error) {
	agg, err := srv.merchantRepo.Aggregate(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.MerchantStats{
		TotalMerchants:    agg.TotalMerchants,
		ActiveMerchants:   agg.ActiveMerchants,
		InactiveMerchants: agg.InactiveMerchants,
	}, nil
}

// nameFromEmail derives a display name from the address's local part.
func nameFromEmail(email string) string {
	localPart, _, _ := strings.Cut(email, "@")

	replaced := strings.Map(func(r rune) rune {
		if r == '.' || r == '_' || r == '-' {
			return ' '
		}
		return r
	}, localPart)

	var b strings.Builder
	upper := true
	for _, r := range replaced {
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
		if r == ' ' {
			upper = true
		}
	}

	name := strings.TrimSpace(b.String())
	if name == "" {
		return "Merchant"
	}

	return name
}
