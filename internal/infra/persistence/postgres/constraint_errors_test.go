package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainerrors "stockroom/internal/domain/errors"
)

func uniqueViolation(constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           pgUniqueViolation,
		Message:        "duplicate key value violates unique constraint \"" + constraint + "\"",
		ConstraintName: constraint,
	}
}

func TestConvertInventoryConstraintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "sku collision",
			err:  uniqueViolation("idx_inventory_items_sku"),
			want: domainerrors.ErrItemSKUExists,
		},
		{
			name: "name collision",
			err:  uniqueViolation("idx_inventory_items_name"),
			want: domainerrors.ErrItemNameExists,
		},
		{
			name: "wrapped sku collision",
			err:  errors.Wrap(uniqueViolation("idx_inventory_items_sku"), "create failed"),
			want: domainerrors.ErrItemSKUExists,
		},
		{
			name: "translated sentinel falls back to name",
			err:  gorm.ErrDuplicatedKey,
			want: domainerrors.ErrItemNameExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, convertInventoryConstraintError(tt.err), tt.want)
		})
	}
}

func TestConvertInventoryConstraintError_Unrelated(t *testing.T) {
	assert.NoError(t, convertInventoryConstraintError(errors.New("connection reset by peer")))
}

func TestConvertUserConstraintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "email collision",
			err:  uniqueViolation("idx_users_email"),
			want: domainerrors.ErrEmailExists,
		},
		{
			name: "username collision",
			err:  uniqueViolation("idx_users_username"),
			want: domainerrors.ErrUsernameExists,
		},
		{
			name: "unknown role reference",
			err: &pgconn.PgError{
				Code:           pgForeignKeyViolation,
				Message:        "insert or update on table \"users\" violates foreign key constraint \"fk_users_role\"",
				ConstraintName: "fk_users_role",
			},
			want: domainerrors.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, convertUserConstraintError(tt.err), tt.want)
		})
	}
}
