package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchCondition_CoversNameDescriptionSKU(t *testing.T) {
	condition, args := searchCondition("acme")

	assert.Equal(t, "name ILIKE ? OR description ILIKE ? OR sku ILIKE ?", condition)
	assert.Equal(t, []any{"%acme%", "%acme%", "%acme%"}, args)
}
