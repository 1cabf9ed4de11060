package report

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/domain/entity"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrString(v string) *string  { return &v }

func TestRowsFromItems_Defaults(t *testing.T) {
	items := []*entity.InventoryItem{
		{Name: "Widget", Quantity: 5, SKU: ptrString("WID-1"), UnitPrice: ptrFloat(2.5)},
		{Name: "Gadget", Quantity: 0},
	}

	rows := RowsFromItems(items)

	require.Len(t, rows, 2)
	assert.Equal(t, Row{Name: "Widget", Quantity: 5, SKU: "WID-1", UnitPrice: 2.5}, rows[0])
	assert.Equal(t, Row{Name: "Gadget", Quantity: 0, SKU: "N/A", UnitPrice: 0}, rows[1])
}

func TestBuildCSV_HeaderAndQuoting(t *testing.T) {
	rows := []Row{
		{Name: "Widget", Quantity: 5, SKU: "WID-1", UnitPrice: 2.5},
		{Name: `He said "hi"`, Quantity: 1, SKU: "N/A", UnitPrice: 10},
	}

	out := BuildCSV(rows)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Item Name,Quantity,SKU,Unit Price", lines[0])
	assert.Equal(t, `"Widget",5,"WID-1",2.5`, lines[1])

	// the output must stay parseable by a standard CSV reader
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, `He said "hi"`, records[2][0])
	assert.Equal(t, "10", records[2][3])
}

func TestBuildCSV_Empty(t *testing.T) {
	assert.Equal(t, "Item Name,Quantity,SKU,Unit Price\n", BuildCSV(nil))
}

func TestBuildHTML(t *testing.T) {
	rows := []Row{
		{Name: "Widget <b>", Quantity: 3, SKU: "WID-1", UnitPrice: 2.5},
		{Name: "Gadget", Quantity: 50, SKU: "N/A", UnitPrice: 0},
	}
	generatedAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	html, err := BuildHTML(rows, "Monthly summary", generatedAt, 10)
	require.NoError(t, err)

	assert.Contains(t, html, "Monthly summary")
	assert.Contains(t, html, "2025-03-14 09:30:00")
	assert.Contains(t, html, "Widget &lt;b&gt;")
	assert.Contains(t, html, `class="low-stock"`)
	assert.NotContains(t, html, `class="low-stock"><td>Gadget`)
}

func TestBuildHTML_NoCustomMessage(t *testing.T) {
	html, err := BuildHTML(nil, "", time.Now(), 10)
	require.NoError(t, err)
	assert.NotContains(t, html, `class="message"`)
}
