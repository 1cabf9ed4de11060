// Package report renders inventory snapshots into the CSV and HTML
// documents attached to outgoing report mail.
package report

import (
	"html/template"
	"strconv"
	"strings"
	"time"

	"stockroom/internal/domain/entity"
	"stockroom/internal/errors"
)

// Row is a single inventory line in a rendered report. Missing SKUs
// render as "N/A" and missing prices as zero.
type Row struct {
	Name      string  `json:"itemName"`
	Quantity  int     `json:"quantity"`
	SKU       string  `json:"sku"`
	UnitPrice float64 `json:"unitPrice"`
}

// LowStock reports whether the row falls under the given threshold.
func (r Row) LowStock(threshold int) bool {
	return r.Quantity < threshold
}

// RowsFromItems flattens inventory items into report rows.
func RowsFromItems(items []*entity.InventoryItem) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		row := Row{
			Name:     item.Name,
			Quantity: item.Quantity,
			SKU:      "N/A",
		}
		if item.SKU != nil && *item.SKU != "" {
			row.SKU = *item.SKU
		}
		if item.UnitPrice != nil {
			row.UnitPrice = *item.UnitPrice
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildCSV renders rows as CSV with a fixed header. Name and SKU are
// quoted, numeric columns are bare.
func BuildCSV(rows []Row) string {
	var b strings.Builder
	b.WriteString("Item Name,Quantity,SKU,Unit Price\n")
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(row.Name, `"`, `""`))
		b.WriteString(`",`)
		b.WriteString(strconv.Itoa(row.Quantity))
		b.WriteString(`,"`)
		b.WriteString(strings.ReplaceAll(row.SKU, `"`, `""`))
		b.WriteString(`",`)
		b.WriteString(formatPrice(row.UnitPrice))
	}
	return b.String()
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TemplateData feeds the HTML report template.
type TemplateData struct {
	Rows              []Row
	GeneratedAt       string
	CustomMessage     string
	LowStockThreshold int
}

var reportTemplate = template.Must(template.New("inventory-report").Funcs(template.FuncMap{
	"price": func(v float64) string { return formatPrice(v) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Arial, sans-serif; color: #333; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #f4f4f4; }
tr.low-stock td { background-color: #fff3cd; }
.message { margin: 16px 0; padding: 12px; background-color: #eef2f7; }
.footer { margin-top: 24px; font-size: 12px; color: #777; }
</style>
</head>
<body>
<h2>Inventory Report</h2>
{{if .CustomMessage}}<div class="message">{{.CustomMessage}}</div>{{end}}
<table>
<thead>
<tr><th>Item Name</th><th>Quantity</th><th>SKU</th><th>Unit Price</th></tr>
</thead>
<tbody>
{{- $threshold := .LowStockThreshold}}
{{- range .Rows}}
<tr{{if .LowStock $threshold}} class="low-stock"{{end}}><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.SKU}}</td><td>{{price .UnitPrice}}</td></tr>
{{- end}}
</tbody>
</table>
<div class="footer">Generated at {{.GeneratedAt}}</div>
</body>
</html>
`))

// BuildHTML renders rows as the HTML email body.
func BuildHTML(rows []Row, customMessage string, generatedAt time.Time, lowStockThreshold int) (string, error) {
	var b strings.Builder
	data := TemplateData{
		Rows:              rows,
		GeneratedAt:       generatedAt.Format("2006-01-02 15:04:05"),
		CustomMessage:     customMessage,
		LowStockThreshold: lowStockThreshold,
	}
	if err := reportTemplate.Execute(&b, data); err != nil {
		return "", errors.Wrap(err, "render inventory report")
	}
	return b.String(), nil
}
