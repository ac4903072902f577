package invoicepdf

import (
	"strings"
	"testing"
	"time"

	"github.com/codebyfaisal/e-store-pos/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() *models.InvoiceDetails {
	return &models.InvoiceDetails{
		InvoiceID:       "inv-1",
		IssueDate:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		CustomerName:    "Jane Doe",
		CustomerPhone:   "+1 555 0100",
		CustomerAddress: "1 Main St, Springfield",
		Items: []models.InvoiceItem{
			{ItemName: "Keyboard", Qty: 2, UnitPrice: 50},
			{ItemName: "Mouse", Qty: 1, UnitPrice: 25},
		},
	}
}

func TestTotals(t *testing.T) {
	subtotal, tax, total := Totals(sampleInvoice(), 5)

	assert.Equal(t, 125.0, subtotal)
	assert.Equal(t, 6.25, tax)
	assert.Equal(t, 131.25, total)
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(sampleInvoice(), 5)
	require.NoError(t, err)

	assert.Contains(t, html, "#inv-1")
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "Keyboard")
	assert.Contains(t, html, "$125.00")
	assert.Contains(t, html, "Tax (5%)")
	assert.Contains(t, html, "$131.25")
}

func TestRenderHTML_EscapesCustomerInput(t *testing.T) {
	inv := sampleInvoice()
	inv.CustomerName = "<script>alert(1)</script>"

	html, err := RenderHTML(inv, 5)
	require.NoError(t, err)

	assert.False(t, strings.Contains(html, "<script>alert(1)</script>"))
}
