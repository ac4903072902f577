// Package invoicepdf turns invoice rows into the printable invoice document.
// The HTML layout is rendered locally; turning it into a PDF is delegated to
// a Renderer, normally an external HTML-to-PDF converter.
package invoicepdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

type line struct {
	ItemName  string
	Qty       int
	UnitPrice string
	Total     string
}

type invoicePage struct {
	InvoiceID       string
	IssueDate       string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []line
	Subtotal        string
	TaxRate         string
	Tax             string
	Total           string
}

// Totals computes the money lines of an invoice. taxRate is a percentage.
func Totals(inv *models.InvoiceDetails, taxRate float64) (subtotal, tax, total float64) {
	for _, it := range inv.Items {
		subtotal += it.UnitPrice * float64(it.Qty)
	}
	tax = subtotal * taxRate / 100
	total = subtotal + tax
	return subtotal, tax, total
}

// RenderHTML produces the invoice document for inv with the given tax rate.
func RenderHTML(inv *models.InvoiceDetails, taxRate float64) (string, error) {
	subtotal, tax, total := Totals(inv, taxRate)

	page := invoicePage{
		InvoiceID:       inv.InvoiceID,
		IssueDate:       inv.IssueDate.Format("1/2/2006"),
		CustomerName:    inv.CustomerName,
		CustomerPhone:   inv.CustomerPhone,
		CustomerAddress: inv.CustomerAddress,
		Subtotal:        money(subtotal),
		TaxRate:         trimFloat(taxRate),
		Tax:             money(tax),
		Total:           money(total),
	}
	for _, it := range inv.Items {
		page.Items = append(page.Items, line{
			ItemName:  it.ItemName,
			Qty:       it.Qty,
			UnitPrice: money(it.UnitPrice),
			Total:     money(it.UnitPrice * float64(it.Qty)),
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("rendering invoice: %w", err)
	}
	return buf.String(), nil
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}

var pageTemplate = template.Must(template.New("invoice").Parse(`<html>
<head>
  <meta charset="UTF-8">
  <title>E - Store Invoice - {{.InvoiceID}}</title>
  <style>
    body { font-family: system-ui, sans-serif; background: #f9fafb; color: rgba(0,0,0,.9); padding: 1rem; }
    .invoice-box { background: white; border-radius: .5rem; padding: 1.5rem; color: rgba(0,0,0,.8); max-width: 800px; margin: auto; }
    .flex { display: flex; }
    .justify-between { justify-content: space-between; }
    .justify-end { justify-content: flex-end; }
    .text-primary { color: #3b82f6; }
    .font-bold { font-weight: bold; }
    .text-right { text-align: right; }
    .text-left { text-align: left; }
    .text-center { text-align: center; }
    .text-sm { font-size: .875rem; }
    .text-lg { font-size: 1.125rem; }
    .text-xl { font-size: 1.25rem; }
    .mb-6 { margin-bottom: 1.5rem; }
    .my-4 { margin: 1rem 0; }
    .pt-1 { padding-top: .25rem; }
    .py-3 { padding-top: .75rem; padding-bottom: .75rem; }
    .mt-6 { margin-top: 1.5rem; }
    .border-b { border-bottom: 1px solid rgba(0,0,0,.2); }
    .w-1-3 { width: 33.333%; }
    .w-fit { width: fit-content; }
    table { width: 100%; border-collapse: collapse; }
    th, td { padding: 1rem 0; }
    hr { border: none; border-top: 1px solid rgba(0,0,0,.2); }
    .bg-base-200 { background: #e5e7eb; }
  </style>
</head>
<body>
  <div class="invoice-box">
    <div class="flex justify-between mb-6">
      <div>
        <h3 class="text-xl font-bold">E - STORE</h3>
        <h4 class="text-sm">Invoice For: <br/> Purchase of Products</h4>
      </div>
      <div class="w-fit text-sm text-right">
        <p class="font-bold">Invoice No: <span class="text-primary font-bold">#{{.InvoiceID}}</span></p>
        <p>Created Date: {{.IssueDate}}</p>
        <p>Due Date: {{.IssueDate}}</p>
      </div>
    </div>

    <hr class="my-4" />

    <div class="flex justify-between mb-6">
      <div class="text-sm">
        <h3 class="font-semibold text-lg">From</h3>
        <p class="text-primary font-bold">E - STORE</p>
        <p><strong>Address:</strong> 123 Main St, Peshawar</p>
        <p><strong>Email:</strong> estore@contact.com</p>
        <p><strong>Phone:</strong> +1 989 654 3210</p>
      </div>
      <div class="text-sm">
        <h3 class="font-semibold text-lg">To</h3>
        <p class="font-bold text-primary">{{.CustomerName}}</p>
        <p>{{.CustomerAddress}}</p>
        <p>Phone: {{.CustomerPhone}}</p>
      </div>
    </div>

    <hr class="my-4" />

    <table class="text-sm text-right">
      <thead class="border-b">
        <tr>
          <th class="text-left">Description</th>
          <th>Qty</th>
          <th>Unit Price</th>
          <th>Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}<tr class="border-b">
          <td class="text-left">{{.ItemName}}</td>
          <td>{{.Qty}}</td>
          <td>{{.UnitPrice}}</td>
          <td>{{.Total}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="flex justify-end">
      <div class="text-sm w-1-3 pt-1">
        <div class="flex justify-between border-b">
          <p class="font-bold">Sub Total:</p>
          <p>{{.Subtotal}}</p>
        </div>
        <div class="flex justify-between border-b">
          <p class="font-bold">Discount (0%):</p>
          <p>$0.00</p>
        </div>
        <div class="flex justify-between border-b">
          <p class="font-bold">Tax ({{.TaxRate}}%):</p>
          <p>{{.Tax}}</p>
        </div>
        <div class="flex justify-between">
          <p class="font-bold">Total Amount:</p>
          <p class="font-bold">{{.Total}}</p>
        </div>
      </div>
    </div>

    <div class="mt-6 text-sm">
      <div>
        <p>Payment made via PayPal / cheque in the name of {{.CustomerName}}</p>
        <p>Account Number: 123456789</p>
      </div>
      <hr class="my-4" />
      <div class="text-sm py-3">
        <p class="font-semibold">Terms and Conditions</p>
        <p>Please pay within 15 days from the date of invoice.</p>
      </div>
    </div>

    <hr class="my-4" />

    <div class="text-center text-sm bg-base-200 py-3">
      This is a computer-generated invoice, no signature required.
    </div>
  </div>
</body>
</html>
`))
