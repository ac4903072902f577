package models

import "time"

// InvoiceListItem is the joined invoice row for the invoices view.
type InvoiceListItem struct {
	InvoiceID     string    `json:"invoice_id"`
	PaidAmount    float64   `json:"paid_amount"`
	InvoiceStatus string    `json:"invoice_status"`
	CreatedAt     time.Time `json:"created_at"`
	OrderStatus   string    `json:"order_status"`
	CustomerName  string    `json:"customer_name"`
}

// InvoiceItem is a single line of an invoice.
type InvoiceItem struct {
	ItemName  string  `json:"item_name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
}

// InvoiceDetails carries everything needed to display or render one invoice.
type InvoiceDetails struct {
	InvoiceID       string        `json:"invoice_id"`
	IssueDate       time.Time     `json:"issue_date"`
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone"`
	CustomerAddress string        `json:"customer_address"`
	Items           []InvoiceItem `json:"items"`
}
