// Package models defines the payload shapes the CLI client decodes from the
// back-office API. JSON tags mirror the server's responses.
package models

import "time"

// Session is what the login and reset-token endpoints return about the
// authenticated account. Tokens never appear here; they travel in cookies.
type Session struct {
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

type Profile struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"fname"`
	LastName  string    `json:"lname"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"product_name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	Category      string  `json:"category"`
	Brand         string  `json:"brand"`
}

type Order struct {
	OrderID       string    `json:"order_id"`
	CustomerName  string    `json:"customer_name"`
	OrderDate     time.Time `json:"order_date"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentStatus string    `json:"payment_status"`
}

type Invoice struct {
	InvoiceID     string    `json:"invoice_id"`
	PaidAmount    float64   `json:"paid_amount"`
	InvoiceStatus string    `json:"invoice_status"`
	CreatedAt     time.Time `json:"created_at"`
	OrderStatus   string    `json:"order_status"`
	CustomerName  string    `json:"customer_name"`
}
