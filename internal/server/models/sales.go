package models

import "time"

type Customer struct {
	CustomerID string    `json:"customer_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderListItem is the joined order row shown in the orders view.
type OrderListItem struct {
	OrderID       string    `json:"order_id"`
	CustomerName  string    `json:"customer_name"`
	OrderDate     time.Time `json:"order_date"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentStatus string    `json:"payment_status"`
}

// SalesReturnListItem joins a return with its sale, order item, and product.
type SalesReturnListItem struct {
	ReturnID         string    `json:"return_id"`
	SaleID           string    `json:"sale_id"`
	ReturnDate       time.Time `json:"return_date"`
	ReturnReason     string    `json:"return_reason"`
	Status           string    `json:"status"`
	ReturnedQuantity int       `json:"returned_quantity"`
	SaleTotalAmount  float64   `json:"sale_total_amount"`
	SaleDate         time.Time `json:"sale_date"`
	ProductName      string    `json:"product_name"`
	SoldQuantity     int       `json:"sold_quantity"`
	TotalPayment     float64   `json:"total_payment"`
}
