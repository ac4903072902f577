package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) profile(ctx context.Context) {
	p, err := a.api.Profile(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Printf("%s %s <%s> role=%s since %s\n",
		p.FirstName, p.LastName, p.Email, p.Role, p.CreatedAt.Format("2006-01-02"))
}

func (a *App) products(ctx context.Context) {
	products, err := a.api.Products(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}
	for _, p := range products {
		fmt.Printf("%s  %-30s %8.2f  stock=%d  %s/%s\n",
			p.ProductID, p.Name, p.Price, p.StockQuantity, p.Category, p.Brand)
	}
}

func (a *App) orders(ctx context.Context) {
	orders, err := a.api.Orders(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}
	for _, o := range orders {
		fmt.Printf("%s  %-25s %10.2f  %s/%s  %s\n",
			o.OrderID, o.CustomerName, o.TotalAmount, o.Status, o.PaymentStatus,
			o.OrderDate.Format("2006-01-02"))
	}
}

func (a *App) setOrderStatus(ctx context.Context, orderID, status string) {
	o, err := a.api.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Printf("order %s is now %s\n", o.OrderID, o.Status)
}

func (a *App) invoices(ctx context.Context) {
	invoices, err := a.api.Invoices(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}
	for _, inv := range invoices {
		fmt.Printf("%s  %-25s %10.2f  %s/%s\n",
			inv.InvoiceID, inv.CustomerName, inv.PaidAmount, inv.InvoiceStatus, inv.OrderStatus)
	}
}

func (a *App) invoicePDF(ctx context.Context, invoiceID string) {
	data, err := a.api.InvoicePDF(ctx, invoiceID)
	if err != nil {
		log.Println(err.Error())
		return
	}
	name := fmt.Sprintf("invoice-%s.pdf", invoiceID)
	if err := os.WriteFile(name, data, 0o644); err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Printf("saved %s (%d bytes)\n", name, len(data))
}
