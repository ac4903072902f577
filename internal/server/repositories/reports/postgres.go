package reports

import (
	"context"
	"fmt"

	"github.com/codebyfaisal/e-store-pos/internal/dbx"
	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// collect scans every row of query into values produced by newRow.
func collect[T any](ctx context.Context, db dbx.DBTX, query string, scan func(rowScanner, *T) error) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var v T
		if err := scan(rows, &v); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PostgresRepository) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	d := &models.Dashboard{}

	totals := `
		SELECT
			COALESCE(SUM(s.total_amount), 0) AS total_sales,
			(SELECT COUNT(*) FROM orders) AS total_orders,
			(SELECT COUNT(*) FROM sales_returns) AS total_returns
		FROM sales s
	`
	err := r.db.QueryRowContext(ctx, totals).
		Scan(&d.KPIs.TotalSales, &d.KPIs.TotalOrders, &d.KPIs.TotalReturns)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	d.WeeklySales, err = collect(ctx, r.db, `
		SELECT
			TO_CHAR(DATE(sale_date), 'Dy') AS day,
			SUM(total_amount)::numeric(10,2) AS amount
		FROM sales
		WHERE sale_date >= CURRENT_DATE - INTERVAL '6 days'
		GROUP BY DATE(sale_date)
		ORDER BY DATE(sale_date)
	`, func(s rowScanner, v *models.DailyAmount) error {
		return s.Scan(&v.Day, &v.Amount)
	})
	if err != nil {
		return nil, err
	}

	d.OrderStatus, err = collect(ctx, r.db, `
		SELECT status, COUNT(*) AS count
		FROM orders
		GROUP BY status
	`, func(s rowScanner, v *models.StatusCount) error {
		return s.Scan(&v.Status, &v.Count)
	})
	if err != nil {
		return nil, err
	}

	d.PaymentMethods, err = collect(ctx, r.db, `
		SELECT LOWER(payment_method) AS method, COUNT(*) AS count
		FROM sales
		GROUP BY payment_method
	`, func(s rowScanner, v *models.MethodCount) error {
		return s.Scan(&v.Method, &v.Count)
	})
	if err != nil {
		return nil, err
	}

	comparison := `
		SELECT
			COALESCE(SUM(CASE WHEN order_date BETWEEN CURRENT_DATE - INTERVAL '6 days' AND CURRENT_DATE THEN total_amount ELSE 0 END), 0) AS current_week,
			COALESCE(SUM(CASE WHEN order_date BETWEEN CURRENT_DATE - INTERVAL '13 days' AND CURRENT_DATE - INTERVAL '7 days' THEN total_amount ELSE 0 END), 0) AS last_week
		FROM orders
	`
	err = r.db.QueryRowContext(ctx, comparison).
		Scan(&d.SalesComparison.CurrentWeek, &d.SalesComparison.LastWeek)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	d.TopProducts, err = collect(ctx, r.db, `
		SELECT
			p.product_id,
			p.name AS product_name,
			SUM(oi.quantity) AS units_sold,
			SUM(oi.quantity * oi.price)::numeric(10,2) AS revenue
		FROM order_items oi
		JOIN products p ON p.product_id = oi.product_id
		GROUP BY p.product_id
		ORDER BY units_sold DESC
		LIMIT 3
	`, func(s rowScanner, v *models.TopProduct) error {
		return s.Scan(&v.ProductID, &v.ProductName, &v.UnitsSold, &v.Revenue)
	})
	if err != nil {
		return nil, err
	}

	d.RecentOrders, err = collect(ctx, r.db, `
		SELECT
			o.order_id,
			CONCAT(c.first_name, ' ', c.last_name) AS customer,
			o.status,
			o.total_amount
		FROM orders o
		JOIN customers c ON c.customer_id = o.customer_id
		ORDER BY o.created_at DESC
		LIMIT 5
	`, func(s rowScanner, v *models.RecentOrder) error {
		return s.Scan(&v.OrderID, &v.Customer, &v.Status, &v.TotalAmount)
	})
	if err != nil {
		return nil, err
	}

	d.TopCustomers, err = collect(ctx, r.db, `
		SELECT
			c.customer_id,
			CONCAT(c.first_name, ' ', c.last_name) AS customer,
			COUNT(o.order_id) AS orders,
			SUM(o.total_amount)::numeric(10,2) AS total_spent
		FROM customers c
		JOIN orders o ON o.customer_id = c.customer_id
		GROUP BY c.customer_id
		ORDER BY total_spent DESC
		LIMIT 3
	`, func(s rowScanner, v *models.CustomerSummary) error {
		return s.Scan(&v.CustomerID, &v.Customer, &v.Orders, &v.TotalSpent)
	})
	if err != nil {
		return nil, err
	}

	return d, nil
}

func (r *PostgresRepository) Sales(ctx context.Context) (*models.SalesReport, error) {
	rep := &models.SalesReport{}

	kpis := `
		SELECT
			(SELECT COALESCE(SUM(total_amount), 0) FROM sales) AS sales,
			(SELECT COUNT(*) FROM orders) AS orders,
			(SELECT COALESCE(SUM(quantity), 0) FROM order_items) AS products_sold,
			(SELECT COUNT(*) FROM invoices WHERE status = 'paid') AS invoices_paid
	`
	err := r.db.QueryRowContext(ctx, kpis).
		Scan(&rep.KPIStats.Sales, &rep.KPIStats.Orders, &rep.KPIStats.ProductsSold, &rep.KPIStats.InvoicesPaid)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	rep.SalesOverTime, err = collect(ctx, r.db, `
		SELECT
			TO_CHAR(sale_date, 'Mon') AS month,
			SUM(total_amount) AS sales
		FROM sales
		GROUP BY month
		ORDER BY MIN(sale_date)
	`, func(s rowScanner, v *models.MonthlyAmount) error {
		return s.Scan(&v.Month, &v.Amount)
	})
	if err != nil {
		return nil, err
	}

	rep.TopProducts, err = collect(ctx, r.db, `
		SELECT
			p.name AS name,
			SUM(oi.quantity) AS quantity,
			SUM(oi.price * oi.quantity) AS revenue
		FROM order_items oi
		JOIN products p ON p.product_id = oi.product_id
		GROUP BY p.name
		ORDER BY revenue DESC
		LIMIT 5
	`, func(s rowScanner, v *models.NamedRevenue) error {
		return s.Scan(&v.Name, &v.Quantity, &v.Revenue)
	})
	if err != nil {
		return nil, err
	}

	rep.CategorySales, err = collect(ctx, r.db, `
		SELECT
			c.name AS category,
			SUM(oi.price * oi.quantity) AS total_sales
		FROM order_items oi
		JOIN products p ON p.product_id = oi.product_id
		JOIN categories c ON c.category_id = p.category_id
		GROUP BY c.name
		ORDER BY total_sales DESC
	`, func(s rowScanner, v *models.NamedRevenue) error {
		return s.Scan(&v.Name, &v.Revenue)
	})
	if err != nil {
		return nil, err
	}

	rep.SalesReturns, err = collect(ctx, r.db, `
		SELECT
			return_reason AS reason,
			COUNT(*) AS count
		FROM sales_returns
		GROUP BY return_reason
		ORDER BY count DESC
	`, func(s rowScanner, v *models.ReasonCount) error {
		return s.Scan(&v.Reason, &v.Count)
	})
	if err != nil {
		return nil, err
	}

	rep.MonthlyRevenue, err = collect(ctx, r.db, `
		SELECT
			TO_CHAR(sale_date, 'Mon') AS month,
			payment_method,
			SUM(total_amount) AS revenue
		FROM sales
		GROUP BY month, DATE_TRUNC('month', sale_date), payment_method
		ORDER BY DATE_TRUNC('month', sale_date), payment_method
	`, func(s rowScanner, v *models.MonthlyMethod) error {
		return s.Scan(&v.Month, &v.PaymentMethod, &v.Revenue)
	})
	if err != nil {
		return nil, err
	}

	rep.RevenueByMethod, err = collect(ctx, r.db, `
		SELECT
			payment_method AS method,
			SUM(total_amount) AS revenue
		FROM sales
		GROUP BY payment_method
	`, func(s rowScanner, v *models.MethodRevenue) error {
		return s.Scan(&v.Method, &v.Revenue)
	})
	if err != nil {
		return nil, err
	}

	rep.SalesByCustomer, err = collect(ctx, r.db, `
		SELECT
			CONCAT(c.first_name, ' ', c.last_name) AS customer,
			SUM(s.total_amount) AS total
		FROM sales s
		JOIN orders o ON o.order_id = s.order_id
		JOIN customers c ON c.customer_id = o.customer_id
		GROUP BY customer
		ORDER BY total DESC
		LIMIT 10
	`, func(s rowScanner, v *models.NamedRevenue) error {
		return s.Scan(&v.Name, &v.Revenue)
	})
	if err != nil {
		return nil, err
	}

	return rep, nil
}

func (r *PostgresRepository) Inventory(ctx context.Context) (*models.InventoryReport, error) {
	rep := &models.InventoryReport{}

	err := r.db.QueryRowContext(ctx, `SELECT COUNT(product_id) FROM products`).
		Scan(&rep.TotalProducts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	rep.LowStockProducts, err = collect(ctx, r.db, `
		SELECT name, stock_quantity AS stock
		FROM products
		WHERE stock_quantity <= 5 AND stock_quantity > 0
		ORDER BY stock_quantity ASC
	`, func(s rowScanner, v *models.StockLevel) error {
		return s.Scan(&v.Name, &v.Stock)
	})
	if err != nil {
		return nil, err
	}

	rep.OutOfStockProducts, err = collect(ctx, r.db, `
		SELECT name
		FROM products
		WHERE stock_quantity = 0
	`, func(s rowScanner, v *string) error {
		return s.Scan(v)
	})
	if err != nil {
		return nil, err
	}

	rep.RecentChanges, err = collect(ctx, r.db, `
		SELECT
			name,
			stock_quantity AS new_qty,
			TO_CHAR(updated_at::date, 'YYYY-MM-DD') AS updated_at
		FROM products
		WHERE updated_at >= NOW() - INTERVAL '7 days'
		ORDER BY updated_at DESC
		LIMIT 10
	`, func(s rowScanner, v *models.StockChange) error {
		return s.Scan(&v.Name, &v.NewQty, &v.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}

	rep.ReturnedProducts, err = collect(ctx, r.db, `
		SELECT
			p.name,
			sr.returned_quantity AS qty,
			sr.return_reason AS reason,
			TO_CHAR(sr.return_date::date, 'YYYY-MM-DD') AS date
		FROM sales_returns sr
		JOIN order_items oi ON sr.order_item_id = oi.order_item_id
		JOIN products p ON oi.product_id = p.product_id
		WHERE sr.status = 'Completed'
		ORDER BY sr.return_date DESC
		LIMIT 10
	`, func(s rowScanner, v *models.ReturnedStock) error {
		return s.Scan(&v.Name, &v.Qty, &v.Reason, &v.Date)
	})
	if err != nil {
		return nil, err
	}

	rep.InventoryMovement, err = collect(ctx, r.db, `
		SELECT
			TO_CHAR(day, 'Mon DD') AS date,
			COALESCE(sales_sum, 0) AS sales,
			COALESCE(returns_sum, 0) AS returns
		FROM generate_series(
			CURRENT_DATE - INTERVAL '14 days',
			CURRENT_DATE,
			'1 day'
		) AS day
		LEFT JOIN (
			SELECT sale_date::date AS sale_day, SUM(oi.quantity) AS sales_sum
			FROM sales s
			JOIN order_items oi ON s.order_id = oi.order_id
			GROUP BY sale_day
		) sales_data ON day = sales_data.sale_day
		LEFT JOIN (
			SELECT return_date::date AS return_day, SUM(returned_quantity) AS returns_sum
			FROM sales_returns
			GROUP BY return_day
		) returns_data ON day = returns_data.return_day
		ORDER BY day
	`, func(s rowScanner, v *models.DailyMovement) error {
		return s.Scan(&v.Date, &v.Sales, &v.Returns)
	})
	if err != nil {
		return nil, err
	}

	return rep, nil
}

func (r *PostgresRepository) ProfitLoss(ctx context.Context) (*models.ProfitLossReport, error) {
	rep := &models.ProfitLossReport{}

	kpis := `
		WITH revenue_cte AS (
			SELECT COALESCE(SUM(total_amount), 0) AS revenue FROM sales
		),
		cogs_cte AS (
			SELECT COALESCE(SUM(p.cost_price * oi.quantity), 0) AS cogs
			FROM order_items oi
			JOIN products p ON p.product_id = oi.product_id
		),
		returns_cte AS (
			SELECT COALESCE(SUM(p.price * sr.returned_quantity), 0) AS returns
			FROM sales_returns sr
			JOIN order_items oi ON sr.order_item_id = oi.order_item_id
			JOIN products p ON oi.product_id = p.product_id
		)
		SELECT
			r.revenue,
			c.cogs,
			rt.returns,
			(r.revenue - c.cogs) AS gross_profit,
			(r.revenue - c.cogs - rt.returns) AS net_profit
		FROM revenue_cte r, cogs_cte c, returns_cte rt
	`
	err := r.db.QueryRowContext(ctx, kpis).
		Scan(&rep.KPIStats.Revenue, &rep.KPIStats.COGS, &rep.KPIStats.Returns,
			&rep.KPIStats.GrossProfit, &rep.KPIStats.NetProfit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	rep.MonthlyBreakdown, err = collect(ctx, r.db, `
		SELECT
			TO_CHAR(s.sale_date, 'Mon') AS month,
			SUM(s.total_amount) AS revenue,
			SUM(p.cost_price * oi.quantity) AS cogs,
			COALESCE(SUM(p.price * sr.returned_quantity), 0) AS returns
		FROM sales s
		JOIN orders o ON o.order_id = s.order_id
		JOIN order_items oi ON oi.order_id = o.order_id
		JOIN products p ON p.product_id = oi.product_id
		LEFT JOIN sales_returns sr ON sr.order_item_id = oi.order_item_id
		GROUP BY month, DATE_TRUNC('month', s.sale_date)
		ORDER BY DATE_TRUNC('month', s.sale_date)
	`, func(s rowScanner, v *models.MonthlyProfitLoss) error {
		return s.Scan(&v.Month, &v.Revenue, &v.COGS, &v.Returns)
	})
	if err != nil {
		return nil, err
	}

	return rep, nil
}

func (r *PostgresRepository) Annual(ctx context.Context) (*models.AnnualReport, error) {
	rep := &models.AnnualReport{}

	totals := `
		SELECT
			(SELECT COUNT(sale_id) FROM sales) AS total_sales,
			(SELECT COUNT(order_id) FROM orders) AS total_orders,
			(SELECT COALESCE(SUM(total_amount), 0) FROM sales) AS total_revenue,
			(SELECT COUNT(return_id) FROM sales_returns WHERE status = 'Completed') AS total_returns
	`
	err := r.db.QueryRowContext(ctx, totals).
		Scan(&rep.TotalSales, &rep.TotalOrders, &rep.TotalRevenue, &rep.TotalReturns)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	invoiceStats := `
		SELECT
			COUNT(CASE WHEN status = 'paid' THEN 1 END) AS paid,
			COUNT(CASE WHEN status = 'unpaid' THEN 1 END) AS unpaid,
			COUNT(CASE WHEN status = 'partial' THEN 1 END) AS partial
		FROM invoices
	`
	err = r.db.QueryRowContext(ctx, invoiceStats).
		Scan(&rep.InvoiceStats.Paid, &rep.InvoiceStats.Unpaid, &rep.InvoiceStats.Partial)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	rep.MonthlyRevenue, err = collect(ctx, r.db, `
		SELECT
			TO_CHAR(sale_date, 'Mon') AS month,
			SUM(total_amount) AS amount
		FROM sales
		GROUP BY EXTRACT(MONTH FROM sale_date), TO_CHAR(sale_date, 'Mon')
		ORDER BY EXTRACT(MONTH FROM sale_date)
	`, func(s rowScanner, v *models.MonthlyAmount) error {
		return s.Scan(&v.Month, &v.Amount)
	})
	if err != nil {
		return nil, err
	}

	rep.MonthlyOrders, err = collect(ctx, r.db, `
		SELECT
			TO_CHAR(order_date, 'Mon') AS month,
			COUNT(order_id) AS count
		FROM orders
		GROUP BY EXTRACT(MONTH FROM order_date), TO_CHAR(order_date, 'Mon')
		ORDER BY EXTRACT(MONTH FROM order_date)
	`, func(s rowScanner, v *models.MonthlyCount) error {
		return s.Scan(&v.Month, &v.Count)
	})
	if err != nil {
		return nil, err
	}

	rep.CategorySales, err = collect(ctx, r.db, `
		SELECT
			c.name,
			SUM(oi.price * oi.quantity) AS total
		FROM order_items oi
		JOIN products p ON oi.product_id = p.product_id
		JOIN categories c ON p.category_id = c.category_id
		GROUP BY c.name
		ORDER BY total DESC
	`, func(s rowScanner, v *models.NamedRevenue) error {
		return s.Scan(&v.Name, &v.Revenue)
	})
	if err != nil {
		return nil, err
	}

	rep.BrandSales, err = collect(ctx, r.db, `
		SELECT
			b.name,
			SUM(oi.price * oi.quantity) AS total
		FROM order_items oi
		JOIN products p ON oi.product_id = p.product_id
		JOIN brands b ON p.brand_id = b.brand_id
		GROUP BY b.name
		ORDER BY total DESC
	`, func(s rowScanner, v *models.NamedRevenue) error {
		return s.Scan(&v.Name, &v.Revenue)
	})
	if err != nil {
		return nil, err
	}

	return rep, nil
}
