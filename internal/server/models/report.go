package models

// Dashboard aggregates the landing-page widgets into one payload.
type Dashboard struct {
	KPIs            DashboardKPIs     `json:"kpis"`
	WeeklySales     []DailyAmount     `json:"weekly_sales"`
	OrderStatus     []StatusCount     `json:"order_status"`
	PaymentMethods  []MethodCount     `json:"payment_methods"`
	SalesComparison WeeklyComparison  `json:"sales_comparison"`
	TopProducts     []TopProduct      `json:"top_products"`
	RecentOrders    []RecentOrder     `json:"recent_orders"`
	TopCustomers    []CustomerSummary `json:"top_customers"`
}

type DashboardKPIs struct {
	TotalSales   float64 `json:"total_sales"`
	TotalOrders  int     `json:"total_orders"`
	TotalReturns int     `json:"total_returns"`
}

type DailyAmount struct {
	Day    string  `json:"day"`
	Amount float64 `json:"amount"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type MethodCount struct {
	Method string `json:"method"`
	Count  int    `json:"count"`
}

type WeeklyComparison struct {
	CurrentWeek float64 `json:"current_week"`
	LastWeek    float64 `json:"last_week"`
}

type TopProduct struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitsSold   int     `json:"units_sold"`
	Revenue     float64 `json:"revenue"`
}

type RecentOrder struct {
	OrderID     string  `json:"order_id"`
	Customer    string  `json:"customer"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"total_amount"`
}

type CustomerSummary struct {
	CustomerID string  `json:"customer_id"`
	Customer   string  `json:"customer"`
	Orders     int     `json:"orders"`
	TotalSpent float64 `json:"total_spent"`
}

// SalesReport is the /reports/sales payload.
type SalesReport struct {
	KPIStats        SalesKPIs       `json:"kpiStats"`
	SalesOverTime   []MonthlyAmount `json:"salesOverTime"`
	TopProducts     []NamedRevenue  `json:"topProducts"`
	CategorySales   []NamedRevenue  `json:"categorySales"`
	SalesReturns    []ReasonCount   `json:"salesReturns"`
	MonthlyRevenue  []MonthlyMethod `json:"monthlyRevenue"`
	RevenueByMethod []MethodRevenue `json:"revenueByPaymentMethod"`
	SalesByCustomer []NamedRevenue  `json:"salesByCustomer"`
}

type SalesKPIs struct {
	Sales        float64 `json:"sales"`
	Orders       int     `json:"orders"`
	ProductsSold int     `json:"products_sold"`
	InvoicesPaid int     `json:"invoices_paid"`
}

type MonthlyAmount struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type NamedRevenue struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity,omitempty"`
	Revenue  float64 `json:"revenue"`
}

type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

type MonthlyMethod struct {
	Month         string  `json:"month"`
	PaymentMethod string  `json:"paymentMethod"`
	Revenue       float64 `json:"revenue"`
}

type MethodRevenue struct {
	Method  string  `json:"method"`
	Revenue float64 `json:"revenue"`
}

// InventoryReport is the /reports/inventory payload.
type InventoryReport struct {
	TotalProducts      int              `json:"totalProducts"`
	LowStockProducts   []StockLevel     `json:"lowStockProducts"`
	OutOfStockProducts []string         `json:"outOfStockProducts"`
	RecentChanges      []StockChange    `json:"recentChanges"`
	ReturnedProducts   []ReturnedStock  `json:"returnedProducts"`
	InventoryMovement  []DailyMovement  `json:"inventoryMovement"`
}

type StockLevel struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

type StockChange struct {
	Name      string `json:"name"`
	NewQty    int    `json:"newQty"`
	UpdatedAt string `json:"updatedAt"`
}

type ReturnedStock struct {
	Name   string `json:"name"`
	Qty    int    `json:"qty"`
	Reason string `json:"reason"`
	Date   string `json:"date"`
}

type DailyMovement struct {
	Date    string `json:"date"`
	Sales   int    `json:"sales"`
	Returns int    `json:"returns"`
}

// ProfitLossReport is the /reports/profit-loss payload.
type ProfitLossReport struct {
	KPIStats         ProfitLossKPIs      `json:"kpiStats"`
	MonthlyBreakdown []MonthlyProfitLoss `json:"monthlyBreakdown"`
}

type ProfitLossKPIs struct {
	Revenue     float64 `json:"revenue"`
	COGS        float64 `json:"cogs"`
	Returns     float64 `json:"returns"`
	GrossProfit float64 `json:"gross_profit"`
	NetProfit   float64 `json:"net_profit"`
}

type MonthlyProfitLoss struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	COGS    float64 `json:"cogs"`
	Returns float64 `json:"returns"`
}

// AnnualReport is the /reports/annual payload.
type AnnualReport struct {
	TotalSales     int             `json:"totalSales"`
	TotalOrders    int             `json:"totalOrders"`
	TotalRevenue   float64         `json:"totalRevenue"`
	TotalReturns   int             `json:"totalReturns"`
	InvoiceStats   InvoiceStats    `json:"invoiceStats"`
	MonthlyRevenue []MonthlyAmount `json:"monthlyRevenue"`
	MonthlyOrders  []MonthlyCount  `json:"monthlyOrders"`
	CategorySales  []NamedRevenue  `json:"categorySales"`
	BrandSales     []NamedRevenue  `json:"brandSales"`
}

type InvoiceStats struct {
	Paid    int `json:"paid"`
	Unpaid  int `json:"unpaid"`
	Partial int `json:"partial"`
}
