package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse respuesta de GET /api/dashboard/stats.
type DashboardStatsResponse struct {
	TotalProducts    int64           `json:"total_products"`
	TotalSellers     int64           `json:"total_sellers"`
	TotalSales       int64           `json:"total_sales"`
	TotalPurchases   int64           `json:"total_purchases"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	TotalProfit      decimal.Decimal `json:"total_profit"`
	MonthlySales     []MonthlyTotalDTO `json:"monthly_sales"`
	MonthlyPurchases []MonthlyTotalDTO `json:"monthly_purchases"`
}

// MonthlyTotalDTO punto de la serie mensual.
type MonthlyTotalDTO struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// TransactionAnalyticsResponse respuesta de GET /api/purchases/analytics y /api/sales/analytics.
type TransactionAnalyticsResponse struct {
	Summary struct {
		Count         int64           `json:"count"`
		TotalAmount   decimal.Decimal `json:"total_amount"`
		AverageAmount decimal.Decimal `json:"average_amount"`
		TotalQuantity int64           `json:"total_quantity"`
	} `json:"summary"`
	TopProducts       []TopProductDTO      `json:"top_products,omitempty"`
	TopCounterparties []TopCounterpartyDTO `json:"top_counterparties,omitempty"`
}

// TopProductDTO producto destacado por ingreso.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	TotalQty     int64           `json:"total_quantity"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// TopCounterpartyDTO contraparte destacada por monto.
type TopCounterpartyDTO struct {
	Name        string          `json:"name"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
