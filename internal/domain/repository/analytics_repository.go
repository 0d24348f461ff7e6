package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EntityCounts conteos globales para el dashboard.
type EntityCounts struct {
	Products  int64
	Sellers   int64
	Sales     int64
	Purchases int64
}

// KindSummary agregado de transacciones de un tipo en un período.
type KindSummary struct {
	Count         int64
	TotalAmount   decimal.Decimal // suma de total
	AverageAmount decimal.Decimal // promedio de total
	TotalQuantity int64           // suma de quantity
}

// MonthlyTotal total transaccionado en un mes calendario.
type MonthlyTotal struct {
	Year  int
	Month int
	Total decimal.Decimal
}

// TopProductResult producto ordenado por ingreso de ventas.
type TopProductResult struct {
	ProductID    string
	ProductName  string
	TotalQty     int64
	TotalRevenue decimal.Decimal
}

// TopCounterpartyResult contraparte (proveedor/vendedor) ordenada por monto.
type TopCounterpartyResult struct {
	Name        string
	Count       int64
	TotalAmount decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para dashboard y analítica.
type AnalyticsRepository interface {
	// CountEntities devuelve los conteos de productos, vendedores, ventas y compras.
	CountEntities(ctx context.Context) (EntityCounts, error)

	// SumByKind devuelve la suma de totales de un tipo de transacción.
	// Rango de fechas opcional (nil = sin límite).
	SumByKind(ctx context.Context, kind string, start, end *time.Time) (decimal.Decimal, error)

	// SummarizeKind devuelve count/sum/avg/qty de un tipo en el período.
	SummarizeKind(ctx context.Context, kind string, start, end *time.Time) (KindSummary, error)

	// MonthlyTotals serie mensual de totales de un tipo desde `since`.
	MonthlyTotals(ctx context.Context, kind string, since time.Time) ([]MonthlyTotal, error)

	// TopProducts productos con mayor ingreso por ventas en el período.
	TopProducts(ctx context.Context, start, end *time.Time, limit int) ([]TopProductResult, error)

	// TopCounterparties contrapartes con mayor monto para un tipo en el período
	// (proveedores en compras, vendedores en ventas).
	TopCounterparties(ctx context.Context, kind string, start, end *time.Time, limit int) ([]TopCounterpartyResult, error)
}
