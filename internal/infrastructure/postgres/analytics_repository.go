package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jfcardenas/inventra/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para dashboard y analítica de
// compras/ventas. No modifica datos.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountEntities conteos de productos, vendedores, ventas y compras.
func (r *AnalyticsRepo) CountEntities(ctx context.Context) (repository.EntityCounts, error) {
	const query = `
	SELECT
	    (SELECT count(*) FROM products)                            AS products,
	    (SELECT count(*) FROM sellers)                             AS sellers,
	    (SELECT count(*) FROM transactions WHERE kind = 'SALE')     AS sales,
	    (SELECT count(*) FROM transactions WHERE kind = 'PURCHASE') AS purchases`

	var c repository.EntityCounts
	err := r.pool.QueryRow(ctx, query).Scan(&c.Products, &c.Sellers, &c.Sales, &c.Purchases)
	if err != nil {
		return repository.EntityCounts{}, fmt.Errorf("analytics.CountEntities: %w", err)
	}
	return c, nil
}

// SumByKind suma de totales de un tipo de transacción. COALESCE devuelve
// cero si no hay filas en el período.
func (r *AnalyticsRepo) SumByKind(ctx context.Context, kind string, start, end *time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(total), 0) FROM transactions WHERE kind = $1`
	args := []any{kind}
	query, args = appendDateRange(query, args, start, end)

	var sum decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.SumByKind: %w", err)
	}
	return sum, nil
}

// SummarizeKind count/sum/avg/qty de un tipo de transacción en el período.
func (r *AnalyticsRepo) SummarizeKind(ctx context.Context, kind string, start, end *time.Time) (repository.KindSummary, error) {
	query := `
	SELECT
	    count(*)                    AS cnt,
	    COALESCE(SUM(total), 0)    AS total_amount,
	    COALESCE(AVG(total), 0)    AS average_amount,
	    COALESCE(SUM(quantity), 0) AS total_quantity
	FROM transactions WHERE kind = $1`
	args := []any{kind}
	query, args = appendDateRange(query, args, start, end)

	var s repository.KindSummary
	err := r.pool.QueryRow(ctx, query, args...).Scan(&s.Count, &s.TotalAmount, &s.AverageAmount, &s.TotalQuantity)
	if err != nil {
		return repository.KindSummary{}, fmt.Errorf("analytics.SummarizeKind: %w", err)
	}
	return s, nil
}

// MonthlyTotals serie mensual de totales de un tipo desde `since`.
func (r *AnalyticsRepo) MonthlyTotals(ctx context.Context, kind string, since time.Time) ([]repository.MonthlyTotal, error) {
	const query = `
	SELECT
	    EXTRACT(YEAR FROM created_at)::int  AS year,
	    EXTRACT(MONTH FROM created_at)::int AS month,
	    COALESCE(SUM(total), 0)             AS total
	FROM transactions
	WHERE kind = $1 AND created_at >= $2
	GROUP BY 1, 2
	ORDER BY 1, 2`

	rows, err := r.pool.Query(ctx, query, kind, since)
	if err != nil {
		return nil, fmt.Errorf("analytics.MonthlyTotals: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyTotal
	for rows.Next() {
		var m repository.MonthlyTotal
		if err := rows.Scan(&m.Year, &m.Month, &m.Total); err != nil {
			return nil, fmt.Errorf("analytics.MonthlyTotals scan: %w", err)
		}
		results = append(results, m)
	}
	return results, rows.Err()
}

// TopProducts productos con mayor ingreso por ventas en el período.
func (r *AnalyticsRepo) TopProducts(ctx context.Context, start, end *time.Time, limit int) ([]repository.TopProductResult, error) {
	query := `
	SELECT
	    product_id,
	    MAX(product_name)        AS product_name,
	    COALESCE(SUM(quantity), 0) AS total_qty,
	    COALESCE(SUM(total), 0)    AS total_revenue
	FROM transactions WHERE kind = 'SALE'`
	args := []any{}
	query, args = appendDateRange(query, args, start, end)
	query += fmt.Sprintf(` GROUP BY product_id ORDER BY total_revenue DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var p repository.TopProductResult
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.TotalQty, &p.TotalRevenue); err != nil {
			return nil, fmt.Errorf("analytics.TopProducts scan: %w", err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// TopCounterparties contrapartes con mayor monto para un tipo en el período.
func (r *AnalyticsRepo) TopCounterparties(ctx context.Context, kind string, start, end *time.Time, limit int) ([]repository.TopCounterpartyResult, error) {
	query := `
	SELECT
	    counterparty_name,
	    count(*)                AS cnt,
	    COALESCE(SUM(total), 0) AS total_amount
	FROM transactions WHERE kind = $1 AND counterparty_name <> ''`
	args := []any{kind}
	query, args = appendDateRange(query, args, start, end)
	query += fmt.Sprintf(` GROUP BY counterparty_name ORDER BY total_amount DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopCounterparties: %w", err)
	}
	defer rows.Close()

	var results []repository.TopCounterpartyResult
	for rows.Next() {
		var c repository.TopCounterpartyResult
		if err := rows.Scan(&c.Name, &c.Count, &c.TotalAmount); err != nil {
			return nil, fmt.Errorf("analytics.TopCounterparties scan: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// appendDateRange añade filtros de rango de fechas sobre created_at.
func appendDateRange(query string, args []any, start, end *time.Time) (string, []any) {
	if start != nil {
		args = append(args, *start)
		query += fmt.Sprintf(` AND created_at >= $%d`, len(args))
	}
	if end != nil {
		args = append(args, *end)
		query += fmt.Sprintf(` AND created_at < $%d`, len(args))
	}
	return query, args
}
