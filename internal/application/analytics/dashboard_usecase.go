package analytics

import (
	"context"
	"time"

	"github.com/jfcardenas/inventra/internal/application/dto"
	"github.com/jfcardenas/inventra/internal/domain"
	"github.com/jfcardenas/inventra/internal/domain/entity"
	"github.com/jfcardenas/inventra/internal/domain/repository"
)

// DashboardUseCase consultas de lectura para el dashboard y la analítica de
// compras/ventas. No modifica datos.
type DashboardUseCase struct {
	repo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetStats conteos globales, totales de ingresos/egresos y series mensuales
// de los últimos 6 meses.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	counts, err := uc.repo.CountEntities(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := uc.repo.SumByKind(ctx, entity.KindSale, nil, nil)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.repo.SumByKind(ctx, entity.KindPurchase, nil, nil)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, -6, 0)
	monthlySales, err := uc.repo.MonthlyTotals(ctx, entity.KindSale, since)
	if err != nil {
		return nil, err
	}
	monthlyPurchases, err := uc.repo.MonthlyTotals(ctx, entity.KindPurchase, since)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalProducts:    counts.Products,
		TotalSellers:     counts.Sellers,
		TotalSales:       counts.Sales,
		TotalPurchases:   counts.Purchases,
		TotalRevenue:     revenue,
		TotalExpenses:    expenses,
		TotalProfit:      revenue.Sub(expenses),
		MonthlySales:     toMonthlyDTOs(monthlySales),
		MonthlyPurchases: toMonthlyDTOs(monthlyPurchases),
	}, nil
}

// GetTransactionAnalytics resumen de un tipo de transacción en un rango de
// fechas opcional: agregados globales más productos top (ventas) o
// proveedores top (compras).
func (uc *DashboardUseCase) GetTransactionAnalytics(ctx context.Context, kind, startDate, endDate string) (*dto.TransactionAnalyticsResponse, error) {
	if !entity.ValidKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	summary, err := uc.repo.SummarizeKind(ctx, kind, start, end)
	if err != nil {
		return nil, err
	}

	out := &dto.TransactionAnalyticsResponse{}
	out.Summary.Count = summary.Count
	out.Summary.TotalAmount = summary.TotalAmount
	out.Summary.AverageAmount = summary.AverageAmount
	out.Summary.TotalQuantity = summary.TotalQuantity

	const topLimit = 10
	if kind == entity.KindSale {
		top, err := uc.repo.TopProducts(ctx, start, end, topLimit)
		if err != nil {
			return nil, err
		}
		for _, p := range top {
			out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
				ProductID:    p.ProductID,
				ProductName:  p.ProductName,
				TotalQty:     p.TotalQty,
				TotalRevenue: p.TotalRevenue,
			})
		}
	} else {
		top, err := uc.repo.TopCounterparties(ctx, kind, start, end, topLimit)
		if err != nil {
			return nil, err
		}
		for _, c := range top {
			out.TopCounterparties = append(out.TopCounterparties, dto.TopCounterpartyDTO{
				Name:        c.Name,
				Count:       c.Count,
				TotalAmount: c.TotalAmount,
			})
		}
	}
	return out, nil
}

func parseDateRange(startDate, endDate string) (start, end *time.Time, err error) {
	if startDate != "" {
		s, perr := time.Parse("2006-01-02", startDate)
		if perr != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		start = &s
	}
	if endDate != "" {
		e, perr := time.Parse("2006-01-02", endDate)
		if perr != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		// Fin inclusivo: cubre el día completo
		e = e.Add(24 * time.Hour)
		end = &e
	}
	return start, end, nil
}

func toMonthlyDTOs(in []repository.MonthlyTotal) []dto.MonthlyTotalDTO {
	out := make([]dto.MonthlyTotalDTO, 0, len(in))
	for _, m := range in {
		out = append(out, dto.MonthlyTotalDTO{Year: m.Year, Month: m.Month, Total: m.Total})
	}
	return out
}
