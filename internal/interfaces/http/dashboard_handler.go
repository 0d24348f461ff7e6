package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfcardenas/inventra/internal/application/analytics"
	"github.com/jfcardenas/inventra/internal/domain/entity"
)

// DashboardHandler expone los agregados del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Estadísticas generales
// @Description  Conteos, ingresos, gastos, ganancia y serie mensual.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// GetSalesAnalytics godoc
// @Summary      Analítica de ventas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD (inclusivo)"
// @Success      200         {object}  dto.TransactionAnalyticsResponse
// @Router       /api/sales/analytics [get]
func (h *DashboardHandler) GetSalesAnalytics(c *fiber.Ctx) error {
	out, err := h.uc.GetTransactionAnalytics(c.Context(), entity.KindSale, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// GetPurchasesAnalytics godoc
// @Summary      Analítica de compras
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD (inclusivo)"
// @Success      200         {object}  dto.TransactionAnalyticsResponse
// @Router       /api/purchases/analytics [get]
func (h *DashboardHandler) GetPurchasesAnalytics(c *fiber.Ctx) error {
	out, err := h.uc.GetTransactionAnalytics(c.Context(), entity.KindPurchase, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
