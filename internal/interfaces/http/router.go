package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfcardenas/inventra/internal/application/analytics"
	"github.com/jfcardenas/inventra/internal/application/auth"
	"github.com/jfcardenas/inventra/internal/application/inventory"
	"github.com/jfcardenas/inventra/internal/application/usecase"
	"github.com/jfcardenas/inventra/internal/domain/entity"
	"github.com/jfcardenas/inventra/internal/ws"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	TxUC        *inventory.TransactionUseCase
	BrandUC     *usecase.BrandUseCase
	CategoryUC  *usecase.CategoryUseCase
	SellerUC    *usecase.SellerUseCase
	DashboardUC *analytics.DashboardUseCase
	Hub         *ws.Hub
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/verify", authHandler.Verify)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.TxUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/stock", productHandler.AdjustStock)

	// Dashboard y analítica (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)

	// Purchases (protegido)
	purchases := protected.Group("/purchases")
	purchaseHandler := NewTransactionHandler(deps.TxUC, entity.KindPurchase)
	purchases.Get("/analytics", dashboardHandler.GetPurchasesAnalytics)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", purchaseHandler.Update)
	purchases.Delete("/:id", purchaseHandler.Delete)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewTransactionHandler(deps.TxUC, entity.KindSale)
	sales.Get("/analytics", dashboardHandler.GetSalesAnalytics)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	// Catálogo (protegido)
	catalogHandler := NewCatalogHandler(deps.BrandUC, deps.CategoryUC, deps.SellerUC)

	brands := protected.Group("/brands")
	brands.Post("/", catalogHandler.CreateBrand)
	brands.Get("/", catalogHandler.ListBrands)
	brands.Get("/:id", catalogHandler.GetBrand)
	brands.Put("/:id", catalogHandler.UpdateBrand)
	brands.Delete("/:id", catalogHandler.DeleteBrand)

	categories := protected.Group("/categories")
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)
	categories.Get("/:id", catalogHandler.GetCategory)
	categories.Put("/:id", catalogHandler.UpdateCategory)
	categories.Delete("/:id", catalogHandler.DeleteCategory)

	sellers := protected.Group("/sellers")
	sellers.Post("/", catalogHandler.CreateSeller)
	sellers.Get("/", catalogHandler.ListSellers)
	sellers.Get("/:id", catalogHandler.GetSeller)
	sellers.Put("/:id", catalogHandler.UpdateSeller)
	sellers.Delete("/:id", catalogHandler.DeleteSeller)

	// Feed de stock por websocket (el upgrade pasa por el mismo middleware Bearer)
	wsHandler := NewWSHandler(deps.Hub)
	protected.Use("/ws/inventory", wsHandler.Upgrade)
	protected.Get("/ws/inventory", wsHandler.Stream())
}
