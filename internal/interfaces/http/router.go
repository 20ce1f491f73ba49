package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/gestion-carnes/internal/application/analytics"
	"github.com/jhoicas/gestion-carnes/internal/application/distribution"
	"github.com/jhoicas/gestion-carnes/internal/application/inventory"
	"github.com/jhoicas/gestion-carnes/internal/application/reports"
	"github.com/jhoicas/gestion-carnes/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	PurchaseUC     *inventory.PurchaseUseCase
	SaleUC         *inventory.SaleUseCase
	StockUC        *inventory.StockUseCase
	ExpenseUC      *usecase.ExpenseUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	MarginsUC      *appanalytics.MarginsUseCase
	DistributionUC *distribution.UseCase
	CatalogUC      *usecase.CatalogUseCase
	ReportsUC      *reports.UseCase
}

// ErrorHandler devuelve el ErrorHandler de Fiber que responde con dto.ErrorResponse.
func ErrorHandler() fiber.ErrorHandler {
	return errorHandler
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	purchases := api.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Register)
	purchases.Get("/", purchaseHandler.List)
	purchases.Delete("/:id", purchaseHandler.Delete)

	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Register)
	sales.Get("/", saleHandler.List)
	sales.Delete("/:id", saleHandler.Delete)

	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockUC)
	invGroup.Get("/stock", inventoryHandler.Stock)
	invGroup.Get("/average-cost", inventoryHandler.AverageCost)

	expenses := api.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Delete("/:id", expenseHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.GetSummary)

	analyticsHandler := NewAnalyticsHandler(deps.MarginsUC)
	api.Get("/analytics/products", analyticsHandler.GetProductMargins)

	distributions := api.Group("/distributions")
	distributionHandler := NewDistributionHandler(deps.DistributionUC)
	distributions.Post("/calculate", distributionHandler.Calculate)
	distributions.Get("/defaults/:productId", distributionHandler.Defaults)
	distributions.Post("/", distributionHandler.Register)
	distributions.Get("/", distributionHandler.List)
	distributions.Delete("/:id", distributionHandler.Delete)

	reportsGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/sales.xlsx", reportHandler.SalesXLSX)
	reportsGroup.Get("/distributions.xlsx", reportHandler.DistributionsXLSX)
	reportsGroup.Get("/distributions.pdf", reportHandler.SettlementPDF)

	// Catálogo (público, sin datos de costo)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/catalog", catalogHandler.List)
}
