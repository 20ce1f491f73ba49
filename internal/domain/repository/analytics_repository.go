package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DistributionTotals sumas del historial de distribuciones.
type DistributionTotals struct {
	Count               int
	TotalSale           decimal.Decimal
	TotalPartnerProfit  decimal.Decimal
	TotalSupplierProfit decimal.Decimal
	TotalSupplierReturn decimal.Decimal
}

// ProductMargin agregado de las ventas de un producto en el período.
type ProductMargin struct {
	ProductID    string
	ProductName  string // nombre de la venta más reciente
	SaleCount    int
	QuantitySold decimal.Decimal
	Revenue      decimal.Decimal
	Cost         decimal.Decimal
	Profit       decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el resumen financiero.
// Las fechas son inclusivas; sin registros en el período devuelven cero.
type AnalyticsRepository interface {
	// GetSalesMetrics ingresos y costo FIFO de las ventas del período.
	GetSalesMetrics(ctx context.Context, from, to time.Time) (revenue, cost decimal.Decimal, err error)
	// GetExpensesTotal suma de gastos del período.
	GetExpensesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	GetDistributionTotals(ctx context.Context, from, to time.Time) (DistributionTotals, error)
	// GetProductMargins agregados por producto, ganancia descendente, a lo sumo limit filas.
	GetProductMargins(ctx context.Context, from, to time.Time, limit int) ([]ProductMargin, error)
}

// Repositories agrupa todos los repositorios atados a una misma transacción.
type Repositories struct {
	Products      ProductRepository
	Lots          LotRepository
	Sales         SaleRepository
	Expenses      ExpenseRepository
	Distributions DistributionRepository
}
