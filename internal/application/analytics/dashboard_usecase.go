// Package analytics contiene el resumen financiero del negocio: ventas, costo FIFO,
// gastos, resultado neto y distribuciones.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
	"github.com/jhoicas/gestion-carnes/pkg/format"
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase genera el resumen financiero de un período.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardDTO del rango indicado (vacío = todo el historial).
//
// Tres llamadas en paralelo:
//  1. GetSalesMetrics        → ingresos y costo de lo vendido
//  2. GetExpensesTotal       → gastos
//  3. GetDistributionTotals  → sumas de distribuciones
func (uc *DashboardUseCase) GetSummary(ctx context.Context, rng dto.DateRange) (*dto.DashboardDTO, error) {
	from, to, err := format.ParseRange(rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	// ── Goroutines para paralelizar las 3 consultas ───────────────────────────
	type metricsResult struct {
		revenue decimal.Decimal
		cost    decimal.Decimal
		err     error
	}
	type expensesResult struct {
		total decimal.Decimal
		err   error
	}
	type distributionsResult struct {
		totals repository.DistributionTotals
		err    error
	}

	salesCh := make(chan metricsResult, 1)
	expensesCh := make(chan expensesResult, 1)
	distCh := make(chan distributionsResult, 1)

	go func() {
		rev, cost, err := uc.analyticsRepo.GetSalesMetrics(ctx, from, to)
		salesCh <- metricsResult{rev, cost, err}
	}()
	go func() {
		total, err := uc.analyticsRepo.GetExpensesTotal(ctx, from, to)
		expensesCh <- expensesResult{total, err}
	}()
	go func() {
		totals, err := uc.analyticsRepo.GetDistributionTotals(ctx, from, to)
		distCh <- distributionsResult{totals, err}
	}()

	sales := <-salesCh
	expenses := <-expensesCh
	dist := <-distCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de ventas: %w", sales.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("dashboard: gastos: %w", expenses.err)
	}
	if dist.err != nil {
		return nil, fmt.Errorf("dashboard: distribuciones: %w", dist.err)
	}

	// ── Resultado ─────────────────────────────────────────────────────────────
	gross := sales.revenue.Sub(sales.cost)
	net := gross.Sub(expenses.total)
	marginPct := decimal.Zero
	if sales.revenue.GreaterThan(decimal.Zero) {
		marginPct = gross.Div(sales.revenue).Mul(hundred).Round(2)
	}

	return &dto.DashboardDTO{
		From:            dateLabel(from),
		To:              dateLabel(to),
		Revenue:         sales.revenue.Round(2),
		CostOfGoodsSold: sales.cost.Round(2),
		GrossProfit:     gross.Round(2),
		Expenses:        expenses.total.Round(2),
		NetResult:       net.Round(2),
		GrossMarginPct:  marginPct,
		Distributions: dto.DistributionTotalsDTO{
			Count:               dist.totals.Count,
			TotalSale:           dist.totals.TotalSale.Round(2),
			TotalPartnerProfit:  dist.totals.TotalPartnerProfit.Round(2),
			TotalSupplierProfit: dist.totals.TotalSupplierProfit.Round(2),
			TotalSupplierReturn: dist.totals.TotalSupplierReturn.Round(2),
		},
	}, nil
}

func dateLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(format.DateLayout)
}
