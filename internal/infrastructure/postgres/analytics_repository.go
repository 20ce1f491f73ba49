package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el resumen financiero.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetSalesMetrics ingresos y costo FIFO de las ventas del período.
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	from, to = dateBounds(from, to)
	const query = `
	SELECT
	    COALESCE(SUM(revenue),    0) AS revenue,
	    COALESCE(SUM(cost_basis), 0) AS cost
	FROM sales
	WHERE sale_date BETWEEN $1 AND $2`

	var revenue, cost decimal.Decimal
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&revenue, &cost); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetSalesMetrics: %w", err)
	}
	return revenue, cost, nil
}

// GetExpensesTotal suma de gastos del período.
func (r *AnalyticsRepo) GetExpensesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	from, to = dateBounds(from, to)
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date BETWEEN $1 AND $2`, from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("analytics.GetExpensesTotal: %w", err)
	}
	return total, nil
}

// GetDistributionTotals sumas del historial de distribuciones del período.
func (r *AnalyticsRepo) GetDistributionTotals(ctx context.Context, from, to time.Time) (repository.DistributionTotals, error) {
	from, to = dateBounds(from, to)
	const query = `
	SELECT
	    COUNT(*)                                  AS count,
	    COALESCE(SUM(total_sale),            0)   AS total_sale,
	    COALESCE(SUM(total_partner_profit),  0)   AS total_partner_profit,
	    COALESCE(SUM(total_supplier_profit), 0)   AS total_supplier_profit,
	    COALESCE(SUM(total_supplier_return), 0)   AS total_supplier_return
	FROM distributions
	WHERE date BETWEEN $1 AND $2`

	var t repository.DistributionTotals
	if err := r.q.QueryRow(ctx, query, from, to).Scan(
		&t.Count, &t.TotalSale, &t.TotalPartnerProfit, &t.TotalSupplierProfit, &t.TotalSupplierReturn,
	); err != nil {
		return repository.DistributionTotals{}, fmt.Errorf("analytics.GetDistributionTotals: %w", err)
	}
	return t, nil
}

// GetProductMargins ranking de productos por ganancia en el período.
func (r *AnalyticsRepo) GetProductMargins(ctx context.Context, from, to time.Time, limit int) ([]repository.ProductMargin, error) {
	from, to = dateBounds(from, to)
	const query = `
	SELECT
	    product_id,
	    (array_agg(product_name ORDER BY sale_date DESC, created_at DESC))[1] AS product_name,
	    COUNT(*)                        AS sale_count,
	    COALESCE(SUM(quantity),   0)    AS quantity_sold,
	    COALESCE(SUM(revenue),    0)    AS revenue,
	    COALESCE(SUM(cost_basis), 0)    AS cost,
	    COALESCE(SUM(profit),     0)    AS profit
	FROM sales
	WHERE sale_date BETWEEN $1 AND $2
	GROUP BY product_id
	ORDER BY profit DESC, product_id
	LIMIT $3`

	// LIMIT NULL equivale a sin límite
	var lim *int
	if limit > 0 {
		lim = &limit
	}

	rows, err := r.q.Query(ctx, query, from, to, lim)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetProductMargins: %w", err)
	}
	defer rows.Close()

	var out []repository.ProductMargin
	for rows.Next() {
		var m repository.ProductMargin
		if err := rows.Scan(&m.ProductID, &m.ProductName, &m.SaleCount,
			&m.QuantitySold, &m.Revenue, &m.Cost, &m.Profit); err != nil {
			return nil, fmt.Errorf("analytics.GetProductMargins scan: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
