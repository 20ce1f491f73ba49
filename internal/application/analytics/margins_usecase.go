package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
	"github.com/jhoicas/gestion-carnes/pkg/format"
)

const (
	defaultTopN     = 20
	maxTopN         = 200
	paretoThreshold = 80
)

var pareto80 = decimal.NewFromInt(paretoThreshold)

// MarginsUseCase ranking de productos por ganancia con análisis Pareto.
type MarginsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewMarginsUseCase construye el caso de uso.
func NewMarginsUseCase(analyticsRepo repository.AnalyticsRepository) *MarginsUseCase {
	return &MarginsUseCase{analyticsRepo: analyticsRepo}
}

// GetMarginsReport genera el ranking de rentabilidad del período.
// Los porcentajes de participación se calculan sobre el ingreso total del período,
// no solo sobre los productos incluidos en el top N.
func (uc *MarginsUseCase) GetMarginsReport(ctx context.Context, req dto.MarginsReportRequest) (*dto.MarginsReportDTO, error) {
	from, to, err := format.ParseRange(req.From, req.To)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if req.TopN < 0 || req.TopN > maxTopN {
		return nil, fmt.Errorf("%w: top_n debe estar entre 0 y %d", domain.ErrInvalidInput, maxTopN)
	}
	topN := req.TopN
	if topN == 0 {
		topN = defaultTopN
	}

	type marginsResult struct {
		rows []repository.ProductMargin
		err  error
	}
	type totalsResult struct {
		revenue decimal.Decimal
		cost    decimal.Decimal
		err     error
	}

	marginsCh := make(chan marginsResult, 1)
	totalsCh := make(chan totalsResult, 1)

	go func() {
		rows, err := uc.analyticsRepo.GetProductMargins(ctx, from, to, topN)
		marginsCh <- marginsResult{rows, err}
	}()
	go func() {
		rev, cost, err := uc.analyticsRepo.GetSalesMetrics(ctx, from, to)
		totalsCh <- totalsResult{rev, cost, err}
	}()

	margins := <-marginsCh
	totals := <-totalsCh

	if margins.err != nil {
		return nil, fmt.Errorf("analytics: productos: %w", margins.err)
	}
	if totals.err != nil {
		return nil, fmt.Errorf("analytics: totales: %w", totals.err)
	}

	ranking := buildProductRanking(margins.rows, totals.revenue)
	pareto := make([]dto.ProductRankingDTO, 0, len(ranking))
	for _, p := range ranking {
		if p.IsTopPareto {
			pareto = append(pareto, p)
		}
	}

	profit := totals.revenue.Sub(totals.cost)
	overall := decimal.Zero
	if totals.revenue.IsPositive() {
		overall = profit.Div(totals.revenue).Mul(hundred).Round(2)
	}

	return &dto.MarginsReportDTO{
		From:             dateLabel(from),
		To:               dateLabel(to),
		TotalRevenue:     totals.revenue.Round(2),
		TotalCost:        totals.cost.Round(2),
		TotalProfit:      profit.Round(2),
		OverallMarginPct: overall,
		Ranking:          ranking,
		Pareto:           pareto,
	}, nil
}

// buildProductRanking enriquece las filas con margen, participación y acumulado.
// Un producto es Pareto mientras el acumulado no supere el 80%; el primero siempre lo es.
func buildProductRanking(rows []repository.ProductMargin, totalRevenue decimal.Decimal) []dto.ProductRankingDTO {
	ranking := make([]dto.ProductRankingDTO, 0, len(rows))
	cumulative := decimal.Zero

	for i, r := range rows {
		marginPct := decimal.Zero
		if r.Revenue.IsPositive() {
			marginPct = r.Profit.Div(r.Revenue).Mul(hundred).Round(2)
		}
		revenuePct := decimal.Zero
		if totalRevenue.IsPositive() {
			revenuePct = r.Revenue.Div(totalRevenue).Mul(hundred).Round(2)
		}
		cumulative = cumulative.Add(revenuePct)

		ranking = append(ranking, dto.ProductRankingDTO{
			Rank:             i + 1,
			ProductID:        r.ProductID,
			ProductName:      r.ProductName,
			SaleCount:        r.SaleCount,
			QuantitySold:     r.QuantitySold,
			Revenue:          r.Revenue.Round(2),
			Cost:             r.Cost.Round(2),
			Profit:           r.Profit.Round(2),
			MarginPct:        marginPct,
			RevenuePct:       revenuePct,
			CumulativeRevPct: cumulative.Round(2),
			IsTopPareto:      i == 0 || cumulative.LessThanOrEqual(pareto80),
		})
	}
	return ranking
}
