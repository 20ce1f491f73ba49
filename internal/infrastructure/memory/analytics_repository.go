package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo agregados calculados sobre el estado en memoria.
type AnalyticsRepo struct {
	h handle
}

func (r *AnalyticsRepo) GetSalesMetrics(_ context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	revenue, cost := decimal.Zero, decimal.Zero
	err := r.h.do(func(s *state) error {
		for _, v := range s.sales {
			if inRange(v.SaleDate, from, to) {
				revenue = revenue.Add(v.Revenue)
				cost = cost.Add(v.CostBasis)
			}
		}
		return nil
	})
	return revenue, cost, err
}

func (r *AnalyticsRepo) GetExpensesTotal(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	err := r.h.do(func(s *state) error {
		for _, e := range s.expenses {
			if inRange(e.Date, from, to) {
				total = total.Add(e.Amount)
			}
		}
		return nil
	})
	return total, err
}

func (r *AnalyticsRepo) GetDistributionTotals(_ context.Context, from, to time.Time) (repository.DistributionTotals, error) {
	t := repository.DistributionTotals{
		TotalSale:           decimal.Zero,
		TotalPartnerProfit:  decimal.Zero,
		TotalSupplierProfit: decimal.Zero,
		TotalSupplierReturn: decimal.Zero,
	}
	err := r.h.do(func(s *state) error {
		for _, d := range s.distributions {
			if !inRange(d.Date, from, to) {
				continue
			}
			t.Count++
			t.TotalSale = t.TotalSale.Add(d.TotalSale)
			t.TotalPartnerProfit = t.TotalPartnerProfit.Add(d.TotalPartnerProfit)
			t.TotalSupplierProfit = t.TotalSupplierProfit.Add(d.TotalSupplierProfit)
			t.TotalSupplierReturn = t.TotalSupplierReturn.Add(d.TotalSupplierReturn)
		}
		return nil
	})
	return t, err
}

func (r *AnalyticsRepo) GetProductMargins(_ context.Context, from, to time.Time, limit int) ([]repository.ProductMargin, error) {
	byProduct := make(map[string]*repository.ProductMargin)
	latest := make(map[string]entity.Sale)
	err := r.h.do(func(s *state) error {
		for _, v := range s.sales {
			if !inRange(v.SaleDate, from, to) {
				continue
			}
			m, ok := byProduct[v.ProductID]
			if !ok {
				m = &repository.ProductMargin{
					ProductID:    v.ProductID,
					QuantitySold: decimal.Zero,
					Revenue:      decimal.Zero,
					Cost:         decimal.Zero,
					Profit:       decimal.Zero,
				}
				byProduct[v.ProductID] = m
			}
			m.SaleCount++
			m.QuantitySold = m.QuantitySold.Add(v.Quantity)
			m.Revenue = m.Revenue.Add(v.Revenue)
			m.Cost = m.Cost.Add(v.CostBasis)
			m.Profit = m.Profit.Add(v.Profit)
			if prev, seen := latest[v.ProductID]; !seen || newerSale(v, prev) {
				latest[v.ProductID] = v
				m.ProductName = v.ProductName
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]repository.ProductMargin, 0, len(byProduct))
	for _, m := range byProduct {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Profit.Cmp(out[j].Profit); c != 0 {
			return c > 0
		}
		return out[i].ProductID < out[j].ProductID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func newerSale(a, b entity.Sale) bool {
	if !a.SaleDate.Equal(b.SaleDate) {
		return a.SaleDate.After(b.SaleDate)
	}
	return a.CreatedAt.After(b.CreatedAt)
}
