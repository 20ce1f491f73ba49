package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-carnes/internal/application/analytics"
	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/memory"
)

func seedMargins(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	day := func(n int) time.Time { return time.Date(2024, 6, n, 0, 0, 0, 0, time.UTC) }
	sale := func(id, productID, name string, date time.Time, rev, cost string) *entity.Sale {
		return &entity.Sale{
			ID: id, ProductID: productID, ProductName: name, SaleDate: date,
			Quantity: d("1"), Revenue: d(rev), CostBasis: d(cost), Profit: d(rev).Sub(d(cost)),
		}
	}

	require.NoError(t, store.Sales().Create(ctx, sale("s1", "a", "Lomo", day(1), "600", "400")))
	require.NoError(t, store.Sales().Create(ctx, sale("s2", "a", "Lomo fino", day(5), "400", "300")))
	require.NoError(t, store.Sales().Create(ctx, sale("s3", "b", "Costilla", day(2), "200", "50")))
	require.NoError(t, store.Sales().Create(ctx, sale("s4", "c", "Molida", day(3), "800", "790")))
	// fuera del rango consultado
	require.NoError(t, store.Sales().Create(ctx, sale("s5", "b", "Costilla", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), "5000", "1")))
	return store
}

func TestGetMarginsReport_RankingYPareto(t *testing.T) {
	uc := analytics.NewMarginsUseCase(seedMargins(t).Analytics())
	rep, err := uc.GetMarginsReport(context.Background(), dto.MarginsReportRequest{From: "2024-06-01", To: "2024-06-30"})
	require.NoError(t, err)

	assert.True(t, rep.TotalRevenue.Equal(d("2000")))
	assert.True(t, rep.TotalCost.Equal(d("1540")))
	assert.True(t, rep.TotalProfit.Equal(d("460")))
	assert.True(t, rep.OverallMarginPct.Equal(d("23")))

	require.Len(t, rep.Ranking, 3)
	first := rep.Ranking[0]
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, "a", first.ProductID)
	assert.Equal(t, "Lomo fino", first.ProductName)
	assert.Equal(t, 2, first.SaleCount)
	assert.True(t, first.Profit.Equal(d("300")))
	assert.True(t, first.MarginPct.Equal(d("30")))
	assert.True(t, first.RevenuePct.Equal(d("50")))

	assert.Equal(t, "b", rep.Ranking[1].ProductID)
	assert.True(t, rep.Ranking[1].CumulativeRevPct.Equal(d("60")))
	assert.True(t, rep.Ranking[1].IsTopPareto)

	assert.Equal(t, "c", rep.Ranking[2].ProductID)
	assert.False(t, rep.Ranking[2].IsTopPareto)
	assert.Len(t, rep.Pareto, 2)
}

func TestGetMarginsReport_TopNMantieneTotales(t *testing.T) {
	uc := analytics.NewMarginsUseCase(seedMargins(t).Analytics())
	rep, err := uc.GetMarginsReport(context.Background(), dto.MarginsReportRequest{From: "2024-06-01", To: "2024-06-30", TopN: 1})
	require.NoError(t, err)

	require.Len(t, rep.Ranking, 1)
	assert.True(t, rep.Ranking[0].RevenuePct.Equal(d("50")))
	assert.True(t, rep.TotalRevenue.Equal(d("2000")))
}

func TestGetMarginsReport_SinVentas(t *testing.T) {
	uc := analytics.NewMarginsUseCase(memory.NewStore().Analytics())
	rep, err := uc.GetMarginsReport(context.Background(), dto.MarginsReportRequest{})
	require.NoError(t, err)
	assert.Empty(t, rep.Ranking)
	assert.Empty(t, rep.Pareto)
	assert.True(t, rep.OverallMarginPct.IsZero())
}

func TestGetMarginsReport_ParametrosInvalidos(t *testing.T) {
	uc := analytics.NewMarginsUseCase(memory.NewStore().Analytics())
	ctx := context.Background()

	_, err := uc.GetMarginsReport(ctx, dto.MarginsReportRequest{TopN: 500})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetMarginsReport(ctx, dto.MarginsReportRequest{From: "2024-06-30", To: "2024-06-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
