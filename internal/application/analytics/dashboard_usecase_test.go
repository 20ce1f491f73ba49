package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-carnes/internal/application/analytics"
	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/memory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGetSummary_ResultadoNeto(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	day := func(m time.Month, n int) time.Time { return time.Date(2024, m, n, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, store.Sales().Create(ctx, &entity.Sale{ID: "s1", SaleDate: day(3, 1), Revenue: d("1000"), CostBasis: d("600")}))
	require.NoError(t, store.Sales().Create(ctx, &entity.Sale{ID: "s2", SaleDate: day(3, 20), Revenue: d("500"), CostBasis: d("300")}))
	require.NoError(t, store.Sales().Create(ctx, &entity.Sale{ID: "s3", SaleDate: day(4, 2), Revenue: d("999"), CostBasis: d("1")}))
	require.NoError(t, store.Expenses().Create(ctx, &entity.Expense{ID: "e1", Date: day(3, 5), Amount: d("150")}))
	require.NoError(t, store.Distributions().Create(ctx, &entity.Distribution{
		ID: "d1", Date: day(3, 10), TotalSale: d("7500"), TotalPartnerProfit: d("1600"), TotalSupplierProfit: d("1600"), TotalSupplierReturn: d("5900"),
	}))

	uc := analytics.NewDashboardUseCase(store.Analytics())
	sum, err := uc.GetSummary(ctx, dto.DateRange{From: "2024-03-01", To: "2024-03-31"})
	require.NoError(t, err)

	assert.True(t, sum.Revenue.Equal(d("1500")))
	assert.True(t, sum.CostOfGoodsSold.Equal(d("900")))
	assert.True(t, sum.GrossProfit.Equal(d("600")))
	assert.True(t, sum.Expenses.Equal(d("150")))
	assert.True(t, sum.NetResult.Equal(d("450")))
	assert.True(t, sum.GrossMarginPct.Equal(d("40")))
	assert.Equal(t, 1, sum.Distributions.Count)
	assert.True(t, sum.Distributions.TotalSupplierReturn.Equal(d("5900")))
	assert.Equal(t, "2024-03-01", sum.From)
	assert.Equal(t, "2024-03-31", sum.To)
}

func TestGetSummary_SinVentasMargenCero(t *testing.T) {
	uc := analytics.NewDashboardUseCase(memory.NewStore().Analytics())
	sum, err := uc.GetSummary(context.Background(), dto.DateRange{})
	require.NoError(t, err)
	assert.True(t, sum.GrossMarginPct.IsZero())
	assert.True(t, sum.NetResult.IsZero())
}

func TestGetSummary_RangoInvalido(t *testing.T) {
	uc := analytics.NewDashboardUseCase(memory.NewStore().Analytics())
	_, err := uc.GetSummary(context.Background(), dto.DateRange{From: "2024-05-01", To: "2024-04-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

type failingAnalytics struct{ *memory.AnalyticsRepo }

func (failingAnalytics) GetExpensesTotal(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, errors.New("db caída")
}

var _ repository.AnalyticsRepository = failingAnalytics{}

func TestGetSummary_PropagaErrores(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewDashboardUseCase(failingAnalytics{store.Analytics()})
	_, err := uc.GetSummary(context.Background(), dto.DateRange{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gastos")
}
