package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/memory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(n int) time.Time { return time.Date(2024, 5, n, 0, 0, 0, 0, time.UTC) }

func seed(t *testing.T, s *memory.Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.Products().Create(ctx, &entity.Product{ID: "p1", Name: "Vacío"}))
	require.NoError(t, s.Lots().Create(ctx, &entity.PurchaseLot{
		ID: "l2", ProductID: "p1", PurchaseDate: day(2), Quantity: d("5"), RemainingQuantity: d("5"), UnitCost: d("8"), CreatedAt: day(2),
	}))
	require.NoError(t, s.Lots().Create(ctx, &entity.PurchaseLot{
		ID: "l1", ProductID: "p1", PurchaseDate: day(1), Quantity: d("10"), RemainingQuantity: d("10"), UnitCost: d("5"), CreatedAt: day(1),
	}))
}

func TestStore_NombreDeProductoUnico(t *testing.T) {
	s := memory.NewStore()
	seed(t, s)
	err := s.Products().Create(context.Background(), &entity.Product{ID: "p2", Name: "VACÍO"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	p, err := s.Products().GetByName(context.Background(), "vacío")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "p1", p.ID)
}

func TestStore_GetByIDInexistenteDevuelveNil(t *testing.T) {
	s := memory.NewStore()
	p, err := s.Products().GetByID(context.Background(), "nada")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestStore_ListAvailableForUpdateEnOrdenFIFO(t *testing.T) {
	s := memory.NewStore()
	seed(t, s)
	lots, err := s.Lots().ListAvailableForUpdate(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, lots, 2)
	assert.Equal(t, "l1", lots[0].ID)
	assert.Equal(t, "l2", lots[1].ID)
}

func TestStore_ListAvailableAgrupaPorProducto(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	for _, l := range []entity.PurchaseLot{
		{ID: "b1", ProductID: "b", PurchaseDate: day(1), Quantity: d("1"), RemainingQuantity: d("1"), UnitCost: d("1"), CreatedAt: day(1)},
		{ID: "a2", ProductID: "a", PurchaseDate: day(2), Quantity: d("1"), RemainingQuantity: d("1"), UnitCost: d("1"), CreatedAt: day(2)},
		{ID: "a1", ProductID: "a", PurchaseDate: day(1), Quantity: d("1"), RemainingQuantity: d("1"), UnitCost: d("1"), CreatedAt: day(1)},
	} {
		l := l
		require.NoError(t, s.Lots().Create(ctx, &l))
	}

	lots, err := s.Lots().ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, lots, 3)
	assert.Equal(t, "a1", lots[0].ID)
	assert.Equal(t, "a2", lots[1].ID)
	assert.Equal(t, "b1", lots[2].ID)
}

func TestStore_RollbackDescartaCambios(t *testing.T) {
	s := memory.NewStore()
	seed(t, s)
	boom := errors.New("boom")

	err := s.Run(context.Background(), func(_ repository.ProductRepository, lots repository.LotRepository, _ repository.SaleRepository) error {
		require.NoError(t, lots.UpdateRemaining(context.Background(), "l1", d("0")))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	l, err := s.Lots().GetByID(context.Background(), "l1")
	require.NoError(t, err)
	assert.True(t, l.RemainingQuantity.Equal(d("10")))
}

func TestStore_CommitPublicaCambios(t *testing.T) {
	s := memory.NewStore()
	seed(t, s)

	err := s.Run(context.Background(), func(_ repository.ProductRepository, lots repository.LotRepository, _ repository.SaleRepository) error {
		return lots.UpdateRemaining(context.Background(), "l1", d("4"))
	})
	require.NoError(t, err)

	l, err := s.Lots().GetByID(context.Background(), "l1")
	require.NoError(t, err)
	assert.True(t, l.RemainingQuantity.Equal(d("4")))
}

func TestStore_UpdateRemainingRechazaFueraDeRango(t *testing.T) {
	s := memory.NewStore()
	seed(t, s)
	err := s.Lots().UpdateRemaining(context.Background(), "l1", d("11"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_VentasMasRecientesPrimero(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.Sales().Create(ctx, &entity.Sale{ID: "s1", ProductID: "p1", SaleDate: day(1), CreatedAt: day(1), UnitPrice: d("10")}))
	require.NoError(t, s.Sales().Create(ctx, &entity.Sale{ID: "s2", ProductID: "p1", SaleDate: day(3), CreatedAt: day(3), UnitPrice: d("12")}))
	require.NoError(t, s.Sales().Create(ctx, &entity.Sale{ID: "s3", ProductID: "p2", SaleDate: day(4), CreatedAt: day(4), UnitPrice: d("9")}))

	sales, err := s.Sales().List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "s3", sales[0].ID)
	assert.Equal(t, "s2", sales[1].ID)

	last, err := s.Sales().LastByProduct(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "s2", last.ID)

	none, err := s.Sales().LastByProduct(ctx, "otro")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestStore_AnalyticsFiltraPorRango(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.Sales().Create(ctx, &entity.Sale{ID: "s1", SaleDate: day(1), Revenue: d("100"), CostBasis: d("60")}))
	require.NoError(t, s.Sales().Create(ctx, &entity.Sale{ID: "s2", SaleDate: day(10), Revenue: d("50"), CostBasis: d("20")}))
	require.NoError(t, s.Expenses().Create(ctx, &entity.Expense{ID: "e1", Date: day(2), Amount: d("15")}))

	rev, cost, err := s.Analytics().GetSalesMetrics(ctx, day(1), day(5))
	require.NoError(t, err)
	assert.True(t, rev.Equal(d("100")))
	assert.True(t, cost.Equal(d("60")))

	rev, _, err = s.Analytics().GetSalesMetrics(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.True(t, rev.Equal(d("150")))

	exp, err := s.Analytics().GetExpensesTotal(ctx, day(3), time.Time{})
	require.NoError(t, err)
	assert.True(t, exp.IsZero())
}

func TestStore_DeleteInexistente(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	assert.ErrorIs(t, s.Lots().Delete(ctx, "x"), domain.ErrNotFound)
	assert.ErrorIs(t, s.Sales().Delete(ctx, "x"), domain.ErrNotFound)
	assert.ErrorIs(t, s.Expenses().Delete(ctx, "x"), domain.ErrNotFound)
	assert.ErrorIs(t, s.Distributions().Delete(ctx, "x"), domain.ErrNotFound)
}
