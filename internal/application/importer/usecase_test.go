package importer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/memory"
	"github.com/jhoicas/gestion-carnes/pkg/logger"
)

const sampleBackup = `{
	"sabri_v2_productos": [
		{"id": 1, "nombre": "Asado", "margen_ganancia": 30},
		{"id": 2, "nombre": ""}
	],
	"sabri_v2_compras": [
		{"id": 10, "producto_id": 1, "cantidad_kg": 10, "cantidad_disponible": 4, "costo_unitario": 5, "fecha": "2024-01-01", "creado_en": 1704067200000},
		{"id": 11, "producto_id": 99, "cantidad_kg": 5, "costo_unitario": 8, "fecha": "2024-01-02"},
		{"id": 12, "producto_id": 1, "cantidad_kg": 5, "cantidad_disponible": 9, "costo_unitario": 8}
	],
	"sabri_v2_ventas": [
		{"id": 20, "producto_id": 1, "cantidad_vendida": 6, "precio_venta_unitario": 10, "costo_calculado": 30, "fecha": "2024-01-03"}
	],
	"sabri_v2_gastos": [
		{"id": 30, "descripcion": "Luz", "monto": "1500", "fecha": "2024-01-05"},
		{"id": 31, "concepto": "", "monto": 10}
	],
	"sabri_v2_distribuciones": [
		{"id": 40, "fecha": "2024-01-06", "producto": "asado", "cantidad": 10, "base_price": 4100, "shipping_cost": 200, "sale_price": 7500, "partner_share_percentage": 50},
		{"id": 41, "producto": "Vacío", "base_price": 4100, "shipping_cost": 200, "sale_price": 4000, "partner_share_percentage": 50}
	]
}`

func importSample(t *testing.T, store *memory.Store, dryRun bool) *Report {
	t.Helper()
	b, err := Parse(strings.NewReader(sampleBackup))
	require.NoError(t, err)
	uc := NewUseCase(store, logger.Nop())
	report, err := uc.Import(context.Background(), b, dryRun)
	require.NoError(t, err)
	return report
}

func TestImport_LoadsValidRecordsAndSkipsInvalid(t *testing.T) {
	store := memory.NewStore()
	report := importSample(t, store, false)

	assert.Equal(t, Counts{Imported: 1, Skipped: 1}, report.Products)
	assert.Equal(t, Counts{Imported: 1, Skipped: 2}, report.Purchases)
	assert.Equal(t, Counts{Imported: 1, Skipped: 0}, report.Sales)
	assert.Equal(t, Counts{Imported: 1, Skipped: 1}, report.Expenses)
	assert.Equal(t, Counts{Imported: 1, Skipped: 1}, report.Distributions)

	ctx := context.Background()
	lot, err := store.Lots().GetByID(ctx, "10")
	require.NoError(t, err)
	require.NotNil(t, lot)
	assert.True(t, lot.RemainingQuantity.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, time.UnixMilli(1704067200000).UTC(), lot.CreatedAt)

	sale, err := store.Sales().GetByID(ctx, "20")
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, "Asado", sale.ProductName)
	assert.True(t, sale.Revenue.Equal(decimal.NewFromInt(60)))
	assert.True(t, sale.Profit.Equal(decimal.NewFromInt(30)))

	expenses, err := store.Expenses().List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Luz", expenses[0].Concept)

	dists, err := store.Distributions().List(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, dists, 1)
	assert.Equal(t, "1", dists[0].ProductID, "la distribución queda enlazada al producto por nombre")
	assert.True(t, dists[0].TotalPartnerProfit.Equal(decimal.NewFromInt(16000)))
}

func TestImport_IsIdempotent(t *testing.T) {
	store := memory.NewStore()
	importSample(t, store, false)
	report := importSample(t, store, false)

	assert.Zero(t, report.Products.Imported)
	assert.Zero(t, report.Purchases.Imported)
	assert.Zero(t, report.Sales.Imported)
	assert.Zero(t, report.Expenses.Imported)
	assert.Zero(t, report.Distributions.Imported)
}

func TestImport_DryRunLeavesStoreEmpty(t *testing.T) {
	store := memory.NewStore()
	report := importSample(t, store, true)
	assert.True(t, report.DryRun)
	assert.Equal(t, 1, report.Products.Imported)

	products, err := store.Products().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

type failingRunner struct{ err error }

func (f failingRunner) RunAll(context.Context, func(repository.Repositories) error) error {
	return f.err
}

func TestImport_PropagatesStorageErrors(t *testing.T) {
	uc := NewUseCase(failingRunner{err: context.DeadlineExceeded}, logger.Nop())
	_, err := uc.Import(context.Background(), &Backup{}, false)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
