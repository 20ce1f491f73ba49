package reports_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/application/reports"
	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/memory"
)

type fakePDF struct {
	header  reports.SettlementHeader
	entries int
}

func (f *fakePDF) GenerateSettlementPDF(_ context.Context, h reports.SettlementHeader, e []*entity.Distribution) ([]byte, error) {
	f.header = h
	f.entries = len(e)
	return []byte("%PDF"), nil
}

type fakeXLSX struct {
	sales, distributions int
}

func (f *fakeXLSX) SalesWorkbook(_ context.Context, s []*entity.Sale) ([]byte, error) {
	f.sales = len(s)
	return []byte("xlsx"), nil
}

func (f *fakeXLSX) DistributionsWorkbook(_ context.Context, e []*entity.Distribution) ([]byte, error) {
	f.distributions = len(e)
	return []byte("xlsx"), nil
}

func TestReports(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	day := func(n int) time.Time { return time.Date(2024, 6, n, 0, 0, 0, 0, time.UTC) }
	require.NoError(t, store.Sales().Create(ctx, &entity.Sale{ID: "s1", SaleDate: day(1), Revenue: decimal.NewFromInt(10)}))
	require.NoError(t, store.Distributions().Create(ctx, &entity.Distribution{ID: "d1", Date: day(2)}))
	require.NoError(t, store.Distributions().Create(ctx, &entity.Distribution{ID: "d2", Date: day(20)}))

	pdf, xlsx := &fakePDF{}, &fakeXLSX{}
	uc := reports.NewUseCase(store.Sales(), store.Distributions(), pdf, xlsx, reports.Names{Business: "Carnes", Partner: "Socio", Supplier: "Proveedor"})

	_, name, err := uc.SalesXLSX(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, xlsx.sales)
	assert.True(t, strings.HasPrefix(name, "ventas_"))
	assert.True(t, strings.HasSuffix(name, ".xlsx"))

	_, _, err = uc.DistributionsXLSX(ctx, dto.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, 2, xlsx.distributions)

	b, name, err := uc.SettlementPDF(ctx, dto.DateRange{From: "2024-06-01", To: "2024-06-10"})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), b)
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.Equal(t, 1, pdf.entries)
	assert.Equal(t, "Socio", pdf.header.PartnerName)

	_, _, err = uc.SettlementPDF(ctx, dto.DateRange{From: "junio"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
