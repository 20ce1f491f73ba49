package xlsx_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/xlsx"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSalesWorkbook(t *testing.T) {
	sales := []*entity.Sale{
		{ProductName: "Asado", SaleDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Quantity: d("12"), UnitPrice: d("10"), Revenue: d("120"), CostBasis: d("66"), Profit: d("54")},
		{ProductName: "Vacío", SaleDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Quantity: d("1"), UnitPrice: d("20"), Revenue: d("20"), CostBasis: d("8"), Profit: d("12")},
	}
	b, err := xlsx.NewExporter().SalesWorkbook(context.Background(), sales)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsx.SalesSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Producto", rows[0][1])
	assert.Equal(t, "Asado", rows[1][1])
	assert.Equal(t, "01/03/2024", rows[1][0])
	assert.Equal(t, "TOTAL", rows[3][0])
	assert.Equal(t, "140", rows[3][4])
	assert.Equal(t, "66", rows[3][6])
}

func TestDistributionsWorkbook_Vacio(t *testing.T) {
	b, err := xlsx.NewExporter().DistributionsWorkbook(context.Background(), nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsx.DistributionsSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "% socio", rows[0][6])
	assert.Equal(t, "TOTAL", rows[1][0])
}
