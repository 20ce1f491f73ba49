package importer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ArraysAndLocalStorageStrings(t *testing.T) {
	raw := `{
		"sabri_v2_productos": [{"id": 1700000000001, "nombre": "Asado", "margen_ganancia": "30", "visible_catalogo": false}],
		"sabri_v2_compras": "[{\"id\":\"c1\",\"producto_id\":1700000000001,\"cantidad_kg\":\"10,5\",\"costo_unitario\":4000,\"fecha\":\"2024-01-02\",\"creado_en\":1704153600000}]",
		"sabri_v2_gastos": null
	}`
	b, err := Parse(strings.NewReader(raw))
	require.NoError(t, err)

	require.Len(t, b.Products, 1)
	p := b.Products[0]
	assert.Equal(t, "1700000000001", p.ID.String())
	assert.True(t, p.ProfitMargin.Value.Equal(decimal.NewFromInt(30)))
	require.NotNil(t, p.VisibleInShop)
	assert.False(t, *p.VisibleInShop)

	require.Len(t, b.Purchases, 1)
	c := b.Purchases[0]
	assert.Equal(t, "1700000000001", c.ProductID.String())
	assert.True(t, c.Quantity.Value.Equal(decimal.RequireFromString("10.5")))
	assert.False(t, c.Remaining.Valid)
	ts, ok := c.CreatedAt.millis()
	require.True(t, ok)
	assert.Equal(t, 2024, ts.Year())

	assert.Empty(t, b.Expenses)
	assert.Empty(t, b.Sales)
}

func TestParse_InvalidNumber(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"sabri_v2_gastos": [{"concepto": "luz", "monto": "mucho"}]}`))
	assert.Error(t, err)
}

func TestFlexDecimal_Helpers(t *testing.T) {
	var f flexDecimal
	assert.True(t, f.or(decimal.NewFromInt(7)).Equal(decimal.NewFromInt(7)))
	assert.Nil(t, f.positivePtr())

	require.NoError(t, f.UnmarshalJSON([]byte(`"0"`)))
	assert.True(t, f.Valid)
	assert.Nil(t, f.positivePtr())
}
