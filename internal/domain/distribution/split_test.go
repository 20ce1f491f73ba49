package distribution_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/distribution"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func input(base, shipping, sale, share string) distribution.Input {
	return distribution.Input{
		BasePrice:              dec(base),
		ShippingCost:           dec(shipping),
		SalePrice:              dec(sale),
		PartnerSharePercentage: dec(share),
	}
}

func TestSplit_EjemploMitadYMitad(t *testing.T) {
	res, err := distribution.Split(input("4100", "200", "7500", "50"))
	require.NoError(t, err)

	assert.True(t, dec("4300").Equal(res.TotalCost), res.TotalCost.String())
	assert.True(t, dec("3200").Equal(res.TotalProfit), res.TotalProfit.String())
	assert.True(t, dec("1600").Equal(res.PartnerProfit), res.PartnerProfit.String())
	assert.True(t, dec("1600").Equal(res.SupplierProfit), res.SupplierProfit.String())
	assert.True(t, dec("5900").Equal(res.SupplierTotalReturn), res.SupplierTotalReturn.String())
	assert.True(t, dec("7500").Equal(res.SalePrice))
}

// La ganancia del socio más la del proveedor siempre suma la ganancia total.
func TestSplit_Conservacion(t *testing.T) {
	cases := []distribution.Input{
		input("4100", "200", "7500", "50"),
		input("3999.99", "150.5", "6123.45", "33"),
		input("10", "0", "10.01", "0"),
		input("10", "1", "12", "100"),
		input("0", "0", "1", "12.5"),
		input("1234.567", "89.1", "2000", "66.6667"),
	}
	for _, in := range cases {
		res, err := distribution.Split(in)
		require.NoError(t, err)

		assert.True(t, res.PartnerProfit.Add(res.SupplierProfit).Equal(res.TotalProfit),
			"partner + supplier != total para %+v", in)
		assert.True(t, res.SupplierTotalReturn.Equal(res.TotalCost.Add(res.SupplierProfit)))
		assert.True(t, res.TotalCost.Add(res.TotalProfit).Equal(in.SalePrice))
	}
}

func TestSplit_Rechazos(t *testing.T) {
	cases := map[string]distribution.Input{
		"venta menor al costo":   input("4100", "200", "4000", "50"),
		"venta igual al costo":   input("4100", "200", "4300", "50"),
		"porcentaje negativo":    input("4100", "200", "7500", "-1"),
		"porcentaje mayor a 100": input("4100", "200", "7500", "100.01"),
		"base negativa":          input("-1", "200", "7500", "50"),
		"flete negativo":         input("4100", "-5", "7500", "50"),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := distribution.Split(in)
			assert.ErrorIs(t, err, domain.ErrInvalidDistributionInput)
		})
	}
}

// Escalar el resultado unitario equivale a multiplicar cada valor por la cantidad.
func TestResult_ScaleLineal(t *testing.T) {
	unit, err := distribution.Split(input("4100", "200", "7500", "40"))
	require.NoError(t, err)

	q := dec("12.5")
	total := unit.Scale(q)

	assert.True(t, unit.SalePrice.Mul(q).Equal(total.SalePrice))
	assert.True(t, unit.TotalCost.Mul(q).Equal(total.TotalCost))
	assert.True(t, unit.TotalProfit.Mul(q).Equal(total.TotalProfit))
	assert.True(t, unit.PartnerProfit.Mul(q).Equal(total.PartnerProfit))
	assert.True(t, unit.SupplierProfit.Mul(q).Equal(total.SupplierProfit))
	assert.True(t, unit.SupplierTotalReturn.Mul(q).Equal(total.SupplierTotalReturn))

	// Los totales conservan la misma relación que los valores unitarios.
	assert.True(t, total.PartnerProfit.Add(total.SupplierProfit).Equal(total.TotalProfit))
	assert.True(t, dec("16000").Equal(total.PartnerProfit), total.PartnerProfit.String()) // 3200*0.4*12.5

	one := unit.Scale(decimal.NewFromInt(1))
	assert.True(t, one.SupplierTotalReturn.Equal(unit.SupplierTotalReturn))
}
