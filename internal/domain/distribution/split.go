// Package distribution calcula el reparto de ganancia entre el socio y el proveedor
// cuando la carne se entrega a un intermediario.
package distribution

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-carnes/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Input precios por unidad (kg) y porcentaje de ganancia del socio.
type Input struct {
	BasePrice              decimal.Decimal
	ShippingCost           decimal.Decimal
	SalePrice              decimal.Decimal
	PartnerSharePercentage decimal.Decimal
}

// Result salida del reparto. Por unidad salvo que se haya aplicado Scale.
type Result struct {
	TotalCost           decimal.Decimal
	SalePrice           decimal.Decimal
	TotalProfit         decimal.Decimal
	PartnerProfit       decimal.Decimal
	SupplierProfit      decimal.Decimal
	SupplierTotalReturn decimal.Decimal
}

// Validate exige ganancia positiva (venta > base + flete), porcentaje en [0,100]
// y precios base/flete no negativos.
func (in Input) Validate() error {
	if in.BasePrice.IsNegative() || in.ShippingCost.IsNegative() {
		return fmt.Errorf("%w: precio base y flete no pueden ser negativos", domain.ErrInvalidDistributionInput)
	}
	if in.SalePrice.LessThanOrEqual(in.BasePrice.Add(in.ShippingCost)) {
		return fmt.Errorf("%w: el precio de venta debe ser mayor al costo total", domain.ErrInvalidDistributionInput)
	}
	if in.PartnerSharePercentage.IsNegative() || in.PartnerSharePercentage.GreaterThan(hundred) {
		return fmt.Errorf("%w: el porcentaje debe estar entre 0 y 100", domain.ErrInvalidDistributionInput)
	}
	return nil
}

// Split aplica la fórmula de reparto:
//
//	total_cost            = base + flete
//	total_profit          = venta - total_cost
//	partner_profit        = total_profit * (porcentaje / 100)
//	supplier_profit       = total_profit - partner_profit
//	supplier_total_return = total_cost + supplier_profit
func Split(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	totalCost := in.BasePrice.Add(in.ShippingCost)
	totalProfit := in.SalePrice.Sub(totalCost)
	partnerProfit := totalProfit.Mul(in.PartnerSharePercentage.Div(hundred))
	supplierProfit := totalProfit.Sub(partnerProfit)

	return Result{
		TotalCost:           totalCost,
		SalePrice:           in.SalePrice,
		TotalProfit:         totalProfit,
		PartnerProfit:       partnerProfit,
		SupplierProfit:      supplierProfit,
		SupplierTotalReturn: totalCost.Add(supplierProfit),
	}, nil
}

// Scale multiplica todos los valores por la cantidad para obtener los totales del registro.
func (r Result) Scale(quantity decimal.Decimal) Result {
	return Result{
		TotalCost:           r.TotalCost.Mul(quantity),
		SalePrice:           r.SalePrice.Mul(quantity),
		TotalProfit:         r.TotalProfit.Mul(quantity),
		PartnerProfit:       r.PartnerProfit.Mul(quantity),
		SupplierProfit:      r.SupplierProfit.Mul(quantity),
		SupplierTotalReturn: r.SupplierTotalReturn.Mul(quantity),
	}
}
