package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Distribution registro de reparto de ganancia entre socio y proveedor sobre una venta de carne.
// Guarda los valores por kg y los totales (por kg * Quantity) para auditoría.
// ProductID es opcional; ProductName conserva la etiqueta aunque el producto se renombre.
type Distribution struct {
	ID                     string
	ProductID              string
	ProductName            string
	Date                   time.Time
	Quantity               decimal.Decimal
	BasePrice              decimal.Decimal
	ShippingCost           decimal.Decimal
	SalePrice              decimal.Decimal
	PartnerSharePercentage decimal.Decimal

	// Por unidad
	TotalCost           decimal.Decimal
	TotalProfit         decimal.Decimal
	PartnerProfit       decimal.Decimal
	SupplierProfit      decimal.Decimal
	SupplierTotalReturn decimal.Decimal

	// Totales del lote (por unidad * Quantity)
	TotalSale           decimal.Decimal
	TotalCostAmount     decimal.Decimal
	TotalProfitAmount   decimal.Decimal
	TotalPartnerProfit  decimal.Decimal
	TotalSupplierProfit decimal.Decimal
	TotalSupplierReturn decimal.Decimal

	CreatedAt time.Time
}
