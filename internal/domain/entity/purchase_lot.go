package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseLot representa una compra (lote) de un producto.
// Invariante: 0 <= RemainingQuantity <= Quantity. UnitCost no cambia después de creado.
type PurchaseLot struct {
	ID                string
	ProductID         string
	PurchaseDate      time.Time
	Quantity          decimal.Decimal // kg comprados
	RemainingQuantity decimal.Decimal // kg disponibles
	UnitCost          decimal.Decimal // costo por kg
	CreatedAt         time.Time       // desempate FIFO para lotes de la misma fecha
}

// HasStock indica si el lote todavía tiene cantidad disponible.
func (l PurchaseLot) HasStock() bool {
	return l.RemainingQuantity.GreaterThan(decimal.Zero)
}

// TotalCost costo total de la compra original.
func (l PurchaseLot) TotalCost() decimal.Decimal {
	return l.Quantity.Mul(l.UnitCost)
}

// Valid verifica las invariantes del lote.
func (l PurchaseLot) Valid() bool {
	return l.Quantity.GreaterThan(decimal.Zero) &&
		!l.UnitCost.IsNegative() &&
		!l.RemainingQuantity.IsNegative() &&
		l.RemainingQuantity.LessThanOrEqual(l.Quantity)
}
