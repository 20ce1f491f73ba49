package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta registrada con costo FIFO. Inmutable una vez creada.
// ProductName es una copia del nombre al momento de la venta.
type Sale struct {
	ID          string
	ProductID   string
	ProductName string
	SaleDate    time.Time
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Revenue     decimal.Decimal // Quantity * UnitPrice
	CostBasis   decimal.Decimal // costo FIFO
	Profit      decimal.Decimal // Revenue - CostBasis
	CreatedAt   time.Time
}
