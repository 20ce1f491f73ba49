package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto operativo (alquiler, luz, empaques...). No afecta el inventario.
type Expense struct {
	ID        string
	Concept   string
	Amount    decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
}
