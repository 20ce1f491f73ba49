package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest body para POST /api/sales. SaleDate YYYY-MM-DD; vacío = hoy.
type RegisterSaleRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	SaleDate  string          `json:"sale_date" validate:"omitempty,datetime=2006-01-02"`
	Quantity  decimal.Decimal `json:"quantity" validate:"gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

// AllocationDTO cantidad tomada de un lote al costear la venta.
type AllocationDTO struct {
	LotID    string          `json:"lot_id"`
	Quantity decimal.Decimal `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Cost     decimal.Decimal `json:"cost"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SaleDate    time.Time       `json:"sale_date"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Revenue     decimal.Decimal `json:"revenue"`
	CostBasis   decimal.Decimal `json:"cost_basis"`
	Profit      decimal.Decimal `json:"profit"`
	CreatedAt   time.Time       `json:"created_at"`
	// Allocations solo se informa al registrar la venta.
	Allocations []AllocationDTO `json:"allocations,omitempty"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
