package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterPurchaseRequest body para POST /api/purchases.
// PurchaseDate en formato YYYY-MM-DD; vacío = hoy.
type RegisterPurchaseRequest struct {
	ProductID    string          `json:"product_id" validate:"required"`
	PurchaseDate string          `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	Quantity     decimal.Decimal `json:"quantity" validate:"gt=0"`
	UnitCost     decimal.Decimal `json:"unit_cost" validate:"gte=0"`
}

// PurchaseLotFilter query de GET /api/purchases.
type PurchaseLotFilter struct {
	ProductID string `query:"product_id"`
	Available bool   `query:"available"`
}

// PurchaseLotResponse salida de un lote de compra.
type PurchaseLotResponse struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"product_id"`
	ProductName       string          `json:"product_name"`
	PurchaseDate      time.Time       `json:"purchase_date"`
	Quantity          decimal.Decimal `json:"quantity"`
	RemainingQuantity decimal.Decimal `json:"remaining_quantity"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	TotalCost         decimal.Decimal `json:"total_cost"` // Quantity * UnitCost
	CreatedAt         time.Time       `json:"created_at"`
}

// PurchaseLotListResponse lista de lotes.
type PurchaseLotListResponse struct {
	Items []PurchaseLotResponse `json:"items"`
}
