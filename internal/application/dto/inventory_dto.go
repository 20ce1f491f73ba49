package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// NextLotDTO próximo lote que consumirá una venta (el más antiguo con stock).
type NextLotDTO struct {
	LotID             string          `json:"lot_id"`
	PurchaseDate      time.Time       `json:"purchase_date"`
	RemainingQuantity decimal.Decimal `json:"remaining_quantity"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
}

// StockItemDTO situación de stock de un producto.
type StockItemDTO struct {
	ProductID          string          `json:"product_id"`
	ProductName        string          `json:"product_name"`
	Category           string          `json:"category"`
	TotalStock         decimal.Decimal `json:"total_stock"`          // kg disponibles
	AverageCost        decimal.Decimal `json:"average_cost"`         // promedio ponderado por kg
	StockValue         decimal.Decimal `json:"stock_value"`          // valor a costo FIFO del disponible
	SuggestedSalePrice decimal.Decimal `json:"suggested_sale_price"` // 0 si el producto no tiene margen
	NextLot            *NextLotDTO     `json:"next_lot,omitempty"`
}

// StockResponse respuesta de GET /api/inventory/stock.
type StockResponse struct {
	Items      []StockItemDTO  `json:"items"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// AverageCostResponse respuesta de GET /api/inventory/average-cost (product_id -> costo).
type AverageCostResponse struct {
	Items map[string]decimal.Decimal `json:"items"`
}
