package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculateDistributionRequest body para POST /api/distributions/calculate (no persiste).
type CalculateDistributionRequest struct {
	BasePrice              decimal.Decimal  `json:"base_price" validate:"gte=0"`
	ShippingCost           decimal.Decimal  `json:"shipping_cost" validate:"gte=0"`
	SalePrice              decimal.Decimal  `json:"sale_price" validate:"gt=0"`
	PartnerSharePercentage decimal.Decimal  `json:"partner_share_percentage" validate:"gte=0,lte=100"`
	Quantity               *decimal.Decimal `json:"quantity,omitempty" validate:"omitempty,gt=0"`
}

// RegisterDistributionRequest body para POST /api/distributions.
// ProductID es opcional; si viene debe existir. ProductName se usa como etiqueta cuando no hay ProductID.
type RegisterDistributionRequest struct {
	ProductID              string           `json:"product_id"`
	ProductName            string           `json:"product_name" validate:"max=200"`
	Date                   string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Quantity               *decimal.Decimal `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	BasePrice              decimal.Decimal  `json:"base_price" validate:"gte=0"`
	ShippingCost           decimal.Decimal  `json:"shipping_cost" validate:"gte=0"`
	SalePrice              decimal.Decimal  `json:"sale_price" validate:"gt=0"`
	PartnerSharePercentage decimal.Decimal  `json:"partner_share_percentage" validate:"gte=0,lte=100"`
}

// SplitDTO resultado del reparto (por kg o por lote).
type SplitDTO struct {
	TotalCost           decimal.Decimal `json:"total_cost"`
	SalePrice           decimal.Decimal `json:"sale_price"`
	TotalProfit         decimal.Decimal `json:"total_profit"`
	PartnerProfit       decimal.Decimal `json:"partner_profit"`
	SupplierProfit      decimal.Decimal `json:"supplier_profit"`
	SupplierTotalReturn decimal.Decimal `json:"supplier_total_return"`
}

// DistributionPreviewResponse respuesta del cálculo sin persistir.
type DistributionPreviewResponse struct {
	Quantity decimal.Decimal `json:"quantity"`
	Unit     SplitDTO        `json:"unit"`
	Totals   SplitDTO        `json:"totals"`
}

// DistributionResponse distribución registrada.
type DistributionResponse struct {
	ID                     string          `json:"id"`
	ProductID              string          `json:"product_id,omitempty"`
	ProductName            string          `json:"product_name"`
	Date                   time.Time       `json:"date"`
	Quantity               decimal.Decimal `json:"quantity"`
	BasePrice              decimal.Decimal `json:"base_price"`
	ShippingCost           decimal.Decimal `json:"shipping_cost"`
	SalePrice              decimal.Decimal `json:"sale_price"`
	PartnerSharePercentage decimal.Decimal `json:"partner_share_percentage"`
	Unit                   SplitDTO        `json:"unit"`
	Totals                 SplitDTO        `json:"totals"`
	CreatedAt              time.Time       `json:"created_at"`
}

// DistributionTotalsDTO sumas del historial.
type DistributionTotalsDTO struct {
	Count               int             `json:"count"`
	TotalSale           decimal.Decimal `json:"total_sale"`
	TotalPartnerProfit  decimal.Decimal `json:"total_partner_profit"`
	TotalSupplierProfit decimal.Decimal `json:"total_supplier_profit"`
	TotalSupplierReturn decimal.Decimal `json:"total_supplier_return"`
}

// DistributionListResponse historial de distribuciones con totales.
type DistributionListResponse struct {
	Items  []DistributionResponse `json:"items"`
	Totals DistributionTotalsDTO  `json:"totals"`
}

// DistributionDefaultsResponse valores sugeridos para el formulario de distribución.
type DistributionDefaultsResponse struct {
	ProductID              string          `json:"product_id"`
	ProductName            string          `json:"product_name"`
	BasePrice              decimal.Decimal `json:"base_price"`   // costo promedio redondeado a 2 decimales
	SalePrice              decimal.Decimal `json:"sale_price"`   // precio de la última venta, 0 si no hay
	ShippingCost           decimal.Decimal `json:"shipping_cost"`
	PartnerSharePercentage decimal.Decimal `json:"partner_share_percentage"`
}
