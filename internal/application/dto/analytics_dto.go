package dto

import "github.com/shopspring/decimal"

// MarginsReportRequest parámetros para GET /api/analytics/products.
type MarginsReportRequest struct {
	From string `query:"from"`                             // YYYY-MM-DD; vacío = sin límite
	To   string `query:"to"`                               // YYYY-MM-DD inclusive
	TopN int    `query:"top_n" validate:"min=0,max=200"` // default 20
}

// ProductRankingDTO rentabilidad de un producto en el período.
type ProductRankingDTO struct {
	Rank             int             `json:"rank"` // 1 = más rentable
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	SaleCount        int             `json:"sale_count"`
	QuantitySold     decimal.Decimal `json:"quantity_sold"`
	Revenue          decimal.Decimal `json:"revenue"`
	Cost             decimal.Decimal `json:"cost"`
	Profit           decimal.Decimal `json:"profit"`
	MarginPct        decimal.Decimal `json:"margin_pct"`  // Profit / Revenue * 100
	RevenuePct       decimal.Decimal `json:"revenue_pct"` // sobre el ingreso total del período
	CumulativeRevPct decimal.Decimal `json:"cumulative_revenue_pct"`
	IsTopPareto      bool            `json:"is_top_pareto"`
}

// MarginsReportDTO respuesta de GET /api/analytics/products.
type MarginsReportDTO struct {
	From             string              `json:"from,omitempty"`
	To               string              `json:"to,omitempty"`
	TotalRevenue     decimal.Decimal     `json:"total_revenue"`
	TotalCost        decimal.Decimal     `json:"total_cost"`
	TotalProfit      decimal.Decimal     `json:"total_profit"`
	OverallMarginPct decimal.Decimal     `json:"overall_margin_pct"`
	Ranking          []ProductRankingDTO `json:"ranking"`
	Pareto           []ProductRankingDTO `json:"pareto"` // productos que suman ~80% del ingreso
}
