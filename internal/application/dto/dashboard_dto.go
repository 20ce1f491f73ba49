package dto

import "github.com/shopspring/decimal"

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`

	Revenue         decimal.Decimal `json:"revenue"`            // ingresos por ventas
	CostOfGoodsSold decimal.Decimal `json:"cost_of_goods_sold"` // costo FIFO de lo vendido
	GrossProfit     decimal.Decimal `json:"gross_profit"`       // Revenue - CostOfGoodsSold
	Expenses        decimal.Decimal `json:"expenses"`
	NetResult       decimal.Decimal `json:"net_result"`       // GrossProfit - Expenses
	GrossMarginPct  decimal.Decimal `json:"gross_margin_pct"` // 0 si no hubo ventas

	Distributions DistributionTotalsDTO `json:"distributions"`
}
