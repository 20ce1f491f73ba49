package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest body para POST /api/expenses. Date YYYY-MM-DD; vacío = hoy.
type CreateExpenseRequest struct {
	Concept string          `json:"concept" validate:"required,max=200"`
	Amount  decimal.Decimal `json:"amount" validate:"gte=0"`
	Date    string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	Concept   string          `json:"concept"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// ExpenseListResponse lista de gastos con su suma.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Total decimal.Decimal   `json:"total"`
	Page  PageResponse      `json:"page"`
}
