package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
	"github.com/jhoicas/gestion-carnes/pkg/format"
)

// ExpenseUseCase gastos operativos. No afectan el inventario, sí el resultado neto.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra un gasto. Concepto obligatorio, monto >= 0, fecha vacía = hoy.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	concept := strings.TrimSpace(in.Concept)
	if concept == "" || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	date, err := format.ParseDate(in.Date, format.Today())
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	e := &entity.Expense{
		ID:        uuid.New().String(),
		Concept:   concept,
		Amount:    in.Amount,
		Date:      date,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	out := toExpenseResponse(e)
	return &out, nil
}

// List lista gastos (más recientes primero) con la suma de la página.
func (uc *ExpenseUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ExpenseListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.ExpenseListResponse{
		Items: make([]dto.ExpenseResponse, 0, len(list)),
		Total: decimal.Zero,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, e := range list {
		resp.Items = append(resp.Items, toExpenseResponse(e))
		resp.Total = resp.Total.Add(e.Amount)
	}
	return resp, nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toExpenseResponse(e *entity.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:        e.ID,
		Concept:   e.Concept,
		Amount:    e.Amount,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
	}
}
