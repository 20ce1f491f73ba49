package repository

import (
	"context"

	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	List(ctx context.Context, limit, offset int) ([]*entity.Expense, error)
	Delete(ctx context.Context, id string) error
}
