package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo gastos en memoria.
type ExpenseRepo struct {
	h handle
}

func (r *ExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	return r.h.do(func(s *state) error {
		if _, ok := s.expenses[expense.ID]; ok {
			return domain.ErrDuplicate
		}
		s.expenses[expense.ID] = *expense
		return nil
	})
}

func (r *ExpenseRepo) List(_ context.Context, limit, offset int) ([]*entity.Expense, error) {
	var out []*entity.Expense
	err := r.h.do(func(s *state) error {
		for _, e := range s.expenses {
			e := e
			out = append(out, &e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return paginate(out, limit, offset), nil
}

func (r *ExpenseRepo) Delete(_ context.Context, id string) error {
	return r.h.do(func(s *state) error {
		if _, ok := s.expenses[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.expenses, id)
		return nil
	})
}
