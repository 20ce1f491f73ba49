package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/application/usecase"
	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/memory"
)

func TestExpense_CrearListarEliminar(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewExpenseUseCase(store.Expenses())
	ctx := context.Background()

	first, err := uc.Create(ctx, dto.CreateExpenseRequest{Concept: "Alquiler", Amount: d("150000"), Date: "2024-03-01"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateExpenseRequest{Concept: "Bolsas", Amount: d("3500.50"), Date: "2024-03-05"})
	require.NoError(t, err)

	list, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Bolsas", list.Items[0].Concept)
	assert.True(t, list.Total.Equal(d("153500.50")))

	require.NoError(t, uc.Delete(ctx, first.ID))
	assert.ErrorIs(t, uc.Delete(ctx, first.ID), domain.ErrNotFound)
}

func TestExpense_Validaciones(t *testing.T) {
	uc := usecase.NewExpenseUseCase(memory.NewStore().Expenses())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateExpenseRequest{Concept: "", Amount: d("10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateExpenseRequest{Concept: "Luz", Amount: d("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateExpenseRequest{Concept: "Luz", Amount: d("10"), Date: "marzo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	e, err := uc.Create(ctx, dto.CreateExpenseRequest{Concept: "Luz", Amount: d("0")})
	require.NoError(t, err)
	assert.False(t, e.Date.IsZero())
}
