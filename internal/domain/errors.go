package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio.
var (
	ErrNotFound                 = errors.New("recurso no encontrado")
	ErrInvalidInput             = errors.New("entrada inválida")
	ErrDuplicate                = errors.New("recurso duplicado")
	ErrConflict                 = errors.New("conflicto con el estado actual")
	ErrInsufficientStock        = errors.New("stock insuficiente")
	ErrInvalidDistributionInput = errors.New("datos de distribución inválidos")
	ErrMissingReference         = errors.New("el producto referenciado no existe")
)

// InsufficientStockError detalla el faltante de una venta rechazada.
// errors.Is(err, ErrInsufficientStock) es verdadero para este tipo.
type InsufficientStockError struct {
	ProductID string
	Requested decimal.Decimal
	Available decimal.Decimal
}

// Shortfall cantidad que falta para cubrir la venta.
func (e *InsufficientStockError) Shortfall() decimal.Decimal {
	return e.Requested.Sub(e.Available)
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para vender %s kg (disponible %s kg, faltan %s kg)",
		e.Requested.String(), e.Available.String(), e.Shortfall().String())
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
