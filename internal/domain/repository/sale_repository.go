package repository

import (
	"context"

	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List ordena de la más reciente a la más antigua.
	List(ctx context.Context, limit, offset int) ([]*entity.Sale, error)
	// LastByProduct última venta registrada del producto, (nil, nil) si no hay.
	LastByProduct(ctx context.Context, productID string) (*entity.Sale, error)
	Delete(ctx context.Context, id string) error
}
