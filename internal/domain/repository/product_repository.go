package repository

import (
	"context"

	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID/GetByName devuelven (nil, nil) si no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	// GetForUpdate bloquea el producto hasta el fin de la transacción (punto de serialización de ventas).
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
}
