package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
)

// LotFilter filtros para listar lotes de compra.
type LotFilter struct {
	ProductID     string
	OnlyAvailable bool
}

// LotRepository define el puerto de persistencia para los lotes de compra.
type LotRepository interface {
	Create(ctx context.Context, lot *entity.PurchaseLot) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseLot, error)
	List(ctx context.Context, filter LotFilter) ([]*entity.PurchaseLot, error)
	// ListAvailable lotes con stock de todos los productos, agrupados por producto y en orden FIFO dentro de cada uno.
	ListAvailable(ctx context.Context) ([]entity.PurchaseLot, error)
	// ListAvailableForUpdate lotes con stock del producto en orden FIFO, bloqueados (SELECT FOR UPDATE).
	ListAvailableForUpdate(ctx context.Context, productID string) ([]entity.PurchaseLot, error)
	UpdateRemaining(ctx context.Context, lotID string, remaining decimal.Decimal) error
	// Delete devuelve domain.ErrNotFound si el lote no existe.
	Delete(ctx context.Context, id string) error
}
