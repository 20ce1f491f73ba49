package inventory

import (
	"context"

	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el registro de ventas: lotes descontados y venta se confirman juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		lotRepo repository.LotRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// Locker exclusión mutua por clave (un producto a la vez) alrededor de lectura-cálculo-escritura.
// release debe llamarse siempre; es seguro llamarlo más de una vez.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

// ProductLockKey clave de bloqueo de un producto.
func ProductLockKey(productID string) string {
	return "product:" + productID
}
