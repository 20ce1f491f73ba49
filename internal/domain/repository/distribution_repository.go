package repository

import (
	"context"
	"time"

	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
)

// DistributionRepository define el puerto de persistencia para distribuciones.
type DistributionRepository interface {
	Create(ctx context.Context, d *entity.Distribution) error
	// List devuelve las distribuciones en el rango [from, to], más recientes primero.
	List(ctx context.Context, from, to time.Time) ([]*entity.Distribution, error)
	Delete(ctx context.Context, id string) error
}
