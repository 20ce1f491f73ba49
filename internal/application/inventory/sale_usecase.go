package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/inventory"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
	"github.com/jhoicas/gestion-carnes/pkg/format"
	"github.com/jhoicas/gestion-carnes/pkg/logger"
)

// SaleUseCase registra ventas costeadas por FIFO de forma transaccional:
// bloqueo por producto, SELECT FOR UPDATE sobre los lotes y Commit/Rollback.
type SaleUseCase struct {
	txRunner TxRunner
	locker   Locker
	saleRepo repository.SaleRepository
	log      *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	locker Locker,
	saleRepo repository.SaleRepository,
	log *logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner: txRunner,
		locker:   locker,
		saleRepo: saleRepo,
		log:      log,
	}
}

// SaleInputDTO entrada para registrar una venta. SaleDate cero = hoy.
type SaleInputDTO struct {
	ProductID string
	SaleDate  time.Time
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// RegisterSale bloquea el producto, consume los lotes más antiguos primero, persiste los
// disponibles y la venta en una sola transacción. Si el stock no alcanza no se modifica nada
// y se devuelve *domain.InsufficientStockError.
func (uc *SaleUseCase) RegisterSale(ctx context.Context, input SaleInputDTO) (*dto.SaleResponse, error) {
	if input.ProductID == "" || !input.Quantity.GreaterThan(decimal.Zero) || input.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if input.SaleDate.IsZero() {
		input.SaleDate = format.Today()
	}

	release, err := uc.locker.Lock(ctx, ProductLockKey(input.ProductID))
	if err != nil {
		return nil, err
	}
	defer release()

	var (
		sale        *entity.Sale
		allocations []inventory.Allocation
	)
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		lotRepo repository.LotRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Bloquea la fila del producto: punto de serialización entre ventas concurrentes
		product, err := productRepo.GetForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrMissingReference
		}

		lots, err := lotRepo.ListAvailableForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}

		result, err := inventory.ConsumeFIFO(input.Quantity, lots)
		if err != nil {
			var stockErr *domain.InsufficientStockError
			if errors.As(err, &stockErr) {
				stockErr.ProductID = product.ID
			}
			return err
		}

		for i, lot := range result.UpdatedLots {
			if lot.RemainingQuantity.Equal(lots[i].RemainingQuantity) {
				continue
			}
			if err := lotRepo.UpdateRemaining(ctx, lot.ID, lot.RemainingQuantity); err != nil {
				return err
			}
		}

		revenue := input.Quantity.Mul(input.UnitPrice)
		now := time.Now()
		sale = &entity.Sale{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			ProductName: product.Name,
			SaleDate:    input.SaleDate,
			Quantity:    input.Quantity,
			UnitPrice:   input.UnitPrice,
			Revenue:     revenue,
			CostBasis:   result.TotalCost,
			Profit:      revenue.Sub(result.TotalCost),
			CreatedAt:   now,
		}
		allocations = result.Allocations
		return saleRepo.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("product_id", sale.ProductID).
		Str("quantity", sale.Quantity.String()).
		Str("cost_basis", sale.CostBasis.String()).
		Str("profit", sale.Profit.String()).
		Int("lots", len(allocations)).
		Msg("venta registrada")
	for _, a := range allocations {
		uc.log.Debug().
			Str("sale_id", sale.ID).
			Str("lot_id", a.LotID).
			Str("quantity", a.Quantity.String()).
			Str("cost", a.Cost.String()).
			Msg("lote consumido")
	}

	out := ToSaleResponse(sale)
	out.Allocations = toAllocationDTOs(allocations)
	return &out, nil
}

// ListSales lista las ventas, más recientes primero.
func (uc *SaleUseCase) ListSales(ctx context.Context, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	sales, err := uc.saleRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, ToSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// DeleteSale elimina el registro de la venta. El stock consumido NO vuelve a los lotes.
func (uc *SaleUseCase) DeleteSale(ctx context.Context, id string) error {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	if err := uc.saleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar venta: %w", err)
	}
	uc.log.Warn().
		Str("sale_id", sale.ID).
		Str("product_id", sale.ProductID).
		Str("quantity", sale.Quantity.String()).
		Msg("venta eliminada; el stock consumido no se restaura")
	return nil
}
