package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
	"github.com/jhoicas/gestion-carnes/pkg/format"
	"github.com/jhoicas/gestion-carnes/pkg/logger"
)

// PurchaseUseCase alta, listado y baja de lotes de compra.
type PurchaseUseCase struct {
	productRepo repository.ProductRepository
	lotRepo     repository.LotRepository
	log         *logger.Logger
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(productRepo repository.ProductRepository, lotRepo repository.LotRepository, log *logger.Logger) *PurchaseUseCase {
	return &PurchaseUseCase{productRepo: productRepo, lotRepo: lotRepo, log: log}
}

// RegisterPurchase crea un lote con todo su stock disponible. Fecha vacía = hoy.
func (uc *PurchaseUseCase) RegisterPurchase(ctx context.Context, in dto.RegisterPurchaseRequest) (*dto.PurchaseLotResponse, error) {
	date, err := format.ParseDate(in.PurchaseDate, format.Today())
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrMissingReference
	}

	lot := &entity.PurchaseLot{
		ID:                uuid.New().String(),
		ProductID:         product.ID,
		PurchaseDate:      date,
		Quantity:          in.Quantity,
		RemainingQuantity: in.Quantity,
		UnitCost:          in.UnitCost,
		CreatedAt:         time.Now(),
	}
	if !lot.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.lotRepo.Create(ctx, lot); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("lot_id", lot.ID).
		Str("product_id", lot.ProductID).
		Str("quantity", lot.Quantity.String()).
		Str("unit_cost", lot.UnitCost.String()).
		Msg("compra registrada")

	out := toLotResponse(lot, product.Name)
	return &out, nil
}

// ListLots lista lotes (todos, solo con stock o de un producto) con el nombre del producto.
func (uc *PurchaseUseCase) ListLots(ctx context.Context, filter dto.PurchaseLotFilter) (*dto.PurchaseLotListResponse, error) {
	lots, err := uc.lotRepo.List(ctx, repository.LotFilter{
		ProductID:     filter.ProductID,
		OnlyAvailable: filter.Available,
	})
	if err != nil {
		return nil, err
	}
	names, err := productNames(ctx, uc.productRepo)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseLotResponse, 0, len(lots))
	for _, l := range lots {
		items = append(items, toLotResponse(l, names[l.ProductID]))
	}
	return &dto.PurchaseLotListResponse{Items: items}, nil
}

// DeleteLot elimina un lote. Las ventas que lo consumieron no se recalculan.
func (uc *PurchaseUseCase) DeleteLot(ctx context.Context, id string) error {
	lot, err := uc.lotRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lot == nil {
		return domain.ErrNotFound
	}
	if err := uc.lotRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Warn().
		Str("lot_id", lot.ID).
		Str("product_id", lot.ProductID).
		Str("remaining", lot.RemainingQuantity.String()).
		Msg("lote eliminado; las ventas asociadas no se recalculan")
	return nil
}

func productNames(ctx context.Context, repo repository.ProductRepository) (map[string]string, error) {
	products, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names, nil
}
