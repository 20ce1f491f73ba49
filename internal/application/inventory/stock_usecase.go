package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/domain/inventory"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
)

// StockUseCase vista de stock y costo promedio por producto.
type StockUseCase struct {
	productRepo repository.ProductRepository
	lotRepo     repository.LotRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(productRepo repository.ProductRepository, lotRepo repository.LotRepository) *StockUseCase {
	return &StockUseCase{productRepo: productRepo, lotRepo: lotRepo}
}

// GetStock devuelve, para cada producto, los kg disponibles, el costo promedio ponderado,
// el valor del stock, el próximo lote FIFO y el precio sugerido según su margen.
func (uc *StockUseCase) GetStock(ctx context.Context) (*dto.StockResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	lots, err := uc.lotRepo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.StockResponse{Items: make([]dto.StockItemDTO, 0, len(products)), TotalValue: decimal.Zero}
	for _, p := range products {
		eligible := inventory.EligibleLots(p.ID, lots)
		avg := inventory.AverageCostFor(p.ID, eligible)

		value := decimal.Zero
		for _, l := range eligible {
			value = value.Add(l.RemainingQuantity.Mul(l.UnitCost))
		}

		item := dto.StockItemDTO{
			ProductID:          p.ID,
			ProductName:        p.Name,
			Category:           p.Category,
			TotalStock:         inventory.TotalAvailable(eligible),
			AverageCost:        avg.Round(2),
			StockValue:         value.Round(2),
			SuggestedSalePrice: p.SuggestedSalePrice(avg).Round(2),
		}
		if len(eligible) > 0 {
			next := eligible[0]
			item.NextLot = &dto.NextLotDTO{
				LotID:             next.ID,
				PurchaseDate:      next.PurchaseDate,
				RemainingQuantity: next.RemainingQuantity,
				UnitCost:          next.UnitCost,
			}
		}
		resp.TotalValue = resp.TotalValue.Add(item.StockValue)
		resp.Items = append(resp.Items, item)
	}
	return resp, nil
}

// AverageCosts costo promedio ponderado por producto (solo productos con lotes disponibles).
func (uc *StockUseCase) AverageCosts(ctx context.Context) (*dto.AverageCostResponse, error) {
	lots, err := uc.lotRepo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AverageCostResponse{Items: inventory.AverageCost(lots)}, nil
}

// AverageCostOf costo promedio ponderado de un producto (0 sin stock).
func (uc *StockUseCase) AverageCostOf(ctx context.Context, productID string) (decimal.Decimal, error) {
	lots, err := uc.lotRepo.ListAvailable(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return inventory.AverageCostFor(productID, lots), nil
}
