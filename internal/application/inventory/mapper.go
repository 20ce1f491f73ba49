package inventory

import (
	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/inventory"
)

func toLotResponse(l *entity.PurchaseLot, productName string) dto.PurchaseLotResponse {
	return dto.PurchaseLotResponse{
		ID:                l.ID,
		ProductID:         l.ProductID,
		ProductName:       productName,
		PurchaseDate:      l.PurchaseDate,
		Quantity:          l.Quantity,
		RemainingQuantity: l.RemainingQuantity,
		UnitCost:          l.UnitCost,
		TotalCost:         l.TotalCost(),
		CreatedAt:         l.CreatedAt,
	}
}

// ToSaleResponse convierte una venta en su DTO de salida.
func ToSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		SaleDate:    s.SaleDate,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		Revenue:     s.Revenue,
		CostBasis:   s.CostBasis,
		Profit:      s.Profit,
		CreatedAt:   s.CreatedAt,
	}
}

func toAllocationDTOs(in []inventory.Allocation) []dto.AllocationDTO {
	out := make([]dto.AllocationDTO, 0, len(in))
	for _, a := range in {
		out = append(out, dto.AllocationDTO{
			LotID:    a.LotID,
			Quantity: a.Quantity,
			UnitCost: a.UnitCost,
			Cost:     a.Cost,
		})
	}
	return out
}
