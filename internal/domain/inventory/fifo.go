package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
)

// Allocation porción de una venta tomada de un lote.
type Allocation struct {
	LotID    string
	Quantity decimal.Decimal
	UnitCost decimal.Decimal
	Cost     decimal.Decimal
}

// FIFOResult resultado de costear una venta.
type FIFOResult struct {
	UpdatedLots []entity.PurchaseLot // copia de todos los lotes recibidos con el disponible ajustado
	TotalCost   decimal.Decimal
	Allocations []Allocation
}

// ConsumeFIFO consume cantidad de los lotes en el orden recibido (el más antiguo primero)
// y devuelve los lotes actualizados y el costo total de la venta.
//
// Los lotes deben venir filtrados y ordenados (ver EligibleLots). La función es pura:
// no modifica el slice recibido. Si el stock no alcanza devuelve *domain.InsufficientStockError
// y ningún lote, para que el llamador no aplique cambios parciales.
func ConsumeFIFO(quantity decimal.Decimal, lots []entity.PurchaseLot) (FIFOResult, error) {
	if !quantity.GreaterThan(decimal.Zero) {
		return FIFOResult{}, domain.ErrInvalidInput
	}

	updated := make([]entity.PurchaseLot, len(lots))
	copy(updated, lots)

	remaining := quantity
	totalCost := decimal.Zero
	var allocations []Allocation

	for i := range updated {
		if remaining.IsZero() {
			break
		}
		lot := &updated[i]
		if !lot.HasStock() {
			continue
		}
		taken := decimal.Min(remaining, lot.RemainingQuantity)
		cost := taken.Mul(lot.UnitCost)

		totalCost = totalCost.Add(cost)
		lot.RemainingQuantity = lot.RemainingQuantity.Sub(taken)
		remaining = remaining.Sub(taken)

		allocations = append(allocations, Allocation{
			LotID:    lot.ID,
			Quantity: taken,
			UnitCost: lot.UnitCost,
			Cost:     cost,
		})
	}

	if remaining.GreaterThan(decimal.Zero) {
		stockErr := &domain.InsufficientStockError{
			Requested: quantity,
			Available: quantity.Sub(remaining),
		}
		if len(lots) > 0 {
			stockErr.ProductID = lots[0].ProductID
		}
		return FIFOResult{}, stockErr
	}

	return FIFOResult{
		UpdatedLots: updated,
		TotalCost:   totalCost,
		Allocations: allocations,
	}, nil
}

// TotalAvailable suma el disponible de los lotes con stock.
func TotalAvailable(lots []entity.PurchaseLot) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lots {
		if l.HasStock() {
			total = total.Add(l.RemainingQuantity)
		}
	}
	return total
}
