package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
)

// AverageCost calcula el costo promedio ponderado por producto sobre los lotes con stock:
// Σ(CostoUnitario * Disponible) / Σ Disponible. Un producto sin stock vale 0.
// El orden de los lotes no importa.
func AverageCost(lots []entity.PurchaseLot) map[string]decimal.Decimal {
	weighted := make(map[string]decimal.Decimal)
	quantity := make(map[string]decimal.Decimal)

	for _, l := range lots {
		if _, ok := weighted[l.ProductID]; !ok {
			weighted[l.ProductID] = decimal.Zero
			quantity[l.ProductID] = decimal.Zero
		}
		if !l.HasStock() {
			continue
		}
		weighted[l.ProductID] = weighted[l.ProductID].Add(l.UnitCost.Mul(l.RemainingQuantity))
		quantity[l.ProductID] = quantity[l.ProductID].Add(l.RemainingQuantity)
	}

	out := make(map[string]decimal.Decimal, len(weighted))
	for productID, total := range weighted {
		out[productID] = weightedAverage(total, quantity[productID])
	}
	return out
}

// AverageCostFor costo promedio ponderado de un solo producto.
func AverageCostFor(productID string, lots []entity.PurchaseLot) decimal.Decimal {
	total, qty := decimal.Zero, decimal.Zero
	for _, l := range lots {
		if l.ProductID != productID || !l.HasStock() {
			continue
		}
		total = total.Add(l.UnitCost.Mul(l.RemainingQuantity))
		qty = qty.Add(l.RemainingQuantity)
	}
	return weightedAverage(total, qty)
}

func weightedAverage(total, qty decimal.Decimal) decimal.Decimal {
	if qty.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return total.Div(qty)
}
