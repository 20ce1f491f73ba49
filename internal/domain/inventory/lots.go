// Package inventory contiene los servicios de dominio del libro de lotes:
// consumo FIFO para costear ventas y costo promedio ponderado.
package inventory

import (
	"sort"

	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
)

// SortFIFO ordena los lotes por fecha de compra ascendente y, a igual fecha,
// por fecha de registro (CreatedAt) ascendente. Ordena en el lugar.
func SortFIFO(lots []entity.PurchaseLot) {
	sort.SliceStable(lots, func(i, j int) bool {
		return fifoBefore(lots[i], lots[j])
	})
}

// SortByProductFIFO agrupa por producto y dentro de cada producto aplica el orden FIFO.
func SortByProductFIFO(lots []entity.PurchaseLot) {
	sort.SliceStable(lots, func(i, j int) bool {
		if lots[i].ProductID != lots[j].ProductID {
			return lots[i].ProductID < lots[j].ProductID
		}
		return fifoBefore(lots[i], lots[j])
	})
}

func fifoBefore(a, b entity.PurchaseLot) bool {
	if !a.PurchaseDate.Equal(b.PurchaseDate) {
		return a.PurchaseDate.Before(b.PurchaseDate)
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

// EligibleLots devuelve una copia con los lotes del producto que tienen stock, en orden FIFO.
// Es la precondición de ConsumeFIFO.
func EligibleLots(productID string, lots []entity.PurchaseLot) []entity.PurchaseLot {
	out := make([]entity.PurchaseLot, 0, len(lots))
	for _, l := range lots {
		if l.ProductID == productID && l.HasStock() {
			out = append(out, l)
		}
	}
	SortFIFO(out)
	return out
}
