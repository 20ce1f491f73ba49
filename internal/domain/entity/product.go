package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un corte o producto cárnico. Stock y costo salen de sus lotes de compra.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	ImageURL    string
	// CatalogPrice precio B2B manual; nil o <= 0 usa el costo promedio ponderado.
	CatalogPrice *decimal.Decimal
	// VisibleInCatalog nil se interpreta como visible.
	VisibleInCatalog *bool
	// ProfitMargin margen de ganancia por defecto en porcentaje (ej. 30 = 30%).
	ProfitMargin *decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsVisible indica si el producto aparece en el catálogo público.
func (p *Product) IsVisible() bool {
	return p.VisibleInCatalog == nil || *p.VisibleInCatalog
}

// CatalogUnitPrice precio del catálogo: el manual si es > 0, si no el costo promedio.
func (p *Product) CatalogUnitPrice(averageCost decimal.Decimal) decimal.Decimal {
	if p.CatalogPrice != nil && p.CatalogPrice.GreaterThan(decimal.Zero) {
		return *p.CatalogPrice
	}
	return averageCost
}

// SuggestedSalePrice aplica el margen persistido sobre el costo promedio. Cero si no hay margen.
func (p *Product) SuggestedSalePrice(averageCost decimal.Decimal) decimal.Decimal {
	if p.ProfitMargin == nil {
		return decimal.Zero
	}
	factor := decimal.NewFromInt(1).Add(p.ProfitMargin.Div(decimal.NewFromInt(100)))
	return averageCost.Mul(factor)
}
