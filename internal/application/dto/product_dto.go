package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto (corte).
type CreateProductRequest struct {
	Name             string           `json:"name" validate:"required,min=1,max=200"`
	Description      string           `json:"description" validate:"max=1000"`
	Category         string           `json:"category" validate:"max=100"`
	ImageURL         string           `json:"image_url" validate:"omitempty,max=500"`
	CatalogPrice     *decimal.Decimal `json:"catalog_price,omitempty" validate:"omitempty,gte=0"`
	VisibleInCatalog *bool            `json:"visible_in_catalog,omitempty"`
	ProfitMargin     *decimal.Decimal `json:"profit_margin,omitempty" validate:"omitempty,gte=0"`
}

// UpdateProductRequest entrada para actualizar un producto. Solo se modifican los campos enviados.
type UpdateProductRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description      *string          `json:"description" validate:"omitempty,max=1000"`
	Category         *string          `json:"category" validate:"omitempty,max=100"`
	ImageURL         *string          `json:"image_url" validate:"omitempty,max=500"`
	CatalogPrice     *decimal.Decimal `json:"catalog_price" validate:"omitempty,gte=0"`
	VisibleInCatalog *bool            `json:"visible_in_catalog"`
	ProfitMargin     *decimal.Decimal `json:"profit_margin" validate:"omitempty,gte=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Category         string           `json:"category"`
	ImageURL         string           `json:"image_url"`
	CatalogPrice     *decimal.Decimal `json:"catalog_price"`
	VisibleInCatalog bool             `json:"visible_in_catalog"`
	ProfitMargin     *decimal.Decimal `json:"profit_margin"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
