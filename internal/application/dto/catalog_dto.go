package dto

import "github.com/shopspring/decimal"

// CatalogItemDTO producto visible en el catálogo público.
type CatalogItemDTO struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url"`
	Price       decimal.Decimal `json:"price"`
	// PriceOnRequest true cuando no hay precio manual ni stock para calcularlo ("consultar precio").
	PriceOnRequest bool `json:"price_on_request"`
	InStock        bool `json:"in_stock"`
}

// CatalogResponse respuesta de GET /api/catalog.
type CatalogResponse struct {
	BusinessName string           `json:"business_name"`
	Items        []CatalogItemDTO `json:"items"`
}
