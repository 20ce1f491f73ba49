package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/domain/inventory"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
)

// CatalogUseCase catálogo público B2B: productos visibles con su precio.
type CatalogUseCase struct {
	productRepo  repository.ProductRepository
	lotRepo      repository.LotRepository
	businessName string
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(productRepo repository.ProductRepository, lotRepo repository.LotRepository, businessName string) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, lotRepo: lotRepo, businessName: businessName}
}

// List productos visibles cuyo nombre contiene query (sin distinguir mayúsculas).
// El precio es el manual si es > 0; si no, el costo promedio ponderado redondeado.
func (uc *CatalogUseCase) List(ctx context.Context, query string) (*dto.CatalogResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	lots, err := uc.lotRepo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	averages := inventory.AverageCost(lots)
	query = strings.ToLower(strings.TrimSpace(query))

	resp := &dto.CatalogResponse{BusinessName: uc.businessName, Items: []dto.CatalogItemDTO{}}
	for _, p := range products {
		if !p.IsVisible() {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		avg, inStock := averages[p.ID]
		price := p.CatalogUnitPrice(avg).Round(2)
		resp.Items = append(resp.Items, dto.CatalogItemDTO{
			ProductID:      p.ID,
			Name:           p.Name,
			Description:    p.Description,
			Category:       p.Category,
			ImageURL:       p.ImageURL,
			Price:          price,
			PriceOnRequest: !price.GreaterThan(decimal.Zero),
			InStock:        inStock,
		})
	}
	return resp, nil
}
