package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
)

// ProductUseCase casos de uso para productos. Stock y costo se derivan de los lotes de compra.
// No hay baja: las ventas y distribuciones conservan la referencia.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. El nombre es obligatorio y único (sin distinguir mayúsculas).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CatalogPrice != nil && in.CatalogPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ProfitMargin != nil && in.ProfitMargin.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		Name:             name,
		Description:      in.Description,
		Category:         in.Category,
		ImageURL:         in.ImageURL,
		CatalogPrice:     in.CatalogPrice,
		VisibleInCatalog: in.VisibleInCatalog,
		ProfitMargin:     in.ProfitMargin,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza solo los campos enviados. Devuelve (nil, nil) si el producto no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if !strings.EqualFold(name, product.Name) {
			other, err := uc.repo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != product.ID {
				return nil, domain.ErrDuplicate
			}
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.CatalogPrice != nil {
		if in.CatalogPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CatalogPrice = in.CatalogPrice
	}
	if in.VisibleInCatalog != nil {
		product.VisibleInCatalog = in.VisibleInCatalog
	}
	if in.ProfitMargin != nil {
		if in.ProfitMargin.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.ProfitMargin = in.ProfitMargin
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos ordenados por nombre.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Category:         p.Category,
		ImageURL:         p.ImageURL,
		CatalogPrice:     p.CatalogPrice,
		VisibleInCatalog: p.IsVisible(),
		ProfitMargin:     p.ProfitMargin,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
