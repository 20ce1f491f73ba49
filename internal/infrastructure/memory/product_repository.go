package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria. El nombre es único sin distinguir mayúsculas.
type ProductRepo struct {
	h handle
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.h.do(func(s *state) error {
		if _, ok := s.products[product.ID]; ok {
			return domain.ErrDuplicate
		}
		if findByName(s, product.Name) != nil {
			return domain.ErrDuplicate
		}
		s.products[product.ID] = cloneProduct(*product)
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.h.do(func(s *state) error {
		if p, ok := s.products[id]; ok {
			c := cloneProduct(p)
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) GetByName(_ context.Context, name string) (*entity.Product, error) {
	var out *entity.Product
	err := r.h.do(func(s *state) error {
		if p := findByName(s, name); p != nil {
			c := cloneProduct(*p)
			out = &c
		}
		return nil
	})
	return out, err
}

// GetForUpdate equivale a GetByID: la transacción ya tiene el almacén en exclusiva.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	return r.h.do(func(s *state) error {
		if _, ok := s.products[product.ID]; !ok {
			return domain.ErrNotFound
		}
		if other := findByName(s, product.Name); other != nil && other.ID != product.ID {
			return domain.ErrDuplicate
		}
		s.products[product.ID] = cloneProduct(*product)
		return nil
	})
}

// List ordena por nombre.
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.h.do(func(s *state) error {
		out = make([]*entity.Product, 0, len(s.products))
		for _, p := range s.products {
			c := cloneProduct(p)
			out = append(out, &c)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, err
}

func findByName(s *state, name string) *entity.Product {
	name = strings.TrimSpace(name)
	for _, p := range s.products {
		if strings.EqualFold(strings.TrimSpace(p.Name), name) {
			p := p
			return &p
		}
	}
	return nil
}
