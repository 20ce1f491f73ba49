package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas en memoria.
type SaleRepo struct {
	h handle
}

func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	return r.h.do(func(s *state) error {
		if _, ok := s.sales[sale.ID]; ok {
			return domain.ErrDuplicate
		}
		s.sales[sale.ID] = *sale
		return nil
	})
}

func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	var out *entity.Sale
	err := r.h.do(func(s *state) error {
		if v, ok := s.sales[id]; ok {
			out = &v
		}
		return nil
	})
	return out, err
}

func (r *SaleRepo) List(_ context.Context, limit, offset int) ([]*entity.Sale, error) {
	sales, err := r.sorted("")
	if err != nil {
		return nil, err
	}
	return paginate(sales, limit, offset), nil
}

func (r *SaleRepo) LastByProduct(_ context.Context, productID string) (*entity.Sale, error) {
	sales, err := r.sorted(productID)
	if err != nil || len(sales) == 0 {
		return nil, err
	}
	return sales[0], nil
}

func (r *SaleRepo) Delete(_ context.Context, id string) error {
	return r.h.do(func(s *state) error {
		if _, ok := s.sales[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.sales, id)
		return nil
	})
}

// sorted ventas (opcionalmente de un producto) de la más reciente a la más antigua.
func (r *SaleRepo) sorted(productID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	err := r.h.do(func(s *state) error {
		for _, v := range s.sales {
			if productID != "" && v.ProductID != productID {
				continue
			}
			v := v
			out = append(out, &v)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SaleDate.Equal(out[j].SaleDate) {
			return out[i].SaleDate.After(out[j].SaleDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, err
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
