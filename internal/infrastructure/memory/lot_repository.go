package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/inventory"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo lotes de compra en memoria.
type LotRepo struct {
	h handle
}

func (r *LotRepo) Create(_ context.Context, lot *entity.PurchaseLot) error {
	return r.h.do(func(s *state) error {
		if _, ok := s.lots[lot.ID]; ok {
			return domain.ErrDuplicate
		}
		s.lots[lot.ID] = *lot
		return nil
	})
}

func (r *LotRepo) GetByID(_ context.Context, id string) (*entity.PurchaseLot, error) {
	var out *entity.PurchaseLot
	err := r.h.do(func(s *state) error {
		if l, ok := s.lots[id]; ok {
			out = &l
		}
		return nil
	})
	return out, err
}

// List devuelve los lotes más recientes primero.
func (r *LotRepo) List(_ context.Context, filter repository.LotFilter) ([]*entity.PurchaseLot, error) {
	var lots []entity.PurchaseLot
	err := r.h.do(func(s *state) error {
		for _, l := range s.lots {
			if filter.ProductID != "" && l.ProductID != filter.ProductID {
				continue
			}
			if filter.OnlyAvailable && !l.HasStock() {
				continue
			}
			lots = append(lots, l)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	inventory.SortFIFO(lots)
	out := make([]*entity.PurchaseLot, 0, len(lots))
	for i := len(lots) - 1; i >= 0; i-- {
		l := lots[i]
		out = append(out, &l)
	}
	return out, nil
}

func (r *LotRepo) ListAvailable(_ context.Context) ([]entity.PurchaseLot, error) {
	var out []entity.PurchaseLot
	err := r.h.do(func(s *state) error {
		out = make([]entity.PurchaseLot, 0, len(s.lots))
		for _, l := range s.lots {
			if l.HasStock() {
				out = append(out, l)
			}
		}
		return nil
	})
	inventory.SortByProductFIFO(out)
	return out, err
}

func (r *LotRepo) ListAvailableForUpdate(_ context.Context, productID string) ([]entity.PurchaseLot, error) {
	var all []entity.PurchaseLot
	err := r.h.do(func(s *state) error {
		for _, l := range s.lots {
			all = append(all, l)
		}
		return nil
	})
	return inventory.EligibleLots(productID, all), err
}

func (r *LotRepo) UpdateRemaining(_ context.Context, lotID string, remaining decimal.Decimal) error {
	return r.h.do(func(s *state) error {
		l, ok := s.lots[lotID]
		if !ok {
			return domain.ErrNotFound
		}
		l.RemainingQuantity = remaining
		if !l.Valid() {
			return domain.ErrInvalidInput
		}
		s.lots[lotID] = l
		return nil
	})
}

func (r *LotRepo) Delete(_ context.Context, id string) error {
	return r.h.do(func(s *state) error {
		if _, ok := s.lots[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.lots, id)
		return nil
	})
}
