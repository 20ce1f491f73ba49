package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
)

var _ repository.DistributionRepository = (*DistributionRepo)(nil)

// DistributionRepo distribuciones en memoria.
type DistributionRepo struct {
	h handle
}

func (r *DistributionRepo) Create(_ context.Context, d *entity.Distribution) error {
	return r.h.do(func(s *state) error {
		if _, ok := s.distributions[d.ID]; ok {
			return domain.ErrDuplicate
		}
		s.distributions[d.ID] = *d
		return nil
	})
}

func (r *DistributionRepo) List(_ context.Context, from, to time.Time) ([]*entity.Distribution, error) {
	var out []*entity.Distribution
	err := r.h.do(func(s *state) error {
		for _, d := range s.distributions {
			if !inRange(d.Date, from, to) {
				continue
			}
			d := d
			out = append(out, &d)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, err
}

func (r *DistributionRepo) Delete(_ context.Context, id string) error {
	return r.h.do(func(s *state) error {
		if _, ok := s.distributions[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.distributions, id)
		return nil
	})
}

// inRange fechas inclusivas; un extremo cero no limita.
func inRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}
