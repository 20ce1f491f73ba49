// Package memory implementa los puertos de persistencia en memoria.
// Útil para desarrollo local (STORAGE_DRIVER=memory) y para pruebas.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/gestion-carnes/internal/application/inventory"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

type state struct {
	products      map[string]entity.Product
	lots          map[string]entity.PurchaseLot
	sales         map[string]entity.Sale
	expenses      map[string]entity.Expense
	distributions map[string]entity.Distribution
}

func newState() *state {
	return &state{
		products:      make(map[string]entity.Product),
		lots:          make(map[string]entity.PurchaseLot),
		sales:         make(map[string]entity.Sale),
		expenses:      make(map[string]entity.Expense),
		distributions: make(map[string]entity.Distribution),
	}
}

func (s *state) clone() *state {
	c := &state{
		products:      make(map[string]entity.Product, len(s.products)),
		lots:          make(map[string]entity.PurchaseLot, len(s.lots)),
		sales:         make(map[string]entity.Sale, len(s.sales)),
		expenses:      make(map[string]entity.Expense, len(s.expenses)),
		distributions: make(map[string]entity.Distribution, len(s.distributions)),
	}
	for k, v := range s.products {
		c.products[k] = cloneProduct(v)
	}
	for k, v := range s.lots {
		c.lots[k] = v
	}
	for k, v := range s.sales {
		c.sales[k] = v
	}
	for k, v := range s.expenses {
		c.expenses[k] = v
	}
	for k, v := range s.distributions {
		c.distributions[k] = v
	}
	return c
}

// Store estado compartido de todos los repositorios en memoria.
// Las transacciones trabajan sobre una copia y la publican al confirmar.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// handle da acceso al estado: el de la transacción en curso o el confirmado (bajo el mutex).
type handle struct {
	store *Store
	tx    *state
}

func (h handle) do(fn func(s *state) error) error {
	if h.tx != nil {
		return fn(h.tx)
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	return fn(h.store.st)
}

func (s *Store) root() handle { return handle{store: s} }

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{h: s.root()} }

// Lots repositorio de lotes fuera de transacción.
func (s *Store) Lots() *LotRepo { return &LotRepo{h: s.root()} }

// Sales repositorio de ventas fuera de transacción.
func (s *Store) Sales() *SaleRepo { return &SaleRepo{h: s.root()} }

// Expenses repositorio de gastos.
func (s *Store) Expenses() *ExpenseRepo { return &ExpenseRepo{h: s.root()} }

// Distributions repositorio de distribuciones.
func (s *Store) Distributions() *DistributionRepo { return &DistributionRepo{h: s.root()} }

// Analytics consultas agregadas.
func (s *Store) Analytics() *AnalyticsRepo { return &AnalyticsRepo{h: s.root()} }

// runTx serializa las transacciones con el mutex del almacén; si fn falla la copia se descarta.
func (s *Store) runTx(ctx context.Context, fn func(h handle) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.st.clone()
	if err := fn(handle{store: s, tx: tx}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = tx
	return nil
}

// Run ejecuta fn con repos atados a una transacción en memoria.
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	lotRepo repository.LotRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return s.runTx(ctx, func(h handle) error {
		return fn(&ProductRepo{h: h}, &LotRepo{h: h}, &SaleRepo{h: h})
	})
}

// RunAll ejecuta fn con todos los repositorios en una misma transacción.
func (s *Store) RunAll(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return s.runTx(ctx, func(h handle) error {
		return fn(repository.Repositories{
			Products:      &ProductRepo{h: h},
			Lots:          &LotRepo{h: h},
			Sales:         &SaleRepo{h: h},
			Expenses:      &ExpenseRepo{h: h},
			Distributions: &DistributionRepo{h: h},
		})
	})
}

func cloneProduct(p entity.Product) entity.Product {
	if p.CatalogPrice != nil {
		v := *p.CatalogPrice
		p.CatalogPrice = &v
	}
	if p.VisibleInCatalog != nil {
		v := *p.VisibleInCatalog
		p.VisibleInCatalog = &v
	}
	if p.ProfitMargin != nil {
		v := *p.ProfitMargin
		p.ProfitMargin = &v
	}
	return p
}
