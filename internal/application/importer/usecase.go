package importer

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appdist "github.com/jhoicas/gestion-carnes/internal/application/distribution"
	split "github.com/jhoicas/gestion-carnes/internal/domain/distribution"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
	"github.com/jhoicas/gestion-carnes/pkg/format"
	"github.com/jhoicas/gestion-carnes/pkg/logger"
)

// Runner ejecuta fn en una transacción con todos los repositorios.
type Runner interface {
	RunAll(ctx context.Context, fn func(repos repository.Repositories) error) error
}

// Counts registros importados y omitidos de una sección.
type Counts struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Report resultado de la importación.
type Report struct {
	Products      Counts `json:"products"`
	Purchases     Counts `json:"purchases"`
	Sales         Counts `json:"sales"`
	Expenses      Counts `json:"expenses"`
	Distributions Counts `json:"distributions"`
	DryRun        bool   `json:"dry_run"`
}

var errDryRun = errors.New("dry run")

// UseCase importa un respaldo en una sola transacción. Registros ya existentes (mismo ID,
// o mismo nombre para productos) se omiten, por lo que reimportar es seguro.
type UseCase struct {
	runner Runner
	log    *logger.Logger
	now    func() time.Time
}

// NewUseCase construye el importador.
func NewUseCase(runner Runner, log *logger.Logger) *UseCase {
	return &UseCase{runner: runner, log: log, now: time.Now}
}

// Import carga el respaldo. Con dryRun todo se calcula y se descarta al final.
func (uc *UseCase) Import(ctx context.Context, b *Backup, dryRun bool) (*Report, error) {
	var report Report
	err := uc.runner.RunAll(ctx, func(repos repository.Repositories) error {
		report = Report{DryRun: dryRun}
		productIDs, err := uc.importProducts(ctx, repos.Products, b.Products, &report.Products)
		if err != nil {
			return err
		}
		if err := uc.importPurchases(ctx, repos.Lots, productIDs, b.Purchases, &report.Purchases); err != nil {
			return err
		}
		if err := uc.importSales(ctx, repos, productIDs, b.Sales, &report.Sales); err != nil {
			return err
		}
		if err := uc.importExpenses(ctx, repos.Expenses, b.Expenses, &report.Expenses); err != nil {
			return err
		}
		if err := uc.importDistributions(ctx, repos, b.Distributions, &report.Distributions); err != nil {
			return err
		}
		if dryRun {
			return errDryRun
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDryRun) {
		return nil, err
	}
	uc.log.Info().
		Bool("dry_run", dryRun).
		Int("products", report.Products.Imported).
		Int("purchases", report.Purchases.Imported).
		Int("sales", report.Sales.Imported).
		Int("expenses", report.Expenses.Imported).
		Int("distributions", report.Distributions.Imported).
		Msg("importación finalizada")
	return &report, nil
}

// importProducts devuelve el mapa id del respaldo -> id almacenado.
func (uc *UseCase) importProducts(ctx context.Context, repo repository.ProductRepository, in []BackupProduct, c *Counts) (map[string]string, error) {
	ids := make(map[string]string, len(in))
	for _, bp := range in {
		name := strings.TrimSpace(bp.Name.String())
		if name == "" {
			uc.skip(c, "producto", bp.ID.String(), "sin nombre")
			continue
		}
		id := bp.ID.String()
		if id == "" {
			id = uuid.New().String()
		}
		existing, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			if existing, err = repo.GetByName(ctx, name); err != nil {
				return nil, err
			}
		}
		if existing != nil {
			ids[id] = existing.ID
			uc.skip(c, "producto", id, "ya existe")
			continue
		}

		now := uc.now()
		p := &entity.Product{
			ID:               id,
			Name:             name,
			Description:      bp.Description.String(),
			Category:         bp.Category.String(),
			ImageURL:         bp.Image.String(),
			CatalogPrice:     bp.ManualPrice.positivePtr(),
			VisibleInCatalog: bp.VisibleInShop,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if bp.ProfitMargin.Valid && !bp.ProfitMargin.Value.IsNegative() {
			m := bp.ProfitMargin.Value
			p.ProfitMargin = &m
		}
		if err := repo.Create(ctx, p); err != nil {
			return nil, err
		}
		ids[id] = id
		c.Imported++
	}
	return ids, nil
}

func (uc *UseCase) importPurchases(ctx context.Context, repo repository.LotRepository, productIDs map[string]string, in []BackupPurchase, c *Counts) error {
	for _, bp := range in {
		productID, ok := productIDs[bp.ProductID.String()]
		if !ok {
			uc.skip(c, "compra", bp.ID.String(), "producto inexistente")
			continue
		}
		id := bp.ID.String()
		if id == "" {
			id = uuid.New().String()
		} else {
			existing, err := repo.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if existing != nil {
				uc.skip(c, "compra", id, "ya existe")
				continue
			}
		}
		date := uc.date(bp.Date)
		createdAt, ok := bp.CreatedAt.millis()
		if !ok {
			createdAt = date
		}
		qty := bp.Quantity.or(decimal.Zero)
		lot := &entity.PurchaseLot{
			ID:                id,
			ProductID:         productID,
			PurchaseDate:      date,
			Quantity:          qty,
			RemainingQuantity: bp.Remaining.or(qty),
			UnitCost:          bp.UnitCost.or(decimal.Zero),
			CreatedAt:         createdAt,
		}
		if !lot.Valid() {
			uc.skip(c, "compra", id, "cantidades o costo inválidos")
			continue
		}
		if err := repo.Create(ctx, lot); err != nil {
			return err
		}
		c.Imported++
	}
	return nil
}

func (uc *UseCase) importSales(ctx context.Context, repos repository.Repositories, productIDs map[string]string, in []BackupSale, c *Counts) error {
	for _, bs := range in {
		id := bs.ID.String()
		if id == "" {
			id = uuid.New().String()
		} else {
			existing, err := repos.Sales.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if existing != nil {
				uc.skip(c, "venta", id, "ya existe")
				continue
			}
		}
		qty := bs.Quantity.or(decimal.Zero)
		price := bs.UnitPrice.or(decimal.Zero)
		if !qty.GreaterThan(decimal.Zero) || price.IsNegative() {
			uc.skip(c, "venta", id, "cantidad o precio inválidos")
			continue
		}

		productID := bs.ProductID.String()
		if mapped, ok := productIDs[productID]; ok {
			productID = mapped
		}
		name := bs.ProductName.String()
		if name == "" {
			p, err := repos.Products.GetByID(ctx, productID)
			if err != nil {
				return err
			}
			if p != nil {
				name = p.Name
			}
		}

		date := uc.date(bs.Date)
		revenue := bs.Revenue.or(qty.Mul(price))
		cost := bs.Cost.or(decimal.Zero)
		sale := &entity.Sale{
			ID:          id,
			ProductID:   productID,
			ProductName: name,
			SaleDate:    date,
			Quantity:    qty,
			UnitPrice:   price,
			Revenue:     revenue,
			CostBasis:   cost,
			Profit:      bs.Profit.or(revenue.Sub(cost)),
			CreatedAt:   date,
		}
		if err := repos.Sales.Create(ctx, sale); err != nil {
			return err
		}
		c.Imported++
	}
	return nil
}

func (uc *UseCase) importExpenses(ctx context.Context, repo repository.ExpenseRepository, in []BackupExpense, c *Counts) error {
	current, err := repo.List(ctx, math.MaxInt32, 0)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(current))
	for _, e := range current {
		seen[e.ID] = true
	}

	for _, be := range in {
		id := be.ID.String()
		if id == "" {
			id = uuid.New().String()
		}
		if seen[id] {
			uc.skip(c, "gasto", id, "ya existe")
			continue
		}
		concept := be.Concept.String()
		if concept == "" {
			concept = be.Description.String()
		}
		amount := be.Amount.or(decimal.Zero)
		if concept == "" || amount.IsNegative() {
			uc.skip(c, "gasto", id, "concepto vacío o monto negativo")
			continue
		}
		date := uc.date(be.Date)
		if err := repo.Create(ctx, &entity.Expense{
			ID:        id,
			Concept:   concept,
			Amount:    amount,
			Date:      date,
			CreatedAt: date,
		}); err != nil {
			return err
		}
		seen[id] = true
		c.Imported++
	}
	return nil
}

// importDistributions recalcula el reparto y enlaza el producto por nombre cuando existe.
func (uc *UseCase) importDistributions(ctx context.Context, repos repository.Repositories, in []BackupDistribution, c *Counts) error {
	current, err := repos.Distributions.List(ctx, time.Time{}, time.Time{})
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(current))
	for _, d := range current {
		seen[d.ID] = true
	}

	for _, bd := range in {
		id := bd.ID.String()
		if id == "" {
			id = uuid.New().String()
		}
		if seen[id] {
			uc.skip(c, "distribución", id, "ya existe")
			continue
		}

		qty := bd.Quantity.or(decimal.NewFromInt(1))
		if !qty.GreaterThan(decimal.Zero) {
			qty = decimal.NewFromInt(1)
		}
		input := split.Input{
			BasePrice:              bd.BasePrice.or(decimal.Zero),
			ShippingCost:           bd.ShippingCost.or(decimal.Zero),
			SalePrice:              bd.SalePrice.or(decimal.Zero),
			PartnerSharePercentage: bd.PartnerSharePercentage.or(decimal.NewFromInt(50)),
		}
		unit, err := split.Split(input)
		if err != nil {
			uc.skip(c, "distribución", id, err.Error())
			continue
		}
		totals := unit.Scale(qty)

		label := bd.Product.String()
		var productID string
		if label != "" {
			p, err := repos.Products.GetByName(ctx, label)
			if err != nil {
				return err
			}
			if p != nil {
				productID = p.ID
				label = p.Name
			}
		} else {
			label = appdist.UnnamedLabel
		}

		date := uc.date(bd.Date)
		dist := &entity.Distribution{
			ID:                     id,
			ProductID:              productID,
			ProductName:            label,
			Date:                   date,
			Quantity:               qty,
			BasePrice:              input.BasePrice,
			ShippingCost:           input.ShippingCost,
			SalePrice:              input.SalePrice,
			PartnerSharePercentage: input.PartnerSharePercentage,
			TotalCost:              unit.TotalCost,
			TotalProfit:            unit.TotalProfit,
			PartnerProfit:          unit.PartnerProfit,
			SupplierProfit:         unit.SupplierProfit,
			SupplierTotalReturn:    unit.SupplierTotalReturn,
			TotalSale:              totals.SalePrice,
			TotalCostAmount:        totals.TotalCost,
			TotalProfitAmount:      totals.TotalProfit,
			TotalPartnerProfit:     totals.PartnerProfit,
			TotalSupplierProfit:    totals.SupplierProfit,
			TotalSupplierReturn:    totals.SupplierTotalReturn,
			CreatedAt:              date,
		}
		if err := repos.Distributions.Create(ctx, dist); err != nil {
			return err
		}
		seen[id] = true
		c.Imported++
	}
	return nil
}

// date interpreta la fecha del respaldo; vacía o inválida = hoy.
func (uc *UseCase) date(s flexString) time.Time {
	today := format.Today()
	d, err := format.ParseDate(s.String(), today)
	if err != nil {
		uc.log.Warn().Str("fecha", s.String()).Msg("fecha inválida en respaldo; se usa hoy")
		return today
	}
	return d
}

func (uc *UseCase) skip(c *Counts, kind, id, reason string) {
	c.Skipped++
	uc.log.Warn().Str("tipo", kind).Str("id", id).Str("motivo", reason).Msg("registro omitido")
}
