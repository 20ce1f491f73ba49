// Package distribution contiene los casos de uso del reparto de ganancias con socios:
// cálculo previo, registro, historial y valores sugeridos.
package distribution

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/domain"
	split "github.com/jhoicas/gestion-carnes/internal/domain/distribution"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/inventory"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
	"github.com/jhoicas/gestion-carnes/pkg/format"
	"github.com/jhoicas/gestion-carnes/pkg/logger"
)

// UnnamedLabel etiqueta de una distribución sin producto ni nombre.
const UnnamedLabel = "Sin nombre"

// UseCase orquesta el divisor de ganancias y la persistencia de distribuciones.
type UseCase struct {
	repo         repository.DistributionRepository
	productRepo  repository.ProductRepository
	lotRepo      repository.LotRepository
	saleRepo     repository.SaleRepository
	defaultShare decimal.Decimal
	log          *logger.Logger
}

// NewUseCase construye el caso de uso. defaultShare es el porcentaje sugerido para el socio.
func NewUseCase(
	repo repository.DistributionRepository,
	productRepo repository.ProductRepository,
	lotRepo repository.LotRepository,
	saleRepo repository.SaleRepository,
	defaultShare decimal.Decimal,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		repo:         repo,
		productRepo:  productRepo,
		lotRepo:      lotRepo,
		saleRepo:     saleRepo,
		defaultShare: defaultShare,
		log:          log,
	}
}

// Calculate aplica el reparto sin persistir. Cantidad omitida = 1.
func (uc *UseCase) Calculate(_ context.Context, in dto.CalculateDistributionRequest) (*dto.DistributionPreviewResponse, error) {
	qty, err := quantityOrOne(in.Quantity)
	if err != nil {
		return nil, err
	}
	unit, err := split.Split(split.Input{
		BasePrice:              in.BasePrice,
		ShippingCost:           in.ShippingCost,
		SalePrice:              in.SalePrice,
		PartnerSharePercentage: in.PartnerSharePercentage,
	})
	if err != nil {
		return nil, err
	}
	return &dto.DistributionPreviewResponse{
		Quantity: qty,
		Unit:     toSplitDTO(unit),
		Totals:   toSplitDTO(unit.Scale(qty)),
	}, nil
}

// Register calcula el reparto por kg, lo escala por la cantidad y guarda ambos.
// Si se indica ProductID el producto debe existir; su nombre queda como etiqueta.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterDistributionRequest) (*dto.DistributionResponse, error) {
	qty, err := quantityOrOne(in.Quantity)
	if err != nil {
		return nil, err
	}
	date, err := format.ParseDate(in.Date, format.Today())
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	label := strings.TrimSpace(in.ProductName)
	if in.ProductID != "" {
		product, err := uc.productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrMissingReference
		}
		label = product.Name
	}
	if label == "" {
		label = UnnamedLabel
	}

	unit, err := split.Split(split.Input{
		BasePrice:              in.BasePrice,
		ShippingCost:           in.ShippingCost,
		SalePrice:              in.SalePrice,
		PartnerSharePercentage: in.PartnerSharePercentage,
	})
	if err != nil {
		return nil, err
	}
	totals := unit.Scale(qty)

	dist := &entity.Distribution{
		ID:                     uuid.New().String(),
		ProductID:              in.ProductID,
		ProductName:            label,
		Date:                   date,
		Quantity:               qty,
		BasePrice:              in.BasePrice,
		ShippingCost:           in.ShippingCost,
		SalePrice:              in.SalePrice,
		PartnerSharePercentage: in.PartnerSharePercentage,
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
		CreatedAt:              time.Now(),
	}
	if err := uc.repo.Create(ctx, dist); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("distribution_id", dist.ID).
		Str("product", dist.ProductName).
		Str("quantity", qty.String()).
		Str("partner_profit", dist.TotalPartnerProfit.String()).
		Str("supplier_return", dist.TotalSupplierReturn.String()).
		Msg("distribución registrada")

	out := ToResponse(dist)
	return &out, nil
}

// List historial de distribuciones del rango (vacío = todo) con totales.
func (uc *UseCase) List(ctx context.Context, rng dto.DateRange) (*dto.DistributionListResponse, error) {
	from, to, err := format.ParseRange(rng.From, rng.To)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(ctx, from, to)
	if err != nil {
		return nil, err
	}
	resp := &dto.DistributionListResponse{
		Items: make([]dto.DistributionResponse, 0, len(list)),
		Totals: dto.DistributionTotalsDTO{
			TotalSale:           decimal.Zero,
			TotalPartnerProfit:  decimal.Zero,
			TotalSupplierProfit: decimal.Zero,
			TotalSupplierReturn: decimal.Zero,
		},
	}
	for _, d := range list {
		resp.Items = append(resp.Items, ToResponse(d))
		resp.Totals.Count++
		resp.Totals.TotalSale = resp.Totals.TotalSale.Add(d.TotalSale)
		resp.Totals.TotalPartnerProfit = resp.Totals.TotalPartnerProfit.Add(d.TotalPartnerProfit)
		resp.Totals.TotalSupplierProfit = resp.Totals.TotalSupplierProfit.Add(d.TotalSupplierProfit)
		resp.Totals.TotalSupplierReturn = resp.Totals.TotalSupplierReturn.Add(d.TotalSupplierReturn)
	}
	return resp, nil
}

// Delete elimina una distribución.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Defaults valores sugeridos para el formulario: precio base = costo promedio actual
// redondeado a 2 decimales, precio de venta = el de la última venta del producto.
func (uc *UseCase) Defaults(ctx context.Context, productID string) (*dto.DistributionDefaultsResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrMissingReference
	}
	lots, err := uc.lotRepo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	salePrice := decimal.Zero
	last, err := uc.saleRepo.LastByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if last != nil {
		salePrice = last.UnitPrice
	}
	return &dto.DistributionDefaultsResponse{
		ProductID:              product.ID,
		ProductName:            product.Name,
		BasePrice:              inventory.AverageCostFor(product.ID, lots).Round(2),
		SalePrice:              salePrice,
		ShippingCost:           decimal.Zero,
		PartnerSharePercentage: uc.defaultShare,
	}, nil
}

func quantityOrOne(q *decimal.Decimal) (decimal.Decimal, error) {
	if q == nil {
		return decimal.NewFromInt(1), nil
	}
	if !q.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return *q, nil
}

func toSplitDTO(r split.Result) dto.SplitDTO {
	return dto.SplitDTO{
		TotalCost:           r.TotalCost,
		SalePrice:           r.SalePrice,
		TotalProfit:         r.TotalProfit,
		PartnerProfit:       r.PartnerProfit,
		SupplierProfit:      r.SupplierProfit,
		SupplierTotalReturn: r.SupplierTotalReturn,
	}
}

// ToResponse convierte una distribución en su DTO de salida.
func ToResponse(d *entity.Distribution) dto.DistributionResponse {
	return dto.DistributionResponse{
		ID:                     d.ID,
		ProductID:              d.ProductID,
		ProductName:            d.ProductName,
		Date:                   d.Date,
		Quantity:               d.Quantity,
		BasePrice:              d.BasePrice,
		ShippingCost:           d.ShippingCost,
		SalePrice:              d.SalePrice,
		PartnerSharePercentage: d.PartnerSharePercentage,
		Unit: dto.SplitDTO{
			TotalCost:           d.TotalCost,
			SalePrice:           d.SalePrice,
			TotalProfit:         d.TotalProfit,
			PartnerProfit:       d.PartnerProfit,
			SupplierProfit:      d.SupplierProfit,
			SupplierTotalReturn: d.SupplierTotalReturn,
		},
		Totals: dto.SplitDTO{
			TotalCost:           d.TotalCostAmount,
			SalePrice:           d.TotalSale,
			TotalProfit:         d.TotalProfitAmount,
			PartnerProfit:       d.TotalPartnerProfit,
			SupplierProfit:      d.TotalSupplierProfit,
			SupplierTotalReturn: d.TotalSupplierReturn,
		},
		CreatedAt: d.CreatedAt,
	}
}
