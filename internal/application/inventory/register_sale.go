package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/pkg/format"
)

// RegisterSaleFromRequest adapta el request HTTP al caso de uso RegisterSale(ctx, SaleInputDTO).
func (uc *SaleUseCase) RegisterSaleFromRequest(ctx context.Context, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	date, err := format.ParseDate(in.SaleDate, time.Time{})
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return uc.RegisterSale(ctx, SaleInputDTO{
		ProductID: in.ProductID,
		SaleDate:  date,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
	})
}
