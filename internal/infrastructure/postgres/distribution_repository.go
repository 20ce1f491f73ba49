package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
)

var _ repository.DistributionRepository = (*DistributionRepo)(nil)

// DistributionRepo distribuciones sobre PostgreSQL. product_id es NULL cuando no hay referencia.
type DistributionRepo struct {
	q Querier
}

// NewDistributionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDistributionRepository(q Querier) *DistributionRepo {
	return &DistributionRepo{q: q}
}

const distributionColumns = `id, COALESCE(product_id, ''), product_name, date, quantity, base_price, shipping_cost, sale_price,
	partner_share_percentage, total_cost, total_profit, partner_profit, supplier_profit, supplier_total_return,
	total_sale, total_cost_amount, total_profit_amount, total_partner_profit, total_supplier_profit,
	total_supplier_return, created_at`

func (r *DistributionRepo) Create(ctx context.Context, d *entity.Distribution) error {
	var productID *string
	if d.ProductID != "" {
		productID = &d.ProductID
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO distributions (id, product_id, product_name, date, quantity, base_price, shipping_cost, sale_price,
			partner_share_percentage, total_cost, total_profit, partner_profit, supplier_profit, supplier_total_return,
			total_sale, total_cost_amount, total_profit_amount, total_partner_profit, total_supplier_profit,
			total_supplier_return, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		d.ID, productID, d.ProductName, d.Date, d.Quantity, d.BasePrice, d.ShippingCost, d.SalePrice,
		d.PartnerSharePercentage, d.TotalCost, d.TotalProfit, d.PartnerProfit, d.SupplierProfit, d.SupplierTotalReturn,
		d.TotalSale, d.TotalCostAmount, d.TotalProfitAmount, d.TotalPartnerProfit, d.TotalSupplierProfit,
		d.TotalSupplierReturn, d.CreatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.ErrMissingReference
		}
		return fmt.Errorf("insert distribution: %w", err)
	}
	return nil
}

func (r *DistributionRepo) List(ctx context.Context, from, to time.Time) ([]*entity.Distribution, error) {
	from, to = dateBounds(from, to)
	rows, err := r.q.Query(ctx, `
		SELECT `+distributionColumns+` FROM distributions
		WHERE date BETWEEN $1 AND $2
		ORDER BY date DESC, created_at DESC`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list distributions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Distribution
	for rows.Next() {
		var d entity.Distribution
		if err := rows.Scan(
			&d.ID, &d.ProductID, &d.ProductName, &d.Date, &d.Quantity, &d.BasePrice, &d.ShippingCost, &d.SalePrice,
			&d.PartnerSharePercentage, &d.TotalCost, &d.TotalProfit, &d.PartnerProfit, &d.SupplierProfit, &d.SupplierTotalReturn,
			&d.TotalSale, &d.TotalCostAmount, &d.TotalProfitAmount, &d.TotalPartnerProfit, &d.TotalSupplierProfit,
			&d.TotalSupplierReturn, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *DistributionRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM distributions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete distribution: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
