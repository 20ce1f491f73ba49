package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo lotes de compra sobre PostgreSQL.
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

const lotColumns = `id, product_id, purchase_date, quantity, remaining_quantity, unit_cost, created_at`

func scanLot(row pgx.Row) (entity.PurchaseLot, error) {
	var l entity.PurchaseLot
	err := row.Scan(&l.ID, &l.ProductID, &l.PurchaseDate, &l.Quantity, &l.RemainingQuantity, &l.UnitCost, &l.CreatedAt)
	return l, err
}

func (r *LotRepo) Create(ctx context.Context, l *entity.PurchaseLot) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO purchase_lots (`+lotColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		l.ID, l.ProductID, l.PurchaseDate, l.Quantity, l.RemainingQuantity, l.UnitCost, l.CreatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.ErrMissingReference
		case isCheckViolation(err):
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

func (r *LotRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseLot, error) {
	l, err := scanLot(r.q.QueryRow(ctx, `SELECT `+lotColumns+` FROM purchase_lots WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}

// List lotes más recientes primero, filtrados por producto y/o disponibilidad.
func (r *LotRepo) List(ctx context.Context, filter repository.LotFilter) ([]*entity.PurchaseLot, error) {
	query := `
		SELECT ` + lotColumns + ` FROM purchase_lots
		WHERE ($1 = '' OR product_id = $1)
		  AND (NOT $2 OR remaining_quantity > 0)
		ORDER BY purchase_date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query, filter.ProductID, filter.OnlyAvailable)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseLot
	for rows.Next() {
		l, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListAvailable lotes con stock de todos los productos en orden FIFO.
func (r *LotRepo) ListAvailable(ctx context.Context) ([]entity.PurchaseLot, error) {
	return r.available(ctx, `
		SELECT `+lotColumns+` FROM purchase_lots
		WHERE remaining_quantity > 0
		ORDER BY product_id, purchase_date ASC, created_at ASC`)
}

// ListAvailableForUpdate bloquea (SELECT FOR UPDATE) los lotes con stock del producto, en orden FIFO.
func (r *LotRepo) ListAvailableForUpdate(ctx context.Context, productID string) ([]entity.PurchaseLot, error) {
	return r.available(ctx, `
		SELECT `+lotColumns+` FROM purchase_lots
		WHERE product_id = $1 AND remaining_quantity > 0
		ORDER BY purchase_date ASC, created_at ASC
		FOR UPDATE`, productID)
}

func (r *LotRepo) available(ctx context.Context, query string, args ...any) ([]entity.PurchaseLot, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list available lots: %w", err)
	}
	defer rows.Close()

	var list []entity.PurchaseLot
	for rows.Next() {
		l, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// UpdateRemaining fija el disponible del lote. El CHECK de la tabla garantiza 0 <= disponible <= cantidad.
func (r *LotRepo) UpdateRemaining(ctx context.Context, lotID string, remaining decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx, `UPDATE purchase_lots SET remaining_quantity = $2 WHERE id = $1`, lotID, remaining)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update lot remaining: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LotRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM purchase_lots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lot: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
