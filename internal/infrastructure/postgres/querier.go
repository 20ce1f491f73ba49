package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae *pgxpool.Pool y pgx.Tx para que los repositorios funcionen con o sin transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var maxDate = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// dateBounds reemplaza un extremo final cero por la fecha máxima; el inicial cero ya es 0001-01-01.
func dateBounds(from, to time.Time) (time.Time, time.Time) {
	if to.IsZero() {
		to = maxDate
	}
	return from, to
}
