package postgres

import (
	"context"
	"database/sql"
)

// Queryer is satisfied by *sql.DB, *sql.Tx and *Connection, so repositories
// work the same inside and outside a transaction.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
