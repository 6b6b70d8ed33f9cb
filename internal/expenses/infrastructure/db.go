package infrastructure

import (
	"context"
	"database/sql"
)

// DBTX is the executor shared by *sql.DB and *sql.Tx, so a repository can
// run directly on the pool or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
