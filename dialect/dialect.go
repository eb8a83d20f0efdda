package dialect

import (
	"context"
)

// Dialect names for the supported SQL databases.
const (
	// MySQL is the mysql dialect name.
	MySQL = "mysql"
	// Postgres is the postgres dialect name.
	Postgres = "postgres"
	// SQLite is the sqlite dialect name.
	SQLite = "sqlite"
)

// ExecQuerier wraps the two standard database operations.
type ExecQuerier interface {
	// Exec executes a statement that does not return rows. The args parameter
	// is expected to be a []any, and v an optional *sql.Result destination.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a statement that returns rows. The args parameter is
	// expected to be a []any, and v a *Rows destination.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the interface that wraps all database operations.
type Driver interface {
	ExecQuerier
	// Tx starts and returns a new transaction.
	Tx(context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx wraps transaction commit and rollback on top of the standard operations.
type Tx interface {
	ExecQuerier
	Commit() error
	Rollback() error
}
