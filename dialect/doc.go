// Package dialect provides database dialect abstraction for the statement builder.
//
// This package defines the interfaces and constants used for database-specific
// operations, allowing statements produced by dialect/sql to target multiple
// database backends.
//
// # Supported Dialects
//
// Each dialect is identified by a constant string:
//
//	dialect.MySQL    = "mysql"
//	dialect.Postgres = "postgres"
//	dialect.SQLite   = "sqlite"
//
// # Driver Interface
//
// The Driver interface covers statement execution:
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// The Tx interface extends the standard operations with Commit and Rollback,
// and ExecQuerier is the subset implemented by both.
//
// # Usage
//
//	import (
//	    "github.com/FabrizioCaldarelli/db-mysql/dialect"
//	    "github.com/FabrizioCaldarelli/db-mysql/dialect/sql"
//	)
//
//	db, err := sql.Open(dialect.Postgres, "postgres://...")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
// # Sub-packages
//
//   - dialect/sql: declarative statement builder, per-dialect quoting, and the
//     database/sql driver implementation.
package dialect
