// Package sql provides declarative SQL statement building and database
// dialect abstraction.
//
// This package turns statement descriptions (Query values) into dialect
// specific SQL text plus an ordered parameter bag. It is the foundation for
// generating and executing statements across PostgreSQL, MySQL, and SQLite.
//
// # Building Statements
//
// A StatementBuilder is bound to a single dialect and is safe for concurrent
// use. Queries are plain data:
//
//	b, err := sql.Dialect(dialect.Postgres)
//	params := sql.NewParams()
//	stmt, err := b.Build(&sql.Query{
//	    Select: "id, name",
//	    From:   "users u",
//	    Where:  []any{"AND", []any{"=", "status", "active"}, []any{">", "age", 18}},
//	    Limit:  sql.Int(10),
//	}, params)
//
// # Conditions
//
// Conditions are composed recursively from operator-prefixed slices:
//
//	[]any{"AND", c1, c2, ...}          // (c1) AND (c2)
//	[]any{"=", "name", "john"}         // name='john'
//	[]any{"BETWEEN", "age", 18, 30}    // age BETWEEN 18 AND 30
//	[]any{"IN", "status", []string{...}}
//	[]any{"LIKE", "name", "jo"}        // name LIKE 'jo'
//
// Raw SQL strings and Expr values pass through the compiler verbatim.
//
// # Data Modification and Schema Changes
//
// DML and DDL statements are described by Operation values attached to the
// Query:
//
//	cv := sql.ColumnValues{}.Set("name", "john").Set("age", 25)
//	stmt, _ := b.Build(&sql.Query{Op: &sql.Insert{Table: "users", Columns: cv}}, params)
//
// Column values are bound to synthesized named placeholders (:p0, :p1, ...)
// collected in the returned Params. ResolveNamed rewrites named placeholders
// into the positional form the target driver expects.
//
// # Abstract Column Types
//
// Schema operations accept abstract column types that each dialect maps to
// its physical type:
//
//	sql.ColumnDef{Name: "id", Type: "pk"}
//	sql.ColumnDef{Name: "name", Type: "string(64) NOT NULL"}
//
// # Execution
//
// Driver adapts database/sql connections to the dialect.Driver interface,
// StatsDriver layers statement statistics and slow-statement logging on top.
package sql
