package sql

import (
	"fmt"
	"strings"

	"github.com/FabrizioCaldarelli/db-mysql/dialect"
)

// Quoter is the dialect-specific identifier and literal quoting strategy
// consumed by the statement builder. Implementations must be safe for
// concurrent use; all bundled quoters are stateless.
type Quoter interface {
	// QuoteTableName quotes a possibly schema-qualified table name.
	// Names containing a parenthesis are passed through unchanged
	// (sub-query escape hatch).
	QuoteTableName(name string) string
	// QuoteSimpleTableName quotes a single table identifier without
	// splitting on dots.
	QuoteSimpleTableName(name string) string
	// QuoteColumnName quotes a possibly table-qualified column name.
	// It understands "table.column" and the "*" wildcard.
	QuoteColumnName(name string) string
	// QuoteSimpleColumnName quotes a single column identifier without
	// splitting on dots.
	QuoteSimpleColumnName(name string) string
	// QuoteValue quotes a string literal, escaping it for safe inline use.
	QuoteValue(v string) string
	// TypeMap maps abstract column types (e.g. "pk", "string") to the
	// physical types of the dialect.
	TypeMap() map[string]string
}

// QuoterFor returns the bundled Quoter for the given dialect name.
func QuoterFor(name string) (Quoter, error) {
	switch name {
	case dialect.MySQL:
		return mysqlQuoter, nil
	case dialect.Postgres:
		return postgresQuoter, nil
	case dialect.SQLite:
		return sqliteQuoter, nil
	default:
		return nil, &InvalidConfigurationError{Component: "quoter", Reason: fmt.Sprintf("unsupported dialect %q", name)}
	}
}

// ResolveType resolves an abstract column type through the quoter's type map.
// When the input carries a suffix after the first space (e.g. "string NOT NULL"),
// only the leading token is resolved and the suffix is appended verbatim.
// Unresolved tokens pass through unchanged.
func ResolveType(q Quoter, abstract string) string {
	types := q.TypeMap()
	if physical, ok := types[abstract]; ok {
		return physical
	}
	if i := strings.IndexByte(abstract, ' '); i != -1 {
		if physical, ok := types[abstract[:i]]; ok {
			return physical + abstract[i:]
		}
	}
	return abstract
}

// quoter is the shared Quoter implementation, parameterized by the quote
// characters, escaping rules and type map of a dialect.
type quoter struct {
	left, right string
	// backslashes reports whether the dialect treats backslash as an escape
	// character inside string literals (MySQL does, the others do not).
	backslashes bool
	types       map[string]string
}

// QuoteSimpleTableName implements Quoter.
func (q *quoter) QuoteSimpleTableName(name string) string {
	if strings.Contains(name, q.left) {
		return name
	}
	return q.left + name + q.right
}

// QuoteTableName implements Quoter.
func (q *quoter) QuoteTableName(name string) string {
	if strings.ContainsAny(name, "()") {
		return name
	}
	if !strings.Contains(name, ".") {
		return q.QuoteSimpleTableName(name)
	}
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = q.QuoteSimpleTableName(p)
	}
	return strings.Join(parts, ".")
}

// QuoteSimpleColumnName implements Quoter.
func (q *quoter) QuoteSimpleColumnName(name string) string {
	if name == "*" || strings.Contains(name, q.left) {
		return name
	}
	return q.left + name + q.right
}

// QuoteColumnName implements Quoter.
func (q *quoter) QuoteColumnName(name string) string {
	if strings.ContainsAny(name, "()") {
		return name
	}
	prefix := ""
	if i := strings.LastIndexByte(name, '.'); i != -1 {
		prefix = q.QuoteTableName(name[:i]) + "."
		name = name[i+1:]
	}
	return prefix + q.QuoteSimpleColumnName(name)
}

// QuoteValue implements Quoter.
func (q *quoter) QuoteValue(v string) string {
	if q.backslashes {
		v = strings.ReplaceAll(v, `\`, `\\`)
	}
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}

// TypeMap implements Quoter.
func (q *quoter) TypeMap() map[string]string { return q.types }

var (
	mysqlQuoter Quoter = &quoter{
		left: "`", right: "`", backslashes: true,
		types: map[string]string{
			"pk":        "int(11) NOT NULL AUTO_INCREMENT PRIMARY KEY",
			"bigpk":     "bigint(20) NOT NULL AUTO_INCREMENT PRIMARY KEY",
			"string":    "varchar(255)",
			"text":      "text",
			"integer":   "int(11)",
			"bigint":    "bigint(20)",
			"float":     "float",
			"decimal":   "decimal",
			"datetime":  "datetime",
			"timestamp": "timestamp",
			"time":      "time",
			"date":      "date",
			"binary":    "blob",
			"boolean":   "tinyint(1)",
			"money":     "decimal(19,4)",
		},
	}

	postgresQuoter Quoter = &quoter{
		left: `"`, right: `"`,
		types: map[string]string{
			"pk":        "serial NOT NULL PRIMARY KEY",
			"bigpk":     "bigserial NOT NULL PRIMARY KEY",
			"string":    "character varying (255)",
			"text":      "text",
			"integer":   "integer",
			"bigint":    "bigint",
			"float":     "double precision",
			"decimal":   "numeric",
			"datetime":  "timestamp",
			"timestamp": "timestamp",
			"time":      "time",
			"date":      "date",
			"binary":    "bytea",
			"boolean":   "boolean",
			"money":     "numeric(19,4)",
		},
	}

	sqliteQuoter Quoter = &quoter{
		left: `"`, right: `"`,
		types: map[string]string{
			"pk":        "integer PRIMARY KEY AUTOINCREMENT NOT NULL",
			"bigpk":     "integer PRIMARY KEY AUTOINCREMENT NOT NULL",
			"string":    "varchar(255)",
			"text":      "text",
			"integer":   "integer",
			"bigint":    "integer",
			"float":     "float",
			"decimal":   "decimal",
			"datetime":  "datetime",
			"timestamp": "timestamp",
			"time":      "time",
			"date":      "date",
			"binary":    "blob",
			"boolean":   "tinyint(1)",
			"money":     "decimal(19,4)",
		},
	}
)
