package sql

import (
	"sort"
)

// Query is the declarative description of a SELECT statement, or, when Op is
// set, of a single DML/DDL operation. The zero value selects `*` with no
// clauses. Queries are read-only inputs to Build and may be reused across
// builds and goroutines.
//
// Clause fields accept either a string or a list: a string containing a
// parenthesis is treated as a raw, already-composed fragment and passed
// through unchanged; any other string is split on commas; list elements that
// implement fmt.Stringer (e.g. *Expr) are stringified verbatim.
type Query struct {
	// Select lists the column expressions. Nil or empty means `*`.
	Select any
	// Distinct adds the DISTINCT keyword to the select clause.
	Distinct bool
	// SelectOption is a raw fragment appended after DISTINCT (e.g. modifiers
	// such as SQL_CALC_FOUND_ROWS).
	SelectOption string
	// From lists the tables to select from.
	From any
	// Join lists the join descriptors, compiled in order.
	Join []Join
	// Where is the condition tree for the WHERE clause.
	Where Cond
	// GroupBy lists the grouping columns.
	GroupBy any
	// Having is the condition tree for the HAVING clause.
	Having Cond
	// Union lists sub-queries (*Query) or raw SQL strings appended as
	// UNION clauses.
	Union []any
	// OrderBy lists the ordering columns, each with an optional trailing
	// ASC/DESC token.
	OrderBy any
	// Limit caps the number of returned rows. Nil or negative means no limit;
	// zero emits LIMIT 0.
	Limit *int
	// Offset skips the leading rows. Emitted only when positive.
	Offset *int

	// Op, when non-nil, turns the build into the given DML/DDL operation and
	// all clause fields above are ignored.
	Op Operation
}

// Join describes one JOIN clause: a join type, a target table and an optional
// ON condition compiled through the condition compiler.
type Join struct {
	// Type is the join kind, e.g. "LEFT JOIN" or "INNER JOIN".
	Type string
	// Table is the joined table, with optional alias ("posts p").
	Table string
	// On is the optional join condition.
	On Cond
}

// Cond is a condition tree. It is one of:
//
//   - nil or "" — no condition, compiles to the empty string;
//   - string — raw SQL passed through verbatim (the caller is responsible
//     for its safety);
//   - *Expr — raw SQL fragment;
//   - []any — an operator application: the first element is the operator
//     token (case-insensitive), the rest are its operands. Boolean operators
//     (AND/OR) take nested Cond operands; the others take a column followed
//     by value operands.
type Cond = any

// Expr is a raw SQL fragment carrying its own named parameters. When used as
// a column value in INSERT/UPDATE, the fragment text is embedded as-is and
// the parameters are merged into the statement's parameter set instead of a
// synthesized placeholder.
type Expr struct {
	// Text is the raw SQL fragment.
	Text string
	// Params maps placeholder names used inside Text to their values.
	Params map[string]any
}

// Raw returns an Expr for the given SQL fragment.
func Raw(text string) *Expr { return &Expr{Text: text} }

// RawParams returns an Expr for the given SQL fragment with named parameters.
func RawParams(text string, params map[string]any) *Expr {
	return &Expr{Text: text, Params: params}
}

// String returns the raw fragment text, letting an Expr pass through the
// clause builders unchanged.
func (e *Expr) String() string { return e.Text }

// paramNames returns the expression's parameter names in stable order.
func (e *Expr) paramNames() []string {
	names := make([]string, 0, len(e.Params))
	for name := range e.Params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ColumnValue pairs a column name with its value for INSERT/UPDATE. Values
// are bound through synthesized placeholders unless they are *Expr.
type ColumnValue struct {
	Name  string
	Value any
}

// ColumnValues is an ordered list of column/value pairs. Order determines
// both the column order in the statement and placeholder numbering.
type ColumnValues []ColumnValue

// Set appends a column/value pair and returns the extended list.
func (cv ColumnValues) Set(name string, value any) ColumnValues {
	return append(cv, ColumnValue{Name: name, Value: value})
}

// ColumnDef describes one entry of a CREATE TABLE column list. A definition
// with an empty Name is a raw DDL fragment emitted verbatim (e.g. a composite
// "PRIMARY KEY (a, b)" clause); otherwise Type is an abstract type resolved
// through the dialect type map.
type ColumnDef struct {
	Name string
	Type string
}

// Operation is the closed set of non-SELECT directives a Query can carry.
// Building dispatches on the concrete type with an exhaustive switch.
type Operation interface {
	operation()
}

// Insert inserts one row. Column order determines placeholder numbering.
// An empty column list emits INSERT INTO t DEFAULT VALUES.
type Insert struct {
	Table   string
	Columns ColumnValues
}

// Update updates the rows matching Where, or all rows when Where is empty.
type Update struct {
	Table   string
	Columns ColumnValues
	Where   Cond
}

// Delete deletes the rows matching Where, or all rows when Where is empty.
type Delete struct {
	Table string
	Where Cond
}

// CreateTable creates a table from ordered column definitions and an optional
// raw options fragment appended after the closing parenthesis.
type CreateTable struct {
	Table   string
	Columns []ColumnDef
	Options string
}

// RenameTable renames a table.
type RenameTable struct {
	Table string
	To    string
}

// DropTable drops a table.
type DropTable struct {
	Table string
}

// TruncateTable truncates a table.
type TruncateTable struct {
	Table string
}

// AddColumn adds a column with an abstract type.
type AddColumn struct {
	Table  string
	Column string
	Type   string
}

// DropColumn drops a column.
type DropColumn struct {
	Table  string
	Column string
}

// RenameColumn renames a column.
type RenameColumn struct {
	Table  string
	Column string
	To     string
}

// AlterColumn redefines a column with an abstract type.
type AlterColumn struct {
	Table  string
	Column string
	Type   string
}

// AddForeignKey adds a named foreign key constraint. Columns and RefColumns
// are comma-separated column lists.
type AddForeignKey struct {
	Name       string
	Table      string
	Columns    string
	RefTable   string
	RefColumns string
	// OnDelete and OnUpdate are optional referential actions
	// (CASCADE, SET NULL, RESTRICT, SET DEFAULT, NO ACTION).
	OnDelete string
	OnUpdate string
}

// DropForeignKey drops a named foreign key constraint.
type DropForeignKey struct {
	Name  string
	Table string
}

// CreateIndex creates an index over a comma-separated column list. Entries
// containing a parenthesis are treated as raw expressions and left unquoted.
type CreateIndex struct {
	Name    string
	Table   string
	Columns string
	Unique  bool
}

// DropIndex drops a named index.
type DropIndex struct {
	Name  string
	Table string
}

func (*Insert) operation()         {}
func (*Update) operation()         {}
func (*Delete) operation()         {}
func (*CreateTable) operation()    {}
func (*RenameTable) operation()    {}
func (*DropTable) operation()      {}
func (*TruncateTable) operation()  {}
func (*AddColumn) operation()      {}
func (*DropColumn) operation()     {}
func (*RenameColumn) operation()   {}
func (*AlterColumn) operation()    {}
func (*AddForeignKey) operation()  {}
func (*DropForeignKey) operation() {}
func (*CreateIndex) operation()    {}
func (*DropIndex) operation()      {}

// Int returns a pointer to v, for the Limit and Offset fields.
func Int(v int) *int { return &v }
