package sql

import (
	"strings"
)

// buildCreateTable compiles a CREATE TABLE statement. Named columns resolve
// their abstract type through the dialect type map; unnamed definitions are
// raw fragments (e.g. composite PRIMARY KEY clauses) emitted verbatim.
func (b *StatementBuilder) buildCreateTable(op *CreateTable) string {
	defs := make([]string, len(op.Columns))
	for i, col := range op.Columns {
		if col.Name == "" {
			defs[i] = col.Type
			continue
		}
		defs[i] = b.quoter.QuoteSimpleColumnName(col.Name) + " " + ResolveType(b.quoter, col.Type)
	}
	stmt := "CREATE TABLE " + b.quoter.QuoteTableName(op.Table) +
		" (\n\t" + strings.Join(defs, ",\n\t") + "\n)"
	if op.Options != "" {
		stmt += " " + op.Options
	}
	return stmt
}

// buildAddForeignKey compiles an ALTER TABLE ... ADD CONSTRAINT ... FOREIGN
// KEY statement with optional referential actions.
func (b *StatementBuilder) buildAddForeignKey(op *AddForeignKey) string {
	stmt := "ALTER TABLE " + b.quoter.QuoteTableName(op.Table) +
		" ADD CONSTRAINT " + b.quoter.QuoteColumnName(op.Name) +
		" FOREIGN KEY (" + b.quoteColumnList(op.Columns) + ")" +
		" REFERENCES " + b.quoter.QuoteTableName(op.RefTable) +
		" (" + b.quoteColumnList(op.RefColumns) + ")"
	if op.OnDelete != "" {
		stmt += " ON DELETE " + op.OnDelete
	}
	if op.OnUpdate != "" {
		stmt += " ON UPDATE " + op.OnUpdate
	}
	return stmt
}

// buildCreateIndex compiles a CREATE INDEX statement. Column entries
// containing a parenthesis are functional expressions left unquoted.
func (b *StatementBuilder) buildCreateIndex(op *CreateIndex) string {
	kind := "CREATE INDEX "
	if op.Unique {
		kind = "CREATE UNIQUE INDEX "
	}
	return kind + b.quoter.QuoteColumnName(op.Name) +
		" ON " + b.quoter.QuoteTableName(op.Table) +
		" (" + b.quoteColumnList(op.Columns) + ")"
}

// quoteColumnList quotes a comma-separated column list, passing entries that
// contain a parenthesis through as raw expressions.
func (b *StatementBuilder) quoteColumnList(columns string) string {
	parts := splitRe.Split(columns, -1)
	for i, p := range parts {
		if !strings.Contains(p, "(") {
			parts[i] = b.quoter.QuoteColumnName(p)
		}
	}
	return strings.Join(parts, ", ")
}
