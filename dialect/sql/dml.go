package sql

import (
	"strings"
)

// buildInsert compiles an INSERT statement, binding one placeholder per
// literal value. Expression values embed their text and merge their own
// parameters instead.
func (b *StatementBuilder) buildInsert(op *Insert, st *buildState) (string, error) {
	if len(op.Columns) == 0 {
		return "INSERT INTO " + b.quoter.QuoteTableName(op.Table) + " DEFAULT VALUES", nil
	}
	var (
		cols   = make([]string, len(op.Columns))
		values = make([]string, len(op.Columns))
	)
	for i, cv := range op.Columns {
		cols[i] = b.quoter.QuoteColumnName(cv.Name)
		values[i] = b.bindValue(cv.Value, st)
	}
	return "INSERT INTO " + b.quoter.QuoteTableName(op.Table) +
		" (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(values, ", ") + ")", nil
}

// buildUpdate compiles an UPDATE statement with its optional WHERE clause.
func (b *StatementBuilder) buildUpdate(op *Update, st *buildState) (string, error) {
	sets := make([]string, len(op.Columns))
	for i, cv := range op.Columns {
		sets[i] = b.quoter.QuoteColumnName(cv.Name) + "=" + b.bindValue(cv.Value, st)
	}
	stmt := "UPDATE " + b.quoter.QuoteTableName(op.Table) + " SET " + strings.Join(sets, ", ")
	where, err := b.BuildCondition(op.Where)
	if err != nil {
		return "", err
	}
	if where != "" {
		stmt += " WHERE " + where
	}
	return stmt, nil
}

// buildDelete compiles a DELETE statement with its optional WHERE clause.
func (b *StatementBuilder) buildDelete(op *Delete) (string, error) {
	stmt := "DELETE FROM " + b.quoter.QuoteTableName(op.Table)
	where, err := b.BuildCondition(op.Where)
	if err != nil {
		return "", err
	}
	if where != "" {
		stmt += " WHERE " + where
	}
	return stmt, nil
}

// bindValue renders a column value for INSERT/UPDATE: expressions pass
// through with their parameters merged, literals get a synthesized
// placeholder.
func (b *StatementBuilder) bindValue(v any, st *buildState) string {
	if e, ok := v.(*Expr); ok {
		st.merge(e)
		return e.Text
	}
	return st.bind(v)
}
