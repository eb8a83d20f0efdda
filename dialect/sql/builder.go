package sql

import (
	"fmt"
	"strconv"
	"strings"
)

// StatementBuilder translates a declarative Query into dialect-correct SQL
// text. It holds no per-build state; a single builder is safe for concurrent
// Build calls.
type StatementBuilder struct {
	quoter Quoter
	sep    string
}

// NewStatementBuilder returns a builder that quotes identifiers and literals
// through the given quoter.
func NewStatementBuilder(q Quoter) (*StatementBuilder, error) {
	if q == nil {
		return nil, &InvalidConfigurationError{Component: "statement builder", Reason: "quoter is nil"}
	}
	return &StatementBuilder{quoter: q, sep: " "}, nil
}

// Dialect returns a builder for the named dialect using its bundled quoter.
func Dialect(name string) (*StatementBuilder, error) {
	q, err := QuoterFor(name)
	if err != nil {
		return nil, err
	}
	return NewStatementBuilder(q)
}

// Quoter returns the builder's quoting strategy.
func (b *StatementBuilder) Quoter() Quoter { return b.quoter }

// Build compiles the query into a single SQL statement. For INSERT/UPDATE
// operations, one placeholder per literal value is appended to params
// (":p0", ":p1", ... counter restarting at zero for every call); names the
// caller already bound are never overwritten. No partial SQL is returned on
// error. Building is deterministic: the same query yields the same statement
// and the same bindings on every call.
func (b *StatementBuilder) Build(q *Query, params *Params) (string, error) {
	if q == nil {
		q = &Query{}
	}
	if params == nil {
		params = NewParams()
	}
	st := &buildState{params: params}
	if q.Op != nil {
		return b.buildOperation(q.Op, st)
	}
	return b.buildQuery(q, st)
}

// buildState threads the per-build parameter synthesis through the call
// chain, keeping the builder itself stateless.
type buildState struct {
	params *Params
	next   int
}

// bind appends the value under the next free synthesized placeholder name
// and returns the name. Names already populated by the caller are skipped.
func (st *buildState) bind(value any) string {
	for {
		name := ":p" + strconv.Itoa(st.next)
		st.next++
		if !st.params.Has(name) {
			st.params.Set(name, value)
			return name
		}
	}
}

// merge copies an expression's own parameters into the statement parameters.
func (st *buildState) merge(e *Expr) {
	for _, name := range e.paramNames() {
		st.params.Set(name, e.Params[name])
	}
}

// buildQuery runs the SELECT pipeline. Clauses are compiled in SQL grammar
// order regardless of the query's field order, and empty fragments are
// dropped before joining with a single separator.
func (b *StatementBuilder) buildQuery(q *Query, st *buildState) (string, error) {
	fragments := []string{
		b.buildSelect(q),
		b.buildFrom(q.From),
	}
	join, err := b.buildJoin(q.Join)
	if err != nil {
		return "", err
	}
	fragments = append(fragments, join)
	where, err := b.buildConditionClause("WHERE", q.Where)
	if err != nil {
		return "", err
	}
	fragments = append(fragments, where, b.buildColumns("GROUP BY", q.GroupBy))
	having, err := b.buildConditionClause("HAVING", q.Having)
	if err != nil {
		return "", err
	}
	fragments = append(fragments, having)
	union, err := b.buildUnion(q.Union, st)
	if err != nil {
		return "", err
	}
	fragments = append(fragments, union, b.buildOrderBy(q.OrderBy))
	fragments = append(fragments, b.buildLimit(q.Limit, q.Offset)...)
	return b.joinFragments(fragments), nil
}

// joinFragments joins the non-empty fragments with the builder separator.
func (b *StatementBuilder) joinFragments(fragments []string) string {
	parts := fragments[:0]
	for _, f := range fragments {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, b.sep)
}

// buildSelect compiles the SELECT list with its DISTINCT and option
// modifiers. A nil column list selects `*`.
func (b *StatementBuilder) buildSelect(q *Query) string {
	clause := "SELECT"
	if q.Distinct {
		clause += " DISTINCT"
	}
	if q.SelectOption != "" {
		clause += " " + q.SelectOption
	}
	tokens, raw := normalizeFragmentList(q.Select)
	if len(tokens) == 0 {
		return clause + " *"
	}
	if raw {
		return clause + " " + tokens[0].(string)
	}
	cols := make([]string, len(tokens))
	for i, tok := range tokens {
		cols[i] = columnToken(b.quoter, tok)
	}
	return clause + " " + strings.Join(cols, ", ")
}

// buildFrom compiles the FROM clause, quoting table names and aliases.
func (b *StatementBuilder) buildFrom(from any) string {
	tokens, raw := normalizeFragmentList(from)
	if len(tokens) == 0 {
		return ""
	}
	if raw {
		return "FROM " + tokens[0].(string)
	}
	tables := make([]string, len(tokens))
	for i, tok := range tokens {
		tables[i] = tableToken(b.quoter, tok)
	}
	return "FROM " + strings.Join(tables, ", ")
}

// buildJoin compiles the join descriptors in order.
func (b *StatementBuilder) buildJoin(joins []Join) (string, error) {
	if len(joins) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(joins))
	for i, j := range joins {
		switch {
		case strings.TrimSpace(j.Type) == "":
			return "", &MalformedJoinError{Index: i, Field: "type"}
		case strings.TrimSpace(j.Table) == "":
			return "", &MalformedJoinError{Index: i, Field: "table"}
		}
		part := strings.ToUpper(strings.TrimSpace(j.Type)) + " " + tableToken(b.quoter, j.Table)
		on, err := b.BuildCondition(j.On)
		if err != nil {
			return "", err
		}
		if on != "" {
			part += " ON " + on
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, b.sep), nil
}

// buildConditionClause compiles a condition tree and prefixes it with the
// clause keyword when non-empty.
func (b *StatementBuilder) buildConditionClause(keyword string, cond Cond) (string, error) {
	s, err := b.BuildCondition(cond)
	if err != nil || s == "" {
		return "", err
	}
	return keyword + " " + s, nil
}

// buildColumns compiles a column-list clause such as GROUP BY.
func (b *StatementBuilder) buildColumns(keyword string, input any) string {
	tokens, raw := normalizeFragmentList(input)
	if len(tokens) == 0 {
		return ""
	}
	if raw {
		return keyword + " " + tokens[0].(string)
	}
	cols := make([]string, len(tokens))
	for i, tok := range tokens {
		cols[i] = columnToken(b.quoter, tok)
	}
	return keyword + " " + strings.Join(cols, ", ")
}

// buildOrderBy compiles the ORDER BY clause, uppercasing direction tokens.
func (b *StatementBuilder) buildOrderBy(input any) string {
	tokens, raw := normalizeFragmentList(input)
	if len(tokens) == 0 {
		return ""
	}
	if raw {
		return "ORDER BY " + tokens[0].(string)
	}
	cols := make([]string, len(tokens))
	for i, tok := range tokens {
		cols[i] = orderToken(b.quoter, tok)
	}
	return "ORDER BY " + strings.Join(cols, ", ")
}

// buildUnion compiles the UNION chain. Sub-queries are built recursively
// with the same build state; raw strings are embedded as-is.
func (b *StatementBuilder) buildUnion(unions []any, st *buildState) (string, error) {
	if len(unions) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(unions))
	for _, u := range unions {
		var sub string
		switch u := u.(type) {
		case *Query:
			s, err := b.buildQuery(u, st)
			if err != nil {
				return "", err
			}
			sub = s
		case string:
			sub = u
		case *Expr:
			sub = u.Text
		default:
			return "", fmt.Errorf("dialect/sql: invalid union entry type %T", u)
		}
		parts = append(parts, "UNION (\n"+sub+"\n)")
	}
	return strings.Join(parts, b.sep), nil
}

// buildLimit compiles the LIMIT and OFFSET fragments. A nil or negative
// limit emits nothing; the offset is emitted only when positive.
func (b *StatementBuilder) buildLimit(limit, offset *int) []string {
	var fragments []string
	if limit != nil && *limit >= 0 {
		fragments = append(fragments, "LIMIT "+strconv.Itoa(*limit))
	}
	if offset != nil && *offset > 0 {
		fragments = append(fragments, "OFFSET "+strconv.Itoa(*offset))
	}
	return fragments
}

// buildOperation dispatches a DML/DDL operation to its builder. The switch
// is exhaustive over the Operation implementations.
func (b *StatementBuilder) buildOperation(op Operation, st *buildState) (string, error) {
	switch op := op.(type) {
	case *Insert:
		return b.buildInsert(op, st)
	case *Update:
		return b.buildUpdate(op, st)
	case *Delete:
		return b.buildDelete(op)
	case *CreateTable:
		return b.buildCreateTable(op), nil
	case *RenameTable:
		return "RENAME TABLE " + b.quoter.QuoteTableName(op.Table) + " TO " + b.quoter.QuoteTableName(op.To), nil
	case *DropTable:
		return "DROP TABLE " + b.quoter.QuoteTableName(op.Table), nil
	case *TruncateTable:
		return "TRUNCATE TABLE " + b.quoter.QuoteTableName(op.Table), nil
	case *AddColumn:
		return fmt.Sprintf("ALTER TABLE %s ADD %s %s",
			b.quoter.QuoteTableName(op.Table),
			b.quoter.QuoteColumnName(op.Column),
			ResolveType(b.quoter, op.Type),
		), nil
	case *DropColumn:
		return fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s",
			b.quoter.QuoteTableName(op.Table),
			b.quoter.QuoteColumnName(op.Column),
		), nil
	case *RenameColumn:
		return fmt.Sprintf("ALTER TABLE %s RENAME COLUMN %s TO %s",
			b.quoter.QuoteTableName(op.Table),
			b.quoter.QuoteColumnName(op.Column),
			b.quoter.QuoteColumnName(op.To),
		), nil
	case *AlterColumn:
		return fmt.Sprintf("ALTER TABLE %s CHANGE %s %s %s",
			b.quoter.QuoteTableName(op.Table),
			b.quoter.QuoteColumnName(op.Column),
			b.quoter.QuoteColumnName(op.Column),
			ResolveType(b.quoter, op.Type),
		), nil
	case *AddForeignKey:
		return b.buildAddForeignKey(op), nil
	case *DropForeignKey:
		return fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT %s",
			b.quoter.QuoteTableName(op.Table),
			b.quoter.QuoteColumnName(op.Name),
		), nil
	case *CreateIndex:
		return b.buildCreateIndex(op), nil
	case *DropIndex:
		return fmt.Sprintf("DROP INDEX %s ON %s",
			b.quoter.QuoteColumnName(op.Name),
			b.quoter.QuoteTableName(op.Table),
		), nil
	default:
		return "", fmt.Errorf("dialect/sql: unsupported operation type %T", op)
	}
}
