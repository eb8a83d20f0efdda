package sql

import (
	"fmt"
	"reflect"
	"strings"
)

// comparisonOps is the closed set of binary comparison operator tokens.
var comparisonOps = map[string]bool{
	"=": true, "!=": true, "<>": true,
	">": true, ">=": true, "<": true, "<=": true, "<=>": true,
}

// BuildCondition compiles a condition tree into a WHERE/HAVING/ON fragment.
// An empty tree compiles to the empty string, meaning no condition. Raw
// strings pass through verbatim.
func (b *StatementBuilder) BuildCondition(cond Cond) (string, error) {
	switch c := cond.(type) {
	case nil:
		return "", nil
	case string:
		return c, nil
	case *Expr:
		return c.Text, nil
	case []any:
		if len(c) == 0 {
			return "", nil
		}
		op, ok := c[0].(string)
		if !ok {
			return "", &UnknownOperatorError{Operator: fmt.Sprint(c[0])}
		}
		return b.buildOperator(strings.ToUpper(strings.TrimSpace(op)), c[1:])
	default:
		return "", &UnknownOperatorError{Operator: fmt.Sprintf("%T", cond)}
	}
}

// buildOperator compiles one operator application. The operator token is
// already upper-cased.
func (b *StatementBuilder) buildOperator(op string, operands []any) (string, error) {
	switch {
	case op == "AND" || op == "OR":
		return b.buildBoolean(op, operands)
	case op == "BETWEEN" || op == "NOT BETWEEN":
		return b.buildBetween(op, operands)
	case op == "IN" || op == "NOT IN":
		return b.buildIn(op, operands)
	case op == "LIKE" || op == "NOT LIKE" || op == "OR LIKE" || op == "OR NOT LIKE":
		return b.buildLike(op, operands)
	case comparisonOps[op]:
		return b.buildComparison(op, operands)
	default:
		return "", &UnknownOperatorError{Operator: op}
	}
}

// buildBoolean compiles AND/OR trees. Each non-empty operand is compiled
// recursively and individually parenthesized, which is what keeps operator
// precedence correct for nested groups.
func (b *StatementBuilder) buildBoolean(op string, operands []any) (string, error) {
	parts := make([]string, 0, len(operands))
	for _, operand := range operands {
		s, err := b.BuildCondition(operand)
		if err != nil {
			return "", err
		}
		if s != "" {
			parts = append(parts, "("+s+")")
		}
	}
	if len(parts) == 0 {
		return "", nil
	}
	return strings.Join(parts, " "+op+" "), nil
}

// buildComparison compiles a binary comparison: column, operator, value.
func (b *StatementBuilder) buildComparison(op string, operands []any) (string, error) {
	if len(operands) < 2 {
		return "", &MissingOperandError{Operator: op, Want: 2, Got: len(operands)}
	}
	return b.condColumn(operands[0]) + op + quoteScalar(b.quoter, operands[1]), nil
}

// buildBetween compiles a BETWEEN/NOT BETWEEN range check: column plus two
// bound values.
func (b *StatementBuilder) buildBetween(op string, operands []any) (string, error) {
	if len(operands) < 3 {
		return "", &MissingOperandError{Operator: op, Want: 3, Got: len(operands)}
	}
	return fmt.Sprintf("%s %s %s AND %s",
		b.condColumn(operands[0]), op,
		quoteScalar(b.quoter, operands[1]),
		quoteScalar(b.quoter, operands[2]),
	), nil
}

// buildIn compiles an IN/NOT IN membership check. An empty value list
// short-circuits: IN can never match (0=1), NOT IN restricts nothing ("").
func (b *StatementBuilder) buildIn(op string, operands []any) (string, error) {
	if len(operands) < 2 {
		return "", &MissingOperandError{Operator: op, Want: 2, Got: len(operands)}
	}
	values := valueList(operands[1])
	if len(values) == 0 {
		if op == "IN" {
			return "0=1", nil
		}
		return "", nil
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quoteScalar(b.quoter, v)
	}
	return fmt.Sprintf("%s %s (%s)", b.condColumn(operands[0]), op, strings.Join(quoted, ", ")), nil
}

// buildLike compiles the four LIKE variants. The OR-prefixed variants join
// multiple patterns with OR instead of AND; negative variants with an empty
// pattern list restrict nothing, positive ones can never match.
func (b *StatementBuilder) buildLike(op string, operands []any) (string, error) {
	if len(operands) < 2 {
		return "", &MissingOperandError{Operator: op, Want: 2, Got: len(operands)}
	}
	joiner := " AND "
	if strings.HasPrefix(op, "OR ") {
		joiner = " OR "
		op = strings.TrimPrefix(op, "OR ")
	}
	values := valueList(operands[1])
	if len(values) == 0 {
		if op == "LIKE" {
			return "0=1", nil
		}
		return "", nil
	}
	column := b.condColumn(operands[0])
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%s %s %s", column, op, quoteScalar(b.quoter, v))
	}
	return strings.Join(parts, joiner), nil
}

// condColumn quotes a condition's column operand, unless it is a raw
// expression (contains a parenthesis) or a precomputed fragment.
func (b *StatementBuilder) condColumn(v any) string {
	s, lit := stringToken(v)
	if !lit || strings.Contains(s, "(") {
		return s
	}
	return b.quoter.QuoteColumnName(s)
}

// valueList normalizes an operand to a list of values. Scalars become
// single-element lists; []byte stays a scalar.
func valueList(v any) []any {
	switch vv := v.(type) {
	case nil:
		return nil
	case []any:
		return vv
	case []byte:
		return []any{vv}
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{v}
}
