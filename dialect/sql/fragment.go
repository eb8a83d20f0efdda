package sql

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	// splitRe splits comma-separated clause strings.
	splitRe = regexp.MustCompile(`\s*,\s*`)
	// aliasRe matches "<expr> [AS] <alias>" with a trailing alias token.
	aliasRe = regexp.MustCompile(`(?is)^(.*?)(?:\s+as\s+|\s+)([\w.$\-]+)$`)
	// orderRe matches a trailing ASC/DESC direction token.
	orderRe = regexp.MustCompile(`(?is)^(.*?)\s+(asc|desc)$`)
)

// normalizeFragmentList turns a "string or list" clause field into a token
// list. A non-empty string containing a parenthesis is an already-composed
// raw fragment: it is returned as the single token with raw set, and the
// caller must pass it through unchanged. Any other string is split on commas.
// Lists are used as-is.
func normalizeFragmentList(input any) (tokens []any, raw bool) {
	switch v := input.(type) {
	case nil:
		return nil, false
	case string:
		if v == "" {
			return nil, false
		}
		if strings.Contains(v, "(") {
			return []any{v}, true
		}
		for _, part := range splitRe.Split(v, -1) {
			tokens = append(tokens, part)
		}
		return tokens, false
	case []string:
		for _, s := range v {
			tokens = append(tokens, s)
		}
		return tokens, false
	case []any:
		return v, false
	default:
		return []any{input}, false
	}
}

// columnToken compiles one select/group-by token: precomputed expressions
// pass through, aliased tokens quote the expression and the alias separately,
// anything else is quoted as a column reference.
func columnToken(q Quoter, tok any) string {
	s, ok := stringToken(tok)
	if !ok || strings.Contains(s, "(") {
		return s
	}
	if m := aliasRe.FindStringSubmatch(s); m != nil {
		return q.QuoteColumnName(m[1]) + " AS " + q.QuoteSimpleColumnName(m[2])
	}
	return q.QuoteColumnName(s)
}

// orderToken compiles one order-by token, recognizing a trailing ASC/DESC.
func orderToken(q Quoter, tok any) string {
	s, ok := stringToken(tok)
	if !ok || strings.Contains(s, "(") {
		return s
	}
	if m := orderRe.FindStringSubmatch(s); m != nil {
		return q.QuoteColumnName(m[1]) + " " + strings.ToUpper(m[2])
	}
	return q.QuoteColumnName(s)
}

// tableToken compiles one from/join token, applying the alias pattern with
// table quoting.
func tableToken(q Quoter, tok any) string {
	s, ok := stringToken(tok)
	if !ok || strings.Contains(s, "(") {
		return s
	}
	if m := aliasRe.FindStringSubmatch(s); m != nil {
		return q.QuoteTableName(m[1]) + " " + q.QuoteSimpleTableName(m[2])
	}
	return q.QuoteTableName(s)
}

// stringToken extracts the text of a token. Tokens implementing fmt.Stringer
// are precomputed expressions and the second result is false, telling the
// caller to embed the text verbatim.
func stringToken(tok any) (string, bool) {
	switch v := tok.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), false
	default:
		return fmt.Sprint(v), true
	}
}

// quoteScalar renders a condition value as an inline SQL literal: textual
// values are escaped and quoted, numeric values are stringified directly.
func quoteScalar(q Quoter, v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case string:
		return q.QuoteValue(v)
	case []byte:
		return q.QuoteValue(string(v))
	case bool:
		if v {
			return "1"
		}
		return "0"
	case time.Time:
		return q.QuoteValue(v.Format("2006-01-02 15:04:05"))
	case *Expr:
		return v.Text
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
