package sql

import (
	"strconv"
	"strings"

	"github.com/FabrizioCaldarelli/db-mysql/dialect"
)

// Params is an ordered set of named statement parameters. Names carry the
// leading colon, e.g. ":p0". The caller owns the set; Build only appends new
// entries and never overwrites a name the caller populated.
type Params struct {
	names  []string
	values map[string]any
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{values: make(map[string]any)}
}

// Set binds a value under the given name, overwriting a previous binding of
// the same name. Insertion order of new names is preserved.
func (p *Params) Set(name string, value any) *Params {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = value
	return p
}

// Get returns the value bound under the given name.
func (p *Params) Get(name string) (any, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Has reports whether a value is bound under the given name.
func (p *Params) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Len returns the number of bound parameters.
func (p *Params) Len() int { return len(p.names) }

// Names returns the parameter names in insertion order.
func (p *Params) Names() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

// Map returns a copy of the bindings.
func (p *Params) Map() map[string]any {
	m := make(map[string]any, len(p.values))
	for k, v := range p.values {
		m[k] = v
	}
	return m
}

// ResolveNamed rewrites the named placeholders of a built statement into the
// positional style of the target dialect ("?" for MySQL and SQLite, "$N" for
// Postgres) and returns the argument values in occurrence order. Placeholders
// inside single-quoted string literals and names without a binding are left
// untouched; a Postgres "::type" cast is not treated as a placeholder.
func ResolveNamed(query string, p *Params, dialectName string) (string, []any) {
	var (
		b      strings.Builder
		args   []any
		quoted bool
	)
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			quoted = !quoted
			b.WriteByte(c)
		case c == ':' && !quoted:
			if i+1 < len(query) && query[i+1] == ':' {
				b.WriteString("::")
				i++
				continue
			}
			j := i + 1
			for j < len(query) && isNameByte(query[j]) {
				j++
			}
			name := query[i:j]
			v, ok := p.Get(name)
			if j == i+1 || !ok {
				b.WriteString(name)
				i = j - 1
				continue
			}
			args = append(args, v)
			if dialectName == dialect.Postgres {
				b.WriteByte('$')
				b.WriteString(strconv.Itoa(len(args)))
			} else {
				b.WriteByte('?')
			}
			i = j - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), args
}

// isNameByte reports whether c may appear in a placeholder name.
func isNameByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
