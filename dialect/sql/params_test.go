package sql

import (
	"testing"

	"github.com/FabrizioCaldarelli/db-mysql/dialect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams(t *testing.T) {
	p := NewParams()
	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Has(":p0"))

	p.Set(":name", "john").Set(":age", 25)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []string{":name", ":age"}, p.Names())

	v, ok := p.Get(":name")
	require.True(t, ok)
	assert.Equal(t, "john", v)

	// Overwriting keeps the original position.
	p.Set(":name", "jane")
	assert.Equal(t, []string{":name", ":age"}, p.Names())
	v, _ = p.Get(":name")
	assert.Equal(t, "jane", v)

	assert.Equal(t, map[string]any{":name": "jane", ":age": 25}, p.Map())

	_, ok = p.Get(":missing")
	assert.False(t, ok)
}

func TestResolveNamed(t *testing.T) {
	params := NewParams().Set(":p0", "active").Set(":p1", 18)

	t.Run("MySQL", func(t *testing.T) {
		stmt, args := ResolveNamed("SELECT * FROM users WHERE status=:p0 AND age>:p1", params, dialect.MySQL)
		assert.Equal(t, "SELECT * FROM users WHERE status=? AND age>?", stmt)
		assert.Equal(t, []any{"active", 18}, args)
	})
	t.Run("SQLite", func(t *testing.T) {
		stmt, args := ResolveNamed("DELETE FROM sessions WHERE expire<:p0", NewParams().Set(":p0", 100), dialect.SQLite)
		assert.Equal(t, "DELETE FROM sessions WHERE expire<?", stmt)
		assert.Equal(t, []any{100}, args)
	})
	t.Run("Postgres", func(t *testing.T) {
		stmt, args := ResolveNamed("SELECT * FROM users WHERE status=:p0 AND age>:p1", params, dialect.Postgres)
		assert.Equal(t, "SELECT * FROM users WHERE status=$1 AND age>$2", stmt)
		assert.Equal(t, []any{"active", 18}, args)
	})
	t.Run("OccurrenceOrder", func(t *testing.T) {
		stmt, args := ResolveNamed("WHERE age>:p1 AND status=:p0", params, dialect.MySQL)
		assert.Equal(t, "WHERE age>? AND status=?", stmt)
		assert.Equal(t, []any{18, "active"}, args)
	})
	t.Run("RepeatedName", func(t *testing.T) {
		stmt, args := ResolveNamed("WHERE a=:p0 OR b=:p0", params, dialect.Postgres)
		assert.Equal(t, "WHERE a=$1 OR b=$2", stmt)
		assert.Equal(t, []any{"active", "active"}, args)
	})
	t.Run("QuotedLiteralUntouched", func(t *testing.T) {
		stmt, args := ResolveNamed("WHERE a=':p0' AND b=:p0", params, dialect.MySQL)
		assert.Equal(t, "WHERE a=':p0' AND b=?", stmt)
		assert.Equal(t, []any{"active"}, args)
	})
	t.Run("CastUntouched", func(t *testing.T) {
		stmt, args := ResolveNamed("SELECT :p0::text", params, dialect.Postgres)
		assert.Equal(t, "SELECT $1::text", stmt)
		assert.Equal(t, []any{"active"}, args)
	})
	t.Run("UnboundNameUntouched", func(t *testing.T) {
		stmt, args := ResolveNamed("WHERE a=:unknown", params, dialect.MySQL)
		assert.Equal(t, "WHERE a=:unknown", stmt)
		assert.Empty(t, args)
	})
	t.Run("BareColon", func(t *testing.T) {
		stmt, args := ResolveNamed("SELECT 'a' : 'b'", params, dialect.MySQL)
		assert.Equal(t, "SELECT 'a' : 'b'", stmt)
		assert.Empty(t, args)
	})
	t.Run("NoPlaceholders", func(t *testing.T) {
		stmt, args := ResolveNamed("SELECT 1", NewParams(), dialect.MySQL)
		assert.Equal(t, "SELECT 1", stmt)
		assert.Empty(t, args)
	})
}

// Build followed by ResolveNamed yields a statement the positional drivers
// accept, with argument order matching placeholder numbering.
func TestBuildResolveRoundTrip(t *testing.T) {
	b := mustBuilder(t, dialect.Postgres)
	params := NewParams()
	stmt, err := b.Build(&Query{Op: &Update{
		Table:   "users",
		Columns: ColumnValues{}.Set("name", "jane").Set("age", 30),
		Where:   []any{"=", "id", 7},
	}}, params)
	require.NoError(t, err)

	resolved, args := ResolveNamed(stmt, params, dialect.Postgres)
	assert.Equal(t, `UPDATE "users" SET "name"=$1, "age"=$2 WHERE "id"=7`, resolved)
	assert.Equal(t, []any{"jane", 30}, args)
}
