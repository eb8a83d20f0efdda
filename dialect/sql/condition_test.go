package sql

import (
	"testing"
	"time"

	"github.com/FabrizioCaldarelli/db-mysql/dialect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConditionPassthrough(t *testing.T) {
	b := mustBuilder(t, dialect.MySQL)
	tests := []struct {
		name string
		cond Cond
		want string
	}{
		{"Nil", nil, ""},
		{"EmptyString", "", ""},
		{"RawString", "age > 18 AND status = 'active'", "age > 18 AND status = 'active'"},
		{"Expr", Raw("id IN (SELECT user_id FROM admins)"), "id IN (SELECT user_id FROM admins)"},
		{"EmptyList", []any{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.BuildCondition(tt.cond)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildConditionComparison(t *testing.T) {
	b := mustBuilder(t, dialect.MySQL)
	tests := []struct {
		name string
		cond Cond
		want string
	}{
		{"EQ", []any{"=", "status", "active"}, "`status`='active'"},
		{"NEQ", []any{"!=", "status", "deleted"}, "`status`!='deleted'"},
		{"NEQAlt", []any{"<>", "status", "deleted"}, "`status`<>'deleted'"},
		{"GT", []any{">", "age", 18}, "`age`>18"},
		{"GTE", []any{">=", "age", 18}, "`age`>=18"},
		{"LT", []any{"<", "age", 65}, "`age`<65"},
		{"LTE", []any{"<=", "age", 65}, "`age`<=65"},
		{"NullSafe", []any{"<=>", "spouse_id", nil}, "`spouse_id`<=>NULL"},
		{"Qualified", []any{"=", "u.id", 7}, "`u`.`id`=7"},
		{"FuncColumn", []any{">", "COUNT(*)", 3}, "COUNT(*)>3"},
		{"Bool", []any{"=", "active", true}, "`active`=1"},
		{"BoolFalse", []any{"=", "active", false}, "`active`=0"},
		{"Float", []any{"<", "price", 9.5}, "`price`<9.5"},
		{"ExprValue", []any{"=", "updated_at", Raw("NOW()")}, "`updated_at`=NOW()"},
		{"EscapedQuote", []any{"=", "name", "O'Brien"}, "`name`='O''Brien'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.BuildCondition(tt.cond)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	t.Run("Time", func(t *testing.T) {
		ts := time.Date(2009, 11, 10, 23, 0, 0, 0, time.UTC)
		got, err := b.BuildCondition([]any{">=", "created_at", ts})
		require.NoError(t, err)
		assert.Equal(t, "`created_at`>='2009-11-10 23:00:00'", got)
	})
	t.Run("MissingValue", func(t *testing.T) {
		_, err := b.BuildCondition([]any{"=", "status"})
		require.Error(t, err)
		assert.True(t, IsMissingOperand(err))
		var me *MissingOperandError
		require.ErrorAs(t, err, &me)
		assert.Equal(t, "=", me.Operator)
		assert.Equal(t, 2, me.Want)
		assert.Equal(t, 1, me.Got)
	})
}

func TestBuildConditionBoolean(t *testing.T) {
	b := mustBuilder(t, dialect.MySQL)
	t.Run("And", func(t *testing.T) {
		got, err := b.BuildCondition([]any{"AND",
			[]any{"=", "status", "active"},
			[]any{">", "age", 18},
		})
		require.NoError(t, err)
		assert.Equal(t, "(`status`='active') AND (`age`>18)", got)
	})
	t.Run("NestedOr", func(t *testing.T) {
		got, err := b.BuildCondition([]any{"and",
			[]any{"=", "a", 1},
			[]any{"or", []any{"=", "b", 2}, []any{"=", "c", 3}},
		})
		require.NoError(t, err)
		assert.Equal(t, "(`a`=1) AND ((`b`=2) OR (`c`=3))", got)
	})
	t.Run("SingleOperand", func(t *testing.T) {
		got, err := b.BuildCondition([]any{"OR", []any{"=", "a", 1}})
		require.NoError(t, err)
		assert.Equal(t, "(`a`=1)", got)
	})
	t.Run("EmptyChildrenDropped", func(t *testing.T) {
		got, err := b.BuildCondition([]any{"AND",
			[]any{"NOT IN", "status", []string{}},
			[]any{"=", "a", 1},
			nil,
		})
		require.NoError(t, err)
		assert.Equal(t, "(`a`=1)", got)
	})
	t.Run("AllEmpty", func(t *testing.T) {
		got, err := b.BuildCondition([]any{"AND", nil, "", []any{"NOT IN", "x", nil}})
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
	t.Run("ErrorPropagates", func(t *testing.T) {
		_, err := b.BuildCondition([]any{"AND", []any{"=", "a", 1}, []any{"BETWEEN", "b", 1}})
		assert.True(t, IsMissingOperand(err))
	})
}

func TestBuildConditionBetween(t *testing.T) {
	b := mustBuilder(t, dialect.MySQL)
	t.Run("Between", func(t *testing.T) {
		got, err := b.BuildCondition([]any{"BETWEEN", "age", 18, 30})
		require.NoError(t, err)
		assert.Equal(t, "`age` BETWEEN 18 AND 30", got)
	})
	t.Run("NotBetween", func(t *testing.T) {
		got, err := b.BuildCondition([]any{"not between", "age", 18, 30})
		require.NoError(t, err)
		assert.Equal(t, "`age` NOT BETWEEN 18 AND 30", got)
	})
	t.Run("Strings", func(t *testing.T) {
		got, err := b.BuildCondition([]any{"BETWEEN", "name", "a", "m"})
		require.NoError(t, err)
		assert.Equal(t, "`name` BETWEEN 'a' AND 'm'", got)
	})
	t.Run("MissingBound", func(t *testing.T) {
		_, err := b.BuildCondition([]any{"BETWEEN", "age", 18})
		require.Error(t, err)
		var me *MissingOperandError
		require.ErrorAs(t, err, &me)
		assert.Equal(t, "BETWEEN", me.Operator)
		assert.Equal(t, 3, me.Want)
		assert.Equal(t, 2, me.Got)
	})
}

func TestBuildConditionIn(t *testing.T) {
	b := mustBuilder(t, dialect.MySQL)
	tests := []struct {
		name string
		cond Cond
		want string
	}{
		{"Strings", []any{"IN", "status", []string{"active", "pending"}}, "`status` IN ('active', 'pending')"},
		{"Ints", []any{"IN", "id", []int{1, 2, 3}}, "`id` IN (1, 2, 3)"},
		{"Scalar", []any{"IN", "id", 7}, "`id` IN (7)"},
		{"NotIn", []any{"NOT IN", "status", []string{"deleted"}}, "`status` NOT IN ('deleted')"},
		{"EmptyIn", []any{"IN", "status", []string{}}, "0=1"},
		{"NilIn", []any{"IN", "status", nil}, "0=1"},
		{"EmptyNotIn", []any{"NOT IN", "status", []any{}}, ""},
		{"NilNotIn", []any{"NOT IN", "status", nil}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.BuildCondition(tt.cond)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	t.Run("EmptyInInsideWhere", func(t *testing.T) {
		stmt, err := b.Build(&Query{From: "users", Where: []any{"IN", "id", []int{}}}, NewParams())
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM `users` WHERE 0=1", stmt)
	})
	t.Run("EmptyNotInInsideWhere", func(t *testing.T) {
		stmt, err := b.Build(&Query{From: "users", Where: []any{"NOT IN", "id", []int{}}}, NewParams())
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM `users`", stmt)
	})
	t.Run("MissingList", func(t *testing.T) {
		_, err := b.BuildCondition([]any{"IN", "status"})
		assert.True(t, IsMissingOperand(err))
	})
}

func TestBuildConditionLike(t *testing.T) {
	b := mustBuilder(t, dialect.MySQL)
	tests := []struct {
		name string
		cond Cond
		want string
	}{
		{"Single", []any{"LIKE", "name", "%john%"}, "`name` LIKE '%john%'"},
		{"Multiple", []any{"LIKE", "name", []string{"%jo%", "%hn%"}}, "`name` LIKE '%jo%' AND `name` LIKE '%hn%'"},
		{"NotLike", []any{"NOT LIKE", "name", []string{"%bot%", "%spam%"}}, "`name` NOT LIKE '%bot%' AND `name` NOT LIKE '%spam%'"},
		{"OrLike", []any{"OR LIKE", "name", []string{"%jo%", "%hn%"}}, "`name` LIKE '%jo%' OR `name` LIKE '%hn%'"},
		{"OrNotLike", []any{"OR NOT LIKE", "name", []string{"%a%", "%b%"}}, "`name` NOT LIKE '%a%' OR `name` NOT LIKE '%b%'"},
		{"EmptyLike", []any{"LIKE", "name", []string{}}, "0=1"},
		{"EmptyOrLike", []any{"OR LIKE", "name", nil}, "0=1"},
		{"EmptyNotLike", []any{"NOT LIKE", "name", []string{}}, ""},
		{"EmptyOrNotLike", []any{"OR NOT LIKE", "name", nil}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.BuildCondition(tt.cond)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	t.Run("MissingPattern", func(t *testing.T) {
		_, err := b.BuildCondition([]any{"LIKE", "name"})
		assert.True(t, IsMissingOperand(err))
	})
}

func TestBuildConditionUnknownOperator(t *testing.T) {
	b := mustBuilder(t, dialect.MySQL)
	t.Run("UnknownToken", func(t *testing.T) {
		_, err := b.BuildCondition([]any{"FOOBAR", "a", 1})
		require.Error(t, err)
		assert.True(t, IsUnknownOperator(err))
		var ue *UnknownOperatorError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "FOOBAR", ue.Operator)
	})
	t.Run("LowercaseNormalized", func(t *testing.T) {
		_, err := b.BuildCondition([]any{"foobar", "a", 1})
		var ue *UnknownOperatorError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "FOOBAR", ue.Operator)
	})
	t.Run("NonStringHead", func(t *testing.T) {
		_, err := b.BuildCondition([]any{42, "a", 1})
		assert.True(t, IsUnknownOperator(err))
	})
	t.Run("UnsupportedTreeType", func(t *testing.T) {
		_, err := b.BuildCondition(42)
		assert.True(t, IsUnknownOperator(err))
	})
}
