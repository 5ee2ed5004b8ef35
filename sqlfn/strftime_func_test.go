package sqlfn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneytech/duckdb-strftime/calendar"
)

func mustStrftime(t *testing.T, value Expression, format string) *StrftimeFunction {
	t.Helper()
	f, err := NewStrftime(value, NewLiteral(format, Text))
	require.NoError(t, err)
	return f
}

func TestStrftimeEval(t *testing.T) {
	ts := calendar.TimestampFrom(calendar.DateFromYMD(1992, 1, 1), calendar.Time{})
	f := mustStrftime(t, NewLiteral(ts, TimestampType), "%a, %-d %B %Y")

	res, err := f.Eval(NewEmptyContext(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Wed, 1 January 1992", res)
}

func TestStrftimeEvalDateValue(t *testing.T) {
	d := calendar.DateFromYMD(2000, 12, 31)
	f := mustStrftime(t, NewLiteral(d, DateType), "%Y-%m-%d")

	res, err := f.Eval(NewEmptyContext(), nil)
	require.NoError(t, err)
	assert.Equal(t, "2000-12-31", res)
}

func TestStrftimeEvalNullValue(t *testing.T) {
	f := mustStrftime(t, NewLiteral(nil, TimestampType), "%Y")
	res, err := f.Eval(NewEmptyContext(), nil)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestStrftimeNullFormat(t *testing.T) {
	f, err := NewStrftime(NewLiteral(nil, TimestampType), NewLiteral(nil, Text))
	require.NoError(t, err)
	assert.True(t, f.IsNullable())

	res, err := f.Eval(NewEmptyContext(), nil)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestStrftimeRejectsNonConstantFormat(t *testing.T) {
	_, err := NewStrftime(NewLiteral(nil, TimestampType), NewGetField(0, Text, "fmt_col", true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a constant")
}

func TestStrftimeRejectsBadFormat(t *testing.T) {
	_, err := NewStrftime(NewLiteral(nil, TimestampType), NewLiteral("%q", Text))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to parse format specifier")
}

func TestStrftimeEvalFromRow(t *testing.T) {
	ts := calendar.TimestampFrom(calendar.DateFromYMD(1992, 3, 2), calendar.TimeFromHMSU(7, 8, 9, 0))
	f := mustStrftime(t, NewGetField(0, TimestampType, "col", false), "%Y-%m-%d %H:%M:%S")

	res, err := f.Eval(NewEmptyContext(), Row{ts})
	require.NoError(t, err)
	assert.Equal(t, "1992-03-02 07:08:09", res)
}

func TestStrftimeString(t *testing.T) {
	f := mustStrftime(t, NewGetField(0, TimestampType, "col", false), "%Y")
	assert.Equal(t, "strftime(col, '%Y')", f.String())
}
