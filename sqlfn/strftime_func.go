package sqlfn

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/moneytech/duckdb-strftime/calendar"
	"github.com/moneytech/duckdb-strftime/strftime"
)

// StrftimeFunction is the bound strftime(date|timestamp, format)
// expression. It compiles its Program once, at construction (plan
// time), and reuses it read-only across every row evaluation.
type StrftimeFunction struct {
	value  Expression
	format Expression

	program  *strftime.Program // no specifiers if the constant format was SQL NULL
	nullProg bool
}

// NewStrftime binds strftime(value, format). format must be a *Literal;
// a non-constant format is a bind-time error. A NULL literal format
// compiles successfully into a Program with no specifiers, and Eval
// always returns NULL for it.
func NewStrftime(value, format Expression) (*StrftimeFunction, error) {
	lit, ok := format.(*Literal)
	if !ok {
		return nil, ErrFormatMustBeConstant.New("strftime")
	}
	f := &StrftimeFunction{value: value, format: format}

	if lit.value == nil {
		f.nullProg = true
		f.program, _ = strftime.Compile("", strftime.Format)
		return f, nil
	}

	fmtStr, _ := lit.value.(string)
	program, err := strftime.Compile(fmtStr, strftime.Format)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "strftime",
			"format":   fmtStr,
		}).WithError(err).Error("failed to compile format specifier")
		return nil, ErrCompileFailed.New(fmtStr, err.Error())
	}
	f.program = program
	return f, nil
}

func (f *StrftimeFunction) Type() Type     { return Text }
func (f *StrftimeFunction) IsNullable() bool { return f.nullProg || f.value.IsNullable() }
func (f *StrftimeFunction) String() string {
	return fmt.Sprintf("strftime(%s, %s)", f.value, f.format)
}

// Eval formats one row's value under the bound Program.
func (f *StrftimeFunction) Eval(ctx *Context, row Row) (interface{}, error) {
	if f.nullProg {
		return nil, nil
	}

	v, err := f.value.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}

	ts, err := toTimestamp(v)
	if err != nil {
		return nil, err
	}

	return strftime.Format(f.program, ts), nil
}

func toTimestamp(v interface{}) (calendar.Timestamp, error) {
	switch val := v.(type) {
	case calendar.Timestamp:
		return val, nil
	case calendar.Date:
		return calendar.TimestampFrom(val, calendar.Time{}), nil
	default:
		return calendar.Timestamp{}, fmt.Errorf("strftime: unsupported value type %T", v)
	}
}
