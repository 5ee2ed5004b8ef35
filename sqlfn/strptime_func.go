package sqlfn

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/moneytech/duckdb-strftime/calendar"
	"github.com/moneytech/duckdb-strftime/strftime"
)

// StrptimeFunction is the bound strptime(string, format) expression.
type StrptimeFunction struct {
	value  Expression
	format Expression

	program  *strftime.Program
	nullProg bool
	fmtStr   string
}

// NewStrptime binds strptime(value, format). Identical constant-format
// and compile-error handling to NewStrftime, except the Program is
// compiled with strftime.Parse so the compiler rejects %j, %-j, %w, %U
// and %W.
func NewStrptime(value, format Expression) (*StrptimeFunction, error) {
	lit, ok := format.(*Literal)
	if !ok {
		return nil, ErrFormatMustBeConstant.New("strptime")
	}
	f := &StrptimeFunction{value: value, format: format}

	if lit.value == nil {
		f.nullProg = true
		f.program, _ = strftime.Compile("", strftime.Parse)
		return f, nil
	}

	fmtStr, _ := lit.value.(string)
	f.fmtStr = fmtStr
	program, err := strftime.Compile(fmtStr, strftime.Parse)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "strptime",
			"format":   fmtStr,
		}).WithError(err).Error("failed to compile format specifier")
		return nil, ErrCompileFailed.New(fmtStr, err.Error())
	}
	f.program = program
	return f, nil
}

func (f *StrptimeFunction) Type() Type       { return TimestampType }
func (f *StrptimeFunction) IsNullable() bool { return true }
func (f *StrptimeFunction) String() string {
	return fmt.Sprintf("strptime(%s, %s)", f.value, f.format)
}

// Eval parses one row's string under the bound Program, returning a
// calendar.Timestamp or the caret-style wrapped parse error.
func (f *StrptimeFunction) Eval(ctx *Context, row Row) (interface{}, error) {
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
	input, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("strptime: unsupported value type %T", v)
	}

	tup, _, perr := strftime.Parse(f.program, input)
	if perr != nil {
		pe, _ := perr.(*strftime.ParseError)
		pos := 0
		if pe != nil {
			pos = pe.Position
		}
		return nil, parseFailure(input, f.fmtStr, pos, perr)
	}

	date := calendar.DateFromYMD(tup.Year, tup.Month, tup.Day)
	time := calendar.TimeFromHMSU(tup.Hour, tup.Minute, tup.Second, tup.Micro)
	return calendar.TimestampFrom(date, time), nil
}
