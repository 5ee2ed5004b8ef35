// Package sqlfn binds the strftime/strptime engine into a SQL scalar
// function surface. It is the "binding glue adapter" component of the
// engine: two thin constructors that compile a Program once from a
// constant format argument at plan time, then evaluate it once per row.
//
// The surrounding SQL execution environment (the row iterator, the
// column/vector types, the string sink that owns output buffers) is
// treated as an external collaborator per the engine's design and is not
// reproduced here; Context, Row, Type and Expression below are the
// narrow contract this package needs from it, modeled on the calling
// convention of a scalar sql.Expression tree.
package sqlfn

import "context"

// Type is the SQL type of an Expression's result.
type Type int

const (
	Null Type = iota
	Text
	DateType
	TimestampType
)

func (t Type) String() string {
	switch t {
	case Text:
		return "TEXT"
	case DateType:
		return "DATE"
	case TimestampType:
		return "TIMESTAMP"
	default:
		return "NULL"
	}
}

// Row is one row's worth of evaluated column values, indexed the way
// expression.GetField indexes into it.
type Row []interface{}

// Context carries the per-query state an Expression needs to evaluate:
// cancellation and a place to attach diagnostics. It mirrors the
// sql.Context a bound expression tree is evaluated under.
type Context struct {
	context.Context
}

// NewContext wraps a context.Context for expression evaluation.
func NewContext(ctx context.Context) *Context { return &Context{Context: ctx} }

// NewEmptyContext returns a Context suitable for tests and for
// evaluating expressions with no row-scoped cancellation.
func NewEmptyContext() *Context { return &Context{Context: context.Background()} }

// Expression is the narrow sql.Expression contract the binding adapters
// are built against: evaluate against a row, report nullability and the
// result type.
type Expression interface {
	Eval(ctx *Context, row Row) (interface{}, error)
	Type() Type
	IsNullable() bool
	String() string
}
