package sqlfn

// Literal is a constant-valued Expression, the same role
// expression.NewLiteral plays in a bound plan: the format-string argument
// to strftime/strptime must resolve to one of these at bind time.
type Literal struct {
	value interface{}
	typ   Type
}

// NewLiteral returns a constant Expression wrapping value.
func NewLiteral(value interface{}, typ Type) *Literal {
	return &Literal{value: value, typ: typ}
}

func (l *Literal) Eval(ctx *Context, row Row) (interface{}, error) { return l.value, nil }
func (l *Literal) Type() Type                                      { return l.typ }
func (l *Literal) IsNullable() bool                                { return l.value == nil }
func (l *Literal) String() string {
	if l.value == nil {
		return "NULL"
	}
	if s, ok := l.value.(string); ok {
		return "'" + s + "'"
	}
	return "<literal>"
}

// GetField reads column i out of the row, the same role
// expression.NewGetField plays when an argument is not a compile-time
// constant.
type GetField struct {
	index    int
	typ      Type
	name     string
	nullable bool
}

// NewGetField returns an Expression that reads row[index].
func NewGetField(index int, typ Type, name string, nullable bool) *GetField {
	return &GetField{index: index, typ: typ, name: name, nullable: nullable}
}

func (g *GetField) Eval(ctx *Context, row Row) (interface{}, error) { return row[g.index], nil }
func (g *GetField) Type() Type                                      { return g.typ }
func (g *GetField) IsNullable() bool                                 { return g.nullable }
func (g *GetField) String() string                                   { return g.name }
