package ast

/* Binary */

// Binary is a binary operation. Assignment is a Binary with Op "=" whose Left
// is always an *Ident.
type Binary struct {
	Left  Expr
	Op    string
	Right Expr
	span  Span
}

func NewBinary(left Expr, op string, right Expr, span Span) *Binary {
	return &Binary{Left: left, Op: op, Right: right, span: span}
}

func (b *Binary) node()   {}
func (b *Binary) isExpr() {}

func (b *Binary) Span() Span {
	return b.span
}

func (b *Binary) IsAssignment() bool {
	return b.Op == "="
}

/* Unary */

type Unary struct {
	Op      string
	Operand Expr
	span    Span
}

func NewUnary(op string, operand Expr, span Span) *Unary {
	return &Unary{Op: op, Operand: operand, span: span}
}

func (u *Unary) node()   {}
func (u *Unary) isExpr() {}

func (u *Unary) Span() Span {
	return u.span
}

/* Literal */

// Literal keeps the raw lexeme; string literals keep their quotes.
type Literal struct {
	Raw  string
	span Span
}

func NewLiteral(raw string, span Span) *Literal {
	return &Literal{Raw: raw, span: span}
}

func (l *Literal) node()   {}
func (l *Literal) isExpr() {}

func (l *Literal) Span() Span {
	return l.span
}

func (l *Literal) IsString() bool {
	return len(l.Raw) > 0 && l.Raw[0] == '"'
}

/* Ident */

type Ident struct {
	Name string
	span Span
}

func NewIdent(name string, span Span) *Ident {
	return &Ident{Name: name, span: span}
}

func (i *Ident) node()   {}
func (i *Ident) isExpr() {}

func (i *Ident) Span() Span {
	return i.span
}

/* Call */

type Call struct {
	Callee *Ident
	Args   []Expr
	span   Span
}

func NewCall(callee *Ident, args []Expr, span Span) *Call {
	return &Call{Callee: callee, Args: args, span: span}
}

func (c *Call) node()   {}
func (c *Call) isExpr() {}

func (c *Call) Span() Span {
	return c.span
}
