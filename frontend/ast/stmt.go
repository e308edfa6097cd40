package ast

/* Block */

type Block struct {
	Stmts []Stmt
	span  Span
}

func NewBlock(stmts []Stmt, span Span) *Block {
	return &Block{Stmts: stmts, span: span}
}

func (b *Block) node() {}

func (b *Block) Span() Span {
	return b.span
}

/* ExprStmt */

// ExprStmt is an expression evaluated for its effect, terminated by `;`.
type ExprStmt struct {
	Expr Expr
	span Span
}

func NewExprStmt(expr Expr, span Span) *ExprStmt {
	return &ExprStmt{Expr: expr, span: span}
}

func (es *ExprStmt) node()   {}
func (es *ExprStmt) isItem() {}
func (es *ExprStmt) isStmt() {}

func (es *ExprStmt) Span() Span {
	return es.span
}

/* Return */

type Return struct {
	Value Expr // nil for a bare `return;`
	span  Span
}

func NewReturn(value Expr, span Span) *Return {
	return &Return{Value: value, span: span}
}

func (r *Return) node()   {}
func (r *Return) isStmt() {}

func (r *Return) Span() Span {
	return r.span
}
