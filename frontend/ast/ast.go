package ast

import "github.com/gluax-lang/dpp/common"

type Span = common.Span

// Node is implemented by every AST node. The tree is strict: a node is owned by
// exactly one parent.
type Node interface {
	Span() Span
	node()
}

// Item is a top-level entry of a Program.
type Item interface {
	Node
	isItem()
}

// Stmt is an entry of a Block.
type Stmt interface {
	Node
	isStmt()
}

// Expr is any expression node.
type Expr interface {
	Node
	isExpr()
}

// Program is the root of every compilation unit.
type Program struct {
	Items  []Item
	Source string // file name, if known
	span   Span
}

func NewProgram(items []Item, source string, span Span) *Program {
	return &Program{Items: items, Source: source, span: span}
}

func (p *Program) node() {}

func (p *Program) Span() Span {
	return p.span
}
