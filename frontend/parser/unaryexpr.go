package parser

import "github.com/gluax-lang/dpp/frontend/ast"

func (p *parser) parseUnaryExpr() ast.Expr {
	spanStart := p.span()
	switch {
	case p.Token.Is("-"), p.Token.Is("!"):
		op := p.Token.Text
		p.advance()
		operand := p.parseUnaryExpr()
		return ast.NewUnary(op, operand, SpanFrom(spanStart, p.prevSpan()))
	}
	return p.parsePrimaryExpr()
}
