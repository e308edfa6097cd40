package parser

import "github.com/gluax-lang/dpp/frontend/ast"

// Each precedence level is its own rule, loosest first. All of them are
// left-associative.

func (p *parser) parseEquality() ast.Expr {
	return p.parseLeftAssoc(p.parseComparison, "==", "!=")
}

func (p *parser) parseComparison() ast.Expr {
	return p.parseLeftAssoc(p.parseTerm, "<", "<=", ">", ">=")
}

func (p *parser) parseTerm() ast.Expr {
	return p.parseLeftAssoc(p.parseFactor, "+", "-")
}

func (p *parser) parseFactor() ast.Expr {
	return p.parseLeftAssoc(p.parseUnaryExpr, "*", "/")
}

func (p *parser) parseLeftAssoc(operand func() ast.Expr, ops ...string) ast.Expr {
	left := operand()
	for {
		op, ok := p.matchOperator(ops)
		if !ok {
			return left
		}
		right := operand()
		left = ast.NewBinary(left, op, right, SpanFrom(left.Span(), right.Span()))
	}
}

func (p *parser) matchOperator(ops []string) (string, bool) {
	for _, op := range ops {
		if p.tryConsume(op) {
			return op, true
		}
	}
	return "", false
}
