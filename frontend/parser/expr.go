package parser

import (
	"github.com/gluax-lang/dpp/frontend/ast"
	diag "github.com/gluax-lang/dpp/frontend/common"
	"github.com/gluax-lang/dpp/frontend/lexer"
)

func (p *parser) parseExpr() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment is right-associative: `a = b = c` is `a = (b = c)`.
// The target is checked once the value has been parsed.
func (p *parser) parseAssignment() ast.Expr {
	target := p.parseEquality()

	if !p.tryConsume("=") {
		return target
	}

	value := p.parseAssignment()

	ident, ok := target.(*ast.Ident)
	if !ok {
		diag.PanicParse(diag.ErrInvalidAssignmentTarget, ast.Dump(target), target.Span(),
			"invalid assignment target: %s", ast.Dump(target))
	}
	return ast.NewBinary(ident, "=", value, SpanFrom(target.Span(), value.Span()))
}

func (p *parser) parsePrimaryExpr() ast.Expr {
	tok := p.Token
	switch {
	case lexer.IsLiteral(tok):
		p.advance()
		return ast.NewLiteral(tok.Text, tok.Span())
	case lexer.IsIdent(tok):
		p.advance()
		ident := ast.NewIdent(tok.Text, tok.Span())
		if p.Token.Is("(") {
			return p.parseCall(ident)
		}
		return ident
	case tok.Is("("):
		return p.parseParenthesizedExpr()
	}
	diag.PanicParse(diag.ErrExpectedExpression, tok.Text, tok.Span(), "expected expression, found %s", describe(tok))
	panic("unreachable")
}

func (p *parser) parseCall(callee *ast.Ident) ast.Expr {
	p.expect("(")
	var args []ast.Expr
	p.parseCommaSeparatedDelimited(")", func(p *parser) {
		args = append(args, p.parseExpr())
	})
	return ast.NewCall(callee, args, SpanFrom(callee.Span(), p.prevSpan()))
}

// parseParenthesizedExpr returns the inner expression; grouping leaves no node.
func (p *parser) parseParenthesizedExpr() ast.Expr {
	p.expect("(")
	expr := p.parseExpr()
	p.expect(")")
	return expr
}
