package parser

import (
	"github.com/gluax-lang/dpp/frontend/ast"
	diag "github.com/gluax-lang/dpp/frontend/common"
	"github.com/gluax-lang/dpp/frontend/lexer"
)

func (p *parser) parseStmt() ast.Stmt {
	switch {
	case p.Token.Is("let"):
		return p.parseLet()
	case p.Token.Is("return"):
		return p.parseReturn()
	}
	p.rejectUnsupported()
	return p.parseExprStmt()
}

// rejectUnsupported fails on reserved words that have no grammar yet.
func (p *parser) rejectUnsupported() {
	if p.Token.Kind != lexer.KindKeyword {
		return
	}
	switch p.Token.Text {
	case "if", "else", "while":
		p.fail(diag.ErrUnsupported, "'%s' statements are not supported", p.Token.Text)
	}
}

// parseLet parses `let name: Type (= expr)?;`.
func (p *parser) parseLet() *ast.VarDecl {
	spanStart := p.span()
	p.expect("let")

	name := p.expectIdentMsg("expected variable name")
	p.expect(":")
	ty := p.parseType()

	var init ast.Expr
	if p.tryConsume("=") {
		init = p.parseExpr()
	}

	p.expect(";")

	span := SpanFrom(spanStart, p.prevSpan())
	return ast.NewVarDecl(name.Text, name.Span(), ty, init, span)
}

func (p *parser) parseReturn() *ast.Return {
	spanStart := p.span()
	p.expect("return")

	var value ast.Expr
	if !p.Token.Is(";") {
		value = p.parseExpr()
	}

	p.expect(";")

	return ast.NewReturn(value, SpanFrom(spanStart, p.prevSpan()))
}

func (p *parser) parseExprStmt() *ast.ExprStmt {
	spanStart := p.span()
	expr := p.parseExpr()
	p.expect(";")
	return ast.NewExprStmt(expr, SpanFrom(spanStart, p.prevSpan()))
}
