package parser

import (
	"github.com/gluax-lang/dpp/frontend/ast"
)

// parseFunction parses `fn name(params) -> Type { ... }`.
func (p *parser) parseFunction() *ast.FunctionDecl {
	spanStart := p.span()
	p.expect("fn")

	name := p.expectIdentMsg("expected function name")
	params := p.parseFunctionParams()

	p.expect("->")
	returnType := p.parseType()

	body := p.parseBlock()

	span := SpanFrom(spanStart, p.prevSpan())
	return ast.NewFunctionDecl(name.Text, name.Span(), params, returnType, body, span)
}

func (p *parser) parseFunctionParams() []*ast.VarDecl {
	p.expect("(")
	var params []*ast.VarDecl
	p.parseCommaSeparatedDelimited(")", func(p *parser) {
		params = append(params, p.parseFunctionParam())
	})
	return params
}

func (p *parser) parseFunctionParam() *ast.VarDecl {
	spanStart := p.span()
	name := p.expectIdentMsg("expected parameter name")
	p.expect(":")
	ty := p.parseType()
	return ast.NewVarDecl(name.Text, name.Span(), ty, nil, SpanFrom(spanStart, p.prevSpan()))
}
