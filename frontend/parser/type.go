package parser

import "github.com/gluax-lang/dpp/frontend/ast"

func (p *parser) parseType() *ast.Type {
	tok := p.expectIdentMsg("expected type name")
	return ast.NewType(tok.Text, tok.Span())
}
