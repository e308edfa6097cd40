package parser

import (
	"github.com/gluax-lang/dpp/frontend/ast"
	diag "github.com/gluax-lang/dpp/frontend/common"
)

// parseItem parses one top-level entry: a function, a variable or a bare
// expression statement.
func (p *parser) parseItem() ast.Item {
	switch {
	case p.Token.Is("fn"):
		return p.parseFunction()
	case p.Token.Is("let"):
		return p.parseLet()
	case p.Token.Is("return"):
		p.fail(diag.ErrUnsupported, "'return' outside of a function")
	}
	p.rejectUnsupported()
	return p.parseExprStmt()
}
