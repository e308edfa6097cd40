package parser

import (
	"github.com/gluax-lang/dpp/frontend/ast"
	"github.com/gluax-lang/dpp/frontend/lexer"
)

func (p *parser) parseBlock() *ast.Block {
	spanStart := p.span()

	p.expect("{")

	var stmts []ast.Stmt
	for !p.Token.Is("}") && !lexer.IsEOF(p.Token) {
		stmts = append(stmts, p.parseStmt())
	}

	p.expect("}")

	span := SpanFrom(spanStart, p.prevSpan())
	return ast.NewBlock(stmts, span)
}
