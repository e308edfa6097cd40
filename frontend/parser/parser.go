package parser

import (
	"fmt"

	"github.com/gluax-lang/dpp/common"
	"github.com/gluax-lang/dpp/frontend/ast"
	diag "github.com/gluax-lang/dpp/frontend/common"
	"github.com/gluax-lang/dpp/frontend/lexer"
)

type Span = common.Span

var SpanFrom = common.SpanFrom

// recoverError turns the panic raised by a failed rule back into an error.
func recoverError(r any) error {
	switch r := r.(type) {
	case *diag.Error:
		return r
	default:
		panic(fmt.Errorf("unexpected panic while parsing: %v", r))
	}
}

// parser is a single-cursor recursive descent parser. It never backtracks:
// the first rule that can't match aborts the whole parse.
type parser struct {
	TokenStream []lexer.Token
	Token       lexer.Token
	Pos         uint32
}

func newParser(tkS []lexer.Token) *parser {
	if len(tkS) == 0 || !lexer.IsEOF(tkS[len(tkS)-1]) {
		tkS = append(tkS, lexer.NewToken(lexer.KindSeparator, lexer.EOFText, common.SpanDefault()))
	}
	return &parser{TokenStream: tkS, Token: tkS[0]}
}

// Parse builds the Program for a token stream produced by lexer.Lex.
func Parse(tkS []lexer.Token) (prog *ast.Program, err error) {
	p := newParser(tkS)

	defer func() {
		if r := recover(); r != nil {
			prog, err = nil, recoverError(r)
		}
	}()

	spanStart := p.span()
	var items []ast.Item
	for !lexer.IsEOF(p.Token) {
		items = append(items, p.parseItem())
	}

	span := SpanFrom(spanStart, p.span())
	return ast.NewProgram(items, spanStart.Source, span), nil
}

// ParseExpression parses a token stream holding exactly one expression.
func ParseExpression(tkS []lexer.Token) (expr ast.Expr, err error) {
	p := newParser(tkS)

	defer func() {
		if r := recover(); r != nil {
			expr, err = nil, recoverError(r)
		}
	}()

	expr = p.parseExpr()
	if !lexer.IsEOF(p.Token) {
		p.fail(diag.ErrExpectedToken, "expected end of input, found %s", describe(p.Token))
	}
	return expr, nil
}

// advance moves the parser forward by one token, stopping at EOF.
func (p *parser) advance() {
	p.Pos = common.MinUint32(p.Pos+1, uint32(len(p.TokenStream)-1))
	p.Token = p.TokenStream[p.Pos]
}

func (p *parser) tryConsume(s string) bool {
	if p.Token.Is(s) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(s string) {
	if !p.tryConsume(s) {
		tok := p.Token
		diag.PanicParse(diag.ErrExpectedToken, s, tok.Span(), "expected '%s', found %s", s, describe(tok))
	}
}

func (p *parser) expectIdentMsg(msg string) lexer.Token {
	tok := p.Token
	if lexer.IsIdent(tok) {
		p.advance()
		return tok
	}
	diag.PanicParse(diag.ErrExpectedToken, "identifier", tok.Span(), "%s, found %s", msg, describe(tok))
	panic("unreachable")
}

func (p *parser) expectIdent() lexer.Token {
	return p.expectIdentMsg("expected identifier")
}

func (p *parser) fail(kind error, format string, args ...any) {
	diag.PanicParse(kind, p.Token.Text, p.span(), format, args...)
}

// peekOffset returns the token at p.Pos + n, clamped to the stream.
func (p *parser) peekOffset(n int) lexer.Token {
	idx := int(p.Pos) + n
	if idx < 0 {
		idx = 0
	} else if idx >= len(p.TokenStream) {
		idx = len(p.TokenStream) - 1
	}
	return p.TokenStream[idx]
}

func (p *parser) span() Span {
	return p.peekOffset(0).Span()
}

func (p *parser) prevSpan() Span {
	return p.peekOffset(-1).Span()
}

func describe(tok lexer.Token) string {
	if lexer.IsEOF(tok) {
		return "end of input"
	}
	return fmt.Sprintf("%s '%s'", tok.Kind, tok.Text)
}

func (p *parser) parseCommaSeparatedDelimited(closing string, parse func(*parser)) {
	if p.tryConsume(closing) {
		return
	}
	for {
		parse(p)
		if !p.tryConsume(",") {
			break
		}
	}
	p.expect(closing)
}
