package lexer

import (
	"github.com/gluax-lang/dpp/common"
	diag "github.com/gluax-lang/dpp/frontend/common"
	"github.com/gluax-lang/dpp/frontend/lexer/peekable"
)

// lexer is a hand-rolled, rune-based scanner. It never backtracks.
type lexer struct {
	src                    string // source is the file being scanned
	chars                  *peekable.Chars
	curChr                 *rune
	line, column           uint32
	savedLine, savedColumn uint32
	keywords               map[string]struct{}
}

// Lex scans code into tokens. The result always ends with the EOF separator.
// The first malformed lexeme aborts the scan with a *common.Error.
func Lex(src, code string, opts ...Option) ([]Token, error) {
	var tokens []Token
	lx := newLexer(src, code, opts...)
	for {
		tok, err := lx.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if IsEOF(tok) {
			break
		}
	}
	return tokens, nil
}

func newLexer(src, code string, opts ...Option) *lexer {
	chars := peekable.NewPeekableChars(code)
	lx := &lexer{
		src:    src,
		chars:  chars,
		curChr: chars.Next(),
		line:   1, column: 1,
		savedLine: 1, savedColumn: 1,
		keywords: newKeywordTable(),
	}
	for _, opt := range opts {
		opt(lx)
	}
	return lx
}

func (lx *lexer) currentSpan() common.Span {
	span := common.SpanNew(lx.savedLine, lx.line, lx.savedColumn, common.MaxUint32(lx.column-1, 1))
	span.Source = lx.src
	return span
}

func (lx *lexer) advance() {
	c := lx.curChr
	if c != nil {
		if *c == '\n' {
			lx.line++
			lx.column = 1
		} else {
			lx.column++
		}
	}
	lx.curChr = lx.chars.Next()
}

func (lx *lexer) peek() *rune {
	return lx.chars.Peek()
}

func (lx *lexer) mark() {
	lx.savedLine = lx.line
	lx.savedColumn = lx.column
}

func (lx *lexer) token(kind Kind, text string) Token {
	return NewToken(kind, text, lx.currentSpan())
}

func (lx *lexer) error(kind error, subject string, format string, args ...any) error {
	return diag.LexError(kind, subject, lx.currentSpan(), format, args...)
}

// skipTrivia consumes whitespace and line comments, which produce no tokens.
func (lx *lexer) skipTrivia() {
	for lx.trivia() != 0 {
	}
	lx.mark()
}

// trivia consumes one whitespace rune or one comment and reports which it was,
// or 0 when the current rune starts a real token.
func (lx *lexer) trivia() Kind {
	c := lx.curChr
	switch {
	case isWsChr(c):
		lx.advance()
		return KindWhitespace
	case isChr(c, '/') && isChr(lx.peek(), '/'):
		lx.comment()
		return KindComment
	}
	return 0
}

func (lx *lexer) nextToken() (Token, error) {
	lx.skipTrivia()

	c := lx.curChr
	if c == nil {
		span := common.SpanNew(lx.line, lx.line, lx.column, lx.column)
		span.Source = lx.src
		return newTokEOF(span), nil
	}

	switch {
	case isIdentStart(*c):
		return lx.identifier(), nil
	case isAsciiDigit(c):
		return lx.number(), nil
	case *c == '"':
		return lx.string()
	}

	if tok, ok := lx.punct(); ok {
		return tok, nil
	}

	lx.advance()
	return Token{}, lx.error(diag.ErrUnexpectedCharacter, string(*c), "unexpected character: %q", *c)
}

func isChr(c *rune, e rune) bool {
	return c != nil && *c == e
}

// isWsChr covers the skipped characters; '\n' also bumps the line in advance.
func isWsChr(c *rune) bool {
	if c == nil {
		return false
	}
	switch *c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}
