package lexer

import (
	"fmt"

	"github.com/gluax-lang/dpp/common"
)

// Kind classifies a token.
type Kind uint8

const (
	_ Kind = iota
	KindIdentifier
	KindKeyword
	KindOperator
	KindLiteral
	KindSeparator
	// KindComment and KindWhitespace are recognised while scanning but never emitted.
	KindComment
	KindWhitespace
)

func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "Identifier"
	case KindKeyword:
		return "Keyword"
	case KindOperator:
		return "Operator"
	case KindLiteral:
		return "Literal"
	case KindSeparator:
		return "Separator"
	case KindComment:
		return "Comment"
	case KindWhitespace:
		return "Whitespace"
	default:
		return "Invalid"
	}
}

// Token is a classified lexeme. Tokens are immutable once produced.
type Token struct {
	Kind Kind
	Text string
	span common.Span
}

func NewToken(kind Kind, text string, span common.Span) Token {
	return Token{Kind: kind, Text: text, span: span}
}

func (t Token) Span() common.Span {
	return t.span
}

func (t Token) Line() uint32 {
	return t.span.LineStart
}

func (t Token) Column() uint32 {
	return t.span.ColumnStart
}

// Is reports whether the token is the keyword, operator or separator s.
// Identifiers and literals never match, so an identifier can't pass for `fn`.
func (t Token) Is(s string) bool {
	switch t.Kind {
	case KindKeyword, KindOperator, KindSeparator:
		return t.Text == s
	default:
		return false
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}
