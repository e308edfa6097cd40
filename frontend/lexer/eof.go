package lexer

import "github.com/gluax-lang/dpp/common"

// EOFText is the text of the synthetic token that ends every stream.
const EOFText = "EOF"

func newTokEOF(span common.Span) Token {
	return NewToken(KindSeparator, EOFText, span)
}

func IsEOF(t Token) bool {
	return t.Kind == KindSeparator && t.Text == EOFText
}

func IsIdent(t Token) bool {
	return t.Kind == KindIdentifier
}

func IsLiteral(t Token) bool {
	return t.Kind == KindLiteral
}
