package lexer

import "strings"

// number scans digits with an optional fraction. The dot is only taken
// when a digit follows it, so `1.` lexes as the literal 1 and a stray '.'.
func (lx *lexer) number() Token {
	var sb strings.Builder

	for isAsciiDigit(lx.curChr) {
		sb.WriteRune(*lx.curChr)
		lx.advance()
	}

	if isChr(lx.curChr, '.') && isAsciiDigit(lx.peek()) {
		sb.WriteRune('.')
		lx.advance()
		for isAsciiDigit(lx.curChr) {
			sb.WriteRune(*lx.curChr)
			lx.advance()
		}
	}

	return lx.token(KindLiteral, sb.String())
}

func isAsciiDigit(r *rune) bool {
	return r != nil && '0' <= *r && *r <= '9'
}
