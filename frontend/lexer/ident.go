package lexer

import "strings"

func (lx *lexer) identifier() Token {
	var sb strings.Builder

	sb.WriteRune(*lx.curChr)
	lx.advance()

	for c := lx.curChr; c != nil && isIdentContinue(*c); c = lx.curChr {
		sb.WriteRune(*c)
		lx.advance()
	}

	word := sb.String()
	if lx.isKeyword(word) {
		return lx.token(KindKeyword, word)
	}
	return lx.token(KindIdentifier, word)
}

// isIdentStart accepts ASCII letters and underscore only.
func isIdentStart(r rune) bool {
	return ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z') || r == '_'
}

func isIdentContinue(r rune) bool {
	return ('0' <= r && r <= '9') || isIdentStart(r)
}

// IsValidIdent reports whether s would scan as a single word.
func IsValidIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
		} else if !isIdentContinue(r) {
			return false
		}
	}
	return true
}
