package lexer

import (
	"strings"

	diag "github.com/gluax-lang/dpp/frontend/common"
)

// string scans a double-quoted literal. There is no escape processing: the
// literal ends at the next '"'. The token text keeps both quotes.
func (lx *lexer) string() (Token, error) {
	var sb strings.Builder

	sb.WriteRune('"')
	lx.advance() // opening quote

	for {
		if lx.curChr == nil {
			return Token{}, lx.error(diag.ErrUnterminatedString, sb.String(), "unterminated string")
		}
		c := *lx.curChr
		sb.WriteRune(c)
		lx.advance()
		if c == '"' {
			return lx.token(KindLiteral, sb.String()), nil
		}
	}
}
