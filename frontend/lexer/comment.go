package lexer

// comment consumes a `//` comment up to, but not including, the newline.
func (lx *lexer) comment() {
	lx.advance() // skip '/'
	lx.advance() // skip '/'

	for c := lx.curChr; c != nil && *c != '\n'; c = lx.curChr {
		lx.advance()
	}
}
