package lexer

// twoCharOps are preferred over their one-character prefixes.
var twoCharOps = map[string]Kind{
	"==": KindOperator,
	"!=": KindOperator,
	"<=": KindOperator,
	">=": KindOperator,
	"->": KindSeparator,
}

var oneCharPuncts = map[rune]Kind{
	'(': KindSeparator,
	')': KindSeparator,
	'{': KindSeparator,
	'}': KindSeparator,
	',': KindSeparator,
	';': KindSeparator,
	':': KindSeparator,
	'+': KindOperator,
	'-': KindOperator,
	'*': KindOperator,
	'/': KindOperator,
	'=': KindOperator,
	'!': KindOperator,
	'<': KindOperator,
	'>': KindOperator,
}

// punct scans an operator or separator at the current rune. Comments were
// already consumed as trivia, so a '/' here is always division.
func (lx *lexer) punct() (Token, bool) {
	c := *lx.curChr
	if next := lx.peek(); next != nil {
		pair := string([]rune{c, *next})
		if kind, ok := twoCharOps[pair]; ok {
			lx.advance()
			lx.advance()
			return lx.token(kind, pair), true
		}
	}

	if kind, ok := oneCharPuncts[c]; ok {
		lx.advance()
		return lx.token(kind, string(c)), true
	}
	return Token{}, false
}
