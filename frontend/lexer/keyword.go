package lexer

import "strings"

// reserved is the fixed keyword set of the language.
var reserved = []string{"fn", "let", "if", "else", "while", "return"}

// Keywords returns a copy of the reserved keyword set.
func Keywords() []string {
	out := make([]string, len(reserved))
	copy(out, reserved)
	return out
}

// Option configures a lexer.
type Option func(*lexer)

// WithKeywords reserves extra words on top of the fixed set. Blank entries are
// ignored.
func WithKeywords(words ...string) Option {
	return func(lx *lexer) {
		for _, w := range words {
			if w = strings.TrimSpace(w); w != "" {
				lx.keywords[w] = struct{}{}
			}
		}
	}
}

func newKeywordTable() map[string]struct{} {
	table := make(map[string]struct{}, len(reserved))
	for _, kw := range reserved {
		table[kw] = struct{}{}
	}
	return table
}

func (lx *lexer) isKeyword(word string) bool {
	_, ok := lx.keywords[word]
	return ok
}
