// Package peekable provides a peekable iterator over a string
package peekable

import (
	"unicode/utf8"
)

// Chars is a peekable rune iterator over a string.
// It normalises Windows line endings ("\r\n") into a single '\n'.
// A stand-alone '\r' is returned unchanged.
type Chars struct {
	input   string
	pos     int
	width   int
	next    rune
	hasNext bool
}

func NewPeekableChars(s string) *Chars {
	p := &Chars{input: s}
	p.advance()
	return p
}

// advance decodes the rune at pos. "\r\n" is reported as one '\n' whose
// width covers both bytes.
func (p *Chars) advance() {
	if p.pos >= len(p.input) {
		p.hasNext = false
		p.next = 0
		p.width = 0
		return
	}

	r, w := utf8.DecodeRuneInString(p.input[p.pos:])
	if r == '\r' {
		nextPos := p.pos + w
		if nextPos < len(p.input) && p.input[nextPos] == '\n' {
			r = '\n'
			w++
		}
	}

	p.next = r
	p.width = w
	p.hasNext = true
}

// Peek returns a copy of the next rune without consuming it, or nil at the end.
func (p *Chars) Peek() *rune {
	if !p.hasNext {
		return nil
	}
	r := p.next
	return &r
}

// Next consumes and returns a copy of the next rune, or nil at the end.
func (p *Chars) Next() *rune {
	if !p.hasNext {
		return nil
	}
	r := p.next
	p.pos += p.width
	p.advance()
	return &r
}
