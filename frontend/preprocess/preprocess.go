// Package preprocess expands the `#define` / `#ifdef` line directives of a
// D++ source before it is tokenized. Every input line maps to exactly one
// output line, so positions reported by later stages stay valid.
package preprocess

import (
	"maps"
	"regexp"
	"strings"

	"github.com/gluax-lang/dpp/common"
	diag "github.com/gluax-lang/dpp/frontend/common"
)

type Span = common.Span

var (
	defineRe = regexp.MustCompile(`^#define\s+(\w+)(?:\s+(.*))?$`)
	ifdefRe  = regexp.MustCompile(`^#(ifdef|ifndef)\s+(\w+)$`)
	elseRe   = regexp.MustCompile(`^#else$`)
	endifRe  = regexp.MustCompile(`^#endif$`)
	wordRe   = regexp.MustCompile(`\b(\w+)\b`)
	stringRe = regexp.MustCompile(`"[^"]*"`)
)

type cond struct {
	parent  bool // whether the enclosing region is active
	taken   bool
	sawElse bool
	span    Span
}

func (c cond) active() bool {
	return c.parent && c.taken
}

type preprocessor struct {
	src    string
	macros map[string]string
	conds  common.Stack[cond]
}

func (pp *preprocessor) active() bool {
	top, ok := pp.conds.Peek()
	return !ok || top.active()
}

func (pp *preprocessor) lineSpan(lineNum int, line string) Span {
	span := common.SpanNew(uint32(lineNum), uint32(lineNum), 1, common.MaxUint32(uint32(len(line)), 1))
	span.Source = pp.src
	return span
}

// Preprocess runs the directives in input. defines seeds the macro table;
// it is not modified.
func Preprocess(src, input string, defines map[string]string) (string, error) {
	pp := &preprocessor{src: src, macros: make(map[string]string, len(defines))}
	maps.Copy(pp.macros, defines)

	lines := strings.Split(input, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		text, err := pp.line(i+1, line)
		if err != nil {
			return "", err
		}
		out[i] = text
	}

	if top, ok := pp.conds.Peek(); ok {
		return "", diag.PreprocessError(diag.ErrBadDirective, "#ifdef", top.span, "unclosed #ifdef block")
	}
	return strings.Join(out, "\n"), nil
}

func (pp *preprocessor) line(lineNum int, line string) (string, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "#") {
		if !pp.active() {
			return "", nil
		}
		return pp.expand(line), nil
	}

	switch {
	case defineRe.MatchString(trimmed):
		if pp.active() {
			caps := defineRe.FindStringSubmatch(trimmed)
			pp.macros[caps[1]] = strings.TrimSpace(caps[2])
		}
	case ifdefRe.MatchString(trimmed):
		caps := ifdefRe.FindStringSubmatch(trimmed)
		_, defined := pp.macros[caps[2]]
		pp.conds.Push(cond{
			parent: pp.active(),
			taken:  defined == (caps[1] == "ifdef"),
			span:   pp.lineSpan(lineNum, line),
		})
	case elseRe.MatchString(trimmed):
		top, ok := pp.conds.Pop()
		if !ok {
			return "", diag.PreprocessError(diag.ErrBadDirective, "#else", pp.lineSpan(lineNum, line), "#else without matching #ifdef")
		}
		if top.sawElse {
			return "", diag.PreprocessError(diag.ErrBadDirective, "#else", pp.lineSpan(lineNum, line), "duplicate #else")
		}
		top.taken, top.sawElse = !top.taken, true
		pp.conds.Push(top)
	case endifRe.MatchString(trimmed):
		if _, ok := pp.conds.Pop(); !ok {
			return "", diag.PreprocessError(diag.ErrBadDirective, "#endif", pp.lineSpan(lineNum, line), "#endif without matching #ifdef")
		}
	default:
		// not a directive we know; the tokenizer reports it
		if !pp.active() {
			return "", nil
		}
		return line, nil
	}
	return "", nil
}

// expand substitutes macros with a value outside of string literals.
func (pp *preprocessor) expand(line string) string {
	replace := func(segment string) string {
		return wordRe.ReplaceAllStringFunc(segment, func(word string) string {
			if val, ok := pp.macros[word]; ok && val != "" {
				return val
			}
			return word
		})
	}

	var sb strings.Builder
	lastEnd := 0
	for _, loc := range stringRe.FindAllStringIndex(line, -1) {
		sb.WriteString(replace(line[lastEnd:loc[0]]))
		sb.WriteString(line[loc[0]:loc[1]])
		lastEnd = loc[1]
	}
	sb.WriteString(replace(line[lastEnd:]))
	return sb.String()
}
