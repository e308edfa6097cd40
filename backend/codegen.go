// Package codegen turns the stack machine instruction stream into an x86-64
// assembly listing. The operand stack is the machine stack; rax is the
// accumulator and rbx the scratch register.
package codegen

import (
	"fmt"
	"strings"

	"github.com/gluax-lang/dpp/backend/ir"
)

type Codegen struct {
	lines []string

	argc int // parameter count of the function being generated
}

// Generate maps every instruction to a fixed template. Instructions it does
// not know are skipped.
func Generate(prog ir.Program) []string {
	cg := &Codegen{lines: make([]string, 0, len(prog)*3)}
	for _, in := range prog {
		cg.genInstr(in)
	}
	return cg.lines
}

// Listing renders the generated lines as one newline-terminated text.
func Listing(lines []string) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ln writes one indented instruction line.
func (cg *Codegen) ln(format string, args ...any) {
	cg.lines = append(cg.lines, INDENT+fmt.Sprintf(format, args...))
}

func (cg *Codegen) label(name string) {
	cg.lines = append(cg.lines, name+":")
}

func (cg *Codegen) genInstr(in ir.Instr) {
	switch in.Op {
	case ir.OpFunction:
		cg.genFunction(in)
	case ir.OpParam:
		cg.genParam(in)
	case ir.OpEndFunction:
		cg.genEndFunction()
	case ir.OpRet:
		cg.genRet()
	case ir.OpCall:
		cg.genCall(in)
	case ir.OpPush:
		cg.ln("push %s", in.Arg)
	case ir.OpLoad:
		cg.genLoad(in.Arg)
	case ir.OpStore:
		cg.genStore(in.Arg)
	case ir.OpBinary:
		cg.genBinary(in.Arg)
	case ir.OpNeg, ir.OpNot:
		cg.genUnary(in.Op)
	}
}
