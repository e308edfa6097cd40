package codegen

import (
	"github.com/gluax-lang/dpp/backend/ir"
)

func (cg *Codegen) genLoad(name string) {
	cg.ln("mov %s, [%s]", ACC, name)
	cg.ln("push %s", ACC)
}

func (cg *Codegen) genStore(name string) {
	cg.ln("pop %s", ACC)
	cg.ln("mov [%s], %s", name, ACC)
}

// genBinary pops the right operand into rbx and the left into rax.
func (cg *Codegen) genBinary(op string) {
	arith, isArith := arithOps[op]
	setcc, isCompare := compareOps[op]
	if !isArith && !isCompare && op != "/" {
		return
	}

	cg.ln("pop %s", SCRATCH)
	cg.ln("pop %s", ACC)
	switch {
	case isArith:
		cg.ln("%s %s, %s", arith, ACC, SCRATCH)
	case isCompare:
		cg.ln("cmp %s, %s", ACC, SCRATCH)
		cg.ln("%s %s", setcc, ACC_LOW)
		cg.ln("movzx %s, %s", ACC, ACC_LOW)
	default:
		cg.ln("xor %s, %s", REM, REM)
		cg.ln("idiv %s", SCRATCH)
	}
	cg.ln("push %s", ACC)
}

func (cg *Codegen) genUnary(op ir.Op) {
	cg.ln("pop %s", ACC)
	if op == ir.OpNeg {
		cg.ln("neg %s", ACC)
	} else {
		cg.ln("cmp %s, 0", ACC)
		cg.ln("sete %s", ACC_LOW)
		cg.ln("movzx %s, %s", ACC, ACC_LOW)
	}
	cg.ln("push %s", ACC)
}
