package codegen

import (
	"github.com/gluax-lang/dpp/backend/ir"
)

func (cg *Codegen) genFunction(in ir.Instr) {
	cg.argc = in.N
	cg.label(in.Arg)
	cg.ln("push rbp")
	cg.ln("mov rbp, rsp")
}

func (cg *Codegen) genEpilogue() {
	cg.ln("mov rsp, rbp")
	cg.ln("pop rbp")
	cg.ln("ret")
}

func (cg *Codegen) genEndFunction() {
	cg.genEpilogue()
	cg.argc = 0
}

// genParam copies an argument into the parameter's slot. Arguments are pushed
// left to right, so the last one sits right above the return address.
func (cg *Codegen) genParam(in ir.Instr) {
	offset := ARG_BASE + WORD_SIZE*(cg.argc-1-in.N)
	cg.ln("mov %s, [rbp+%d]", ACC, offset)
	cg.ln("mov [%s], %s", in.Arg, ACC)
}

func (cg *Codegen) genRet() {
	cg.ln("pop %s", ACC)
	cg.genEpilogue()
}

// genCall leaves the callee's result on the stack in place of its arguments.
func (cg *Codegen) genCall(in ir.Instr) {
	cg.ln("call %s", in.Arg)
	if in.N > 0 {
		cg.ln("add rsp, %d", WORD_SIZE*in.N)
	}
	cg.ln("push %s", ACC)
}
