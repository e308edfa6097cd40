// Package ir defines the stack machine instruction stream a program is
// lowered to, and the lowering itself.
package ir

import (
	"strconv"
	"strings"
)

type Op uint8

const (
	OpPush        Op = iota // push Arg (a literal)
	OpLoad                  // push the value of variable Arg
	OpStore                 // pop into variable Arg
	OpBinary                // pop two, push Left Arg Right
	OpNeg                   // negate the top of the stack
	OpNot                   // logical not of the top of the stack
	OpFunction              // start function Arg taking N parameters
	OpParam                 // bind parameter N of the current function to Arg
	OpEndFunction           // end of the current function
	OpCall                  // call Arg with N arguments on the stack, push its result
	OpRet                   // pop the return value and leave the function
)

var opNames = [...]string{
	OpPush:        "push",
	OpLoad:        "load",
	OpStore:       "store",
	OpBinary:      "binary",
	OpNeg:         "neg",
	OpNot:         "not",
	OpFunction:    "function",
	OpParam:       "param",
	OpEndFunction: "end_function",
	OpCall:        "call",
	OpRet:         "ret",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Instr is one instruction. Arg is the literal, name or operator symbol; N is
// the parameter index, parameter count or argument count, depending on Op.
type Instr struct {
	Op  Op
	Arg string
	N   int
}

func Push(v string) Instr     { return Instr{Op: OpPush, Arg: v} }
func Load(name string) Instr  { return Instr{Op: OpLoad, Arg: name} }
func Store(name string) Instr { return Instr{Op: OpStore, Arg: name} }
func Binary(op string) Instr  { return Instr{Op: OpBinary, Arg: op} }
func Neg() Instr              { return Instr{Op: OpNeg} }
func Not() Instr              { return Instr{Op: OpNot} }
func EndFunction() Instr      { return Instr{Op: OpEndFunction} }
func Ret() Instr              { return Instr{Op: OpRet} }
func Call(name string, n int) Instr {
	return Instr{Op: OpCall, Arg: name, N: n}
}

func Function(name string, params int) Instr {
	return Instr{Op: OpFunction, Arg: name, N: params}
}

func Param(name string, idx int) Instr {
	return Instr{Op: OpParam, Arg: name, N: idx}
}

// String renders the textual mnemonic, e.g. `push 1`, `+` or `function f:`.
func (in Instr) String() string {
	switch in.Op {
	case OpPush, OpLoad, OpStore, OpParam:
		return in.Op.String() + " " + in.Arg
	case OpBinary:
		return in.Arg
	case OpFunction:
		return "function " + in.Arg + ":"
	case OpCall:
		return "call " + in.Arg + " " + strconv.Itoa(in.N)
	default:
		return in.Op.String()
	}
}

// Program is a flat instruction stream; order is its only structure.
type Program []Instr

func (p Program) Strings() []string {
	out := make([]string, len(p))
	for i, in := range p {
		out[i] = in.String()
	}
	return out
}

func (p Program) String() string {
	return strings.Join(p.Strings(), "\n")
}
