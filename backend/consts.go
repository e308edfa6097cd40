package codegen

const INDENT = "    "

const (
	ACC     = "rax"
	SCRATCH = "rbx"
	REM     = "rdx"
	ACC_LOW = "al"
)

const WORD_SIZE = 8

// stack offset of the last pushed argument, above the saved rbp and the
// return address
const ARG_BASE = 2 * WORD_SIZE

var arithOps = map[string]string{
	"+": "add",
	"-": "sub",
	"*": "imul",
}

var compareOps = map[string]string{
	"==": "sete",
	"!=": "setne",
	"<":  "setl",
	"<=": "setle",
	">":  "setg",
	">=": "setge",
}
