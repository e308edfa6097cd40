package ir

import (
	"reflect"
	"testing"

	"github.com/gluax-lang/dpp/frontend/lexer"
	"github.com/gluax-lang/dpp/frontend/parser"
)

func lower(t *testing.T, code string) Program {
	t.Helper()
	toks, err := lexer.Lex("test.dpp", code)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return Lower(prog)
}

func TestLower(t *testing.T) {
	tests := []struct {
		code string
		want []string
	}{
		{"1 + 2;", []string{"push 1", "push 2", "+"}},
		{"1 + 2 * 3;", []string{"push 1", "push 2", "push 3", "*", "+"}},
		{"a - b;", []string{"load a", "load b", "-"}},
		{"x < 1 == y;", []string{"load x", "push 1", "<", "load y", "=="}},
		{"-x; !y;", []string{"load x", "neg", "load y", "not"}},
		{"let x: int;", []string{}},
		{"let x: int = 5;", []string{"push 5", "store x"}},
		{"a = b = 2;", []string{"push 2", "store b", "load b", "store a", "load a"}},
		{`s = "hi";`, []string{`push "hi"`, "store s", "load s"}},
		{"print(z, 1);", []string{"load z", "push 1", "call print 2"}},
		{"f();", []string{"call f 0"}},
		{
			"fn add(a: int, b: int) -> int { let c: int = a + b; return c; }",
			[]string{"function add:", "param a", "param b", "load a", "load b", "+", "store c", "load c", "ret", "end_function"},
		},
		{
			"fn g() -> void { return; }",
			[]string{"function g:", "push 0", "ret", "end_function"},
		},
	}

	for _, tc := range tests {
		got := lower(t, tc.code).Strings()
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%q lowered to %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestLowerOperands(t *testing.T) {
	prog := lower(t, "fn f(a: int, b: int) -> int { return f(a, b); }")
	want := Program{
		Function("f", 2),
		Param("a", 0),
		Param("b", 1),
		Load("a"),
		Load("b"),
		Call("f", 2),
		Ret(),
		EndFunction(),
	}
	if !reflect.DeepEqual(prog, want) {
		t.Fatalf("got %v, want %v", prog, want)
	}
}

func TestLowerEmpty(t *testing.T) {
	if got := Lower(nil); got == nil || len(got) != 0 {
		t.Fatalf("Lower(nil) = %#v", got)
	}
	if got := lower(t, "let x: int;"); got == nil || len(got) != 0 {
		t.Fatalf("Lower(let x: int;) = %#v", got)
	}
}

func TestInstrString(t *testing.T) {
	tests := []struct {
		in   Instr
		want string
	}{
		{Push("42"), "push 42"},
		{Load("x"), "load x"},
		{Store("x"), "store x"},
		{Binary("/"), "/"},
		{Neg(), "neg"},
		{Not(), "not"},
		{Function("main", 0), "function main:"},
		{Param("p", 1), "param p"},
		{EndFunction(), "end_function"},
		{Call("f", 3), "call f 3"},
		{Ret(), "ret"},
		{Instr{Op: Op(200)}, "op(200)"},
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.in, got, tc.want)
		}
	}

	if got, want := (Program{Push("1"), Push("2"), Binary("+")}).String(), "push 1\npush 2\n+"; got != want {
		t.Fatalf("Program.String() = %q, want %q", got, want)
	}
}
