package optimize

import (
	"testing"

	"github.com/gluax-lang/dpp/frontend/ast"
	"github.com/gluax-lang/dpp/frontend/lexer"
	"github.com/gluax-lang/dpp/frontend/parser"
)

func parse(t *testing.T, code string) *ast.Program {
	t.Helper()
	toks, err := lexer.Lex("test.dpp", code)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return prog
}

func TestRunIdentity(t *testing.T) {
	programs := []string{
		"1 + 2 * 3;",
		"let x: int = 4 / 2; fn f(a: int) -> int { return -a + 1; } x = f(2 * 2);",
	}
	for _, code := range programs {
		prog := parse(t, code)
		before := ast.Dump(prog)

		Run(prog)
		if got := ast.Dump(prog); got != before {
			t.Errorf("Run without passes changed %q:\n  %s", code, got)
		}
		Run(prog, Identity)
		if got := ast.Dump(prog); got != before {
			t.Errorf("Identity changed %q:\n  %s", code, got)
		}
	}
}

func TestFoldConstants(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"1 + 2 * 3;", "(program (expr 7))"},
		{"(1 + 2) * 3;", "(program (expr 9))"},
		{"7 / 2;", "(program (expr 3))"},
		{"-(2 - 5);", "(program (expr 3))"},
		{"!0; !4;", "(program (expr 1) (expr 0))"},
		{"x = 2 * 3 + y;", "(program (expr (= x (+ 6 y))))"},
		{"y + 2 * 3;", "(program (expr (+ y 6)))"},
		{"1 + 2 + y;", "(program (expr (+ 3 y)))"},
		{"y + 1 + 2;", "(program (expr (+ (+ y 1) 2)))"},
		{"8 / 0;", "(program (expr (/ 8 0)))"},
		{"1.5 + 1;", "(program (expr (+ 1.5 1)))"},
		{`"a" + 1;`, `(program (expr (+ "a" 1)))`},
		{"1 < 2;", "(program (expr (< 1 2)))"},
		{"f(1 + 1, 2 * 2);", "(program (expr (call f 2 4)))"},
		{"let x: int = 10 - 4;", "(program (let x int 6))"},
		{"fn f() -> int { let a: int = 2 * 2; return a * (3 - 1); }",
			"(program (fn f (params) int (block (let a int 4) (return (* a 2)))))"},
	}

	for _, tc := range tests {
		prog := parse(t, tc.code)
		Run(prog, FoldConstants)
		if got := ast.Dump(prog); got != tc.want {
			t.Errorf("%q folded to\n  %s\nwant\n  %s", tc.code, got, tc.want)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	code := "let x: int = 1 + 2; fn f(a: int) -> int { return a * (4 - 1) + -2; } x = f(x) + 2 * 8;"
	for _, passes := range [][]Pass{nil, {Identity}, {FoldConstants}} {
		once := parse(t, code)
		Run(once, passes...)

		twice := parse(t, code)
		Run(twice, passes...)
		Run(twice, passes...)

		if a, b := ast.Dump(once), ast.Dump(twice); a != b {
			t.Errorf("running twice differs from once:\n  %s\n  %s", a, b)
		}
	}
}

func TestFoldKeepsSpan(t *testing.T) {
	prog := parse(t, "1 + 2;")
	want := prog.Items[0].(*ast.ExprStmt).Expr.Span()
	Run(prog, FoldConstants)
	lit := prog.Items[0].(*ast.ExprStmt).Expr.(*ast.Literal)
	if lit.Span() != want {
		t.Fatalf("span = %v, want %v", lit.Span(), want)
	}
}
