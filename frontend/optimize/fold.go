package optimize

import (
	"strconv"

	"github.com/gluax-lang/dpp/frontend/ast"
)

// FoldConstants replaces integer arithmetic over literals with its result.
// Division by zero, float and string operands are left for run time.
func FoldConstants(expr ast.Expr) ast.Expr {
	switch e := expr.(type) {
	case *ast.Binary:
		l, lok := intLiteral(e.Left)
		r, rok := intLiteral(e.Right)
		if !lok || !rok {
			return expr
		}
		var v int64
		switch e.Op {
		case "+":
			v = l + r
		case "-":
			v = l - r
		case "*":
			v = l * r
		case "/":
			if r == 0 {
				return expr
			}
			v = l / r
		default:
			return expr
		}
		return ast.NewLiteral(strconv.FormatInt(v, 10), e.Span())
	case *ast.Unary:
		n, ok := intLiteral(e.Operand)
		if !ok {
			return expr
		}
		switch e.Op {
		case "-":
			return ast.NewLiteral(strconv.FormatInt(-n, 10), e.Span())
		case "!":
			if n == 0 {
				return ast.NewLiteral("1", e.Span())
			}
			return ast.NewLiteral("0", e.Span())
		}
	}
	return expr
}

func intLiteral(expr ast.Expr) (int64, bool) {
	lit, ok := expr.(*ast.Literal)
	if !ok || lit.IsString() {
		return 0, false
	}
	n, err := strconv.ParseInt(lit.Raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
