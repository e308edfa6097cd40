// Package optimize rewrites a parsed program in place before it is lowered.
package optimize

import (
	"github.com/gluax-lang/dpp/frontend/ast"
)

// Pass returns the replacement for expr, or expr itself to leave it alone.
// Children have already been rewritten when a pass sees their parent.
type Pass func(expr ast.Expr) ast.Expr

// Identity is the default pass; it changes nothing.
func Identity(expr ast.Expr) ast.Expr {
	return expr
}

// Run applies passes bottom-up to every expression of prog. With no passes it
// is the identity. The target of an assignment and the callee of a call are
// names, not values, and are never handed to a pass.
func Run(prog *ast.Program, passes ...Pass) {
	if prog == nil || len(passes) == 0 {
		return
	}
	o := optimizer{passes: passes}
	for _, item := range prog.Items {
		o.item(item)
	}
}

type optimizer struct {
	passes []Pass
}

func (o *optimizer) item(item ast.Item) {
	switch item := item.(type) {
	case *ast.FunctionDecl:
		if item.Body != nil {
			for _, stmt := range item.Body.Stmts {
				o.stmt(stmt)
			}
		}
	case *ast.VarDecl:
		o.let(item)
	case *ast.ExprStmt:
		item.Expr = o.expr(item.Expr)
	}
}

func (o *optimizer) stmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.VarDecl:
		o.let(stmt)
	case *ast.ExprStmt:
		stmt.Expr = o.expr(stmt.Expr)
	case *ast.Return:
		if stmt.Value != nil {
			stmt.Value = o.expr(stmt.Value)
		}
	}
}

func (o *optimizer) let(let *ast.VarDecl) {
	if let.Init != nil {
		let.Init = o.expr(let.Init)
	}
}

func (o *optimizer) expr(expr ast.Expr) ast.Expr {
	switch expr := expr.(type) {
	case *ast.Binary:
		if !expr.IsAssignment() {
			expr.Left = o.expr(expr.Left)
		}
		expr.Right = o.expr(expr.Right)
	case *ast.Unary:
		expr.Operand = o.expr(expr.Operand)
	case *ast.Call:
		for i, arg := range expr.Args {
			expr.Args[i] = o.expr(arg)
		}
	}
	for _, pass := range o.passes {
		expr = pass(expr)
	}
	return expr
}
