package ir

import (
	"github.com/gluax-lang/dpp/frontend/ast"
)

type lowerer struct {
	out Program
}

func (l *lowerer) emit(in Instr) {
	l.out = append(l.out, in)
}

// Lower flattens prog into stack machine instructions, in source order.
// Expression statements leave their value on the stack; the function epilogue
// discards it.
func Lower(prog *ast.Program) Program {
	l := &lowerer{out: Program{}}
	if prog == nil {
		return l.out
	}
	for _, item := range prog.Items {
		l.item(item)
	}
	return l.out
}

func (l *lowerer) item(item ast.Item) {
	switch item := item.(type) {
	case *ast.FunctionDecl:
		l.function(item)
	case *ast.VarDecl:
		l.let(item)
	case *ast.ExprStmt:
		l.expr(item.Expr)
	}
}

func (l *lowerer) function(fn *ast.FunctionDecl) {
	l.emit(Function(fn.Name, len(fn.Params)))
	for i, p := range fn.Params {
		l.emit(Param(p.Name, i))
	}
	if fn.Body != nil {
		for _, stmt := range fn.Body.Stmts {
			l.stmt(stmt)
		}
	}
	l.emit(EndFunction())
}

func (l *lowerer) stmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.VarDecl:
		l.let(stmt)
	case *ast.ExprStmt:
		l.expr(stmt.Expr)
	case *ast.Return:
		if stmt.Value != nil {
			l.expr(stmt.Value)
		} else {
			l.emit(Push("0"))
		}
		l.emit(Ret())
	}
}

func (l *lowerer) let(let *ast.VarDecl) {
	if let.Init == nil {
		return
	}
	l.expr(let.Init)
	l.emit(Store(let.Name))
}

func (l *lowerer) expr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Binary:
		if e.IsAssignment() {
			target := e.Left.(*ast.Ident)
			l.expr(e.Right)
			l.emit(Store(target.Name))
			l.emit(Load(target.Name))
			return
		}
		l.expr(e.Left)
		l.expr(e.Right)
		l.emit(Binary(e.Op))
	case *ast.Unary:
		l.expr(e.Operand)
		if e.Op == "!" {
			l.emit(Not())
		} else {
			l.emit(Neg())
		}
	case *ast.Call:
		for _, arg := range e.Args {
			l.expr(arg)
		}
		l.emit(Call(e.Callee.Name, len(e.Args)))
	case *ast.Literal:
		l.emit(Push(e.Raw))
	case *ast.Ident:
		l.emit(Load(e.Name))
	}
}
