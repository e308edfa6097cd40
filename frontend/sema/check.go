package sema

import (
	"github.com/gluax-lang/dpp/frontend/ast"
	diag "github.com/gluax-lang/dpp/frontend/common"
)

// Ref ties a name occurrence in the source to the symbol it resolved to.
type Ref struct {
	Span   Span
	Symbol *Symbol
}

// Analysis is the result of checking one program.
type Analysis struct {
	Table  *SymbolTable
	Scope  *Scope // root scope
	Refs   []Ref
	Errors []*diag.Error // in evaluation order
}

func (a *Analysis) error(kind error, subject string, span Span, format string, args ...any) {
	a.Errors = append(a.Errors, diag.SemanticError(kind, subject, span, format, args...))
}

func (a *Analysis) ref(span Span, sym *Symbol) {
	a.Refs = append(a.Refs, Ref{Span: span, Symbol: sym})
}

// Check reports the first name used before it is declared, visiting the
// program in evaluation order. Names resolve the way Analyze resolves them:
// declarations in enclosing scopes are found before table is consulted, so a
// name the program declares passes even when table lacks it. table is meant to
// be the one BuildSymbolTable returns for prog.
func Check(prog *ast.Program, table *SymbolTable) error {
	a := Analyze(prog, table)
	if len(a.Errors) > 0 {
		return a.Errors[0]
	}
	return nil
}

// Analyze checks the whole program and keeps going after an error, so every
// undefined name is reported.
//
// A name resolves against the enclosing scopes first. Function parameters are
// visible only in their function, and a `let` only after its declaration. A
// name no scope declares falls back to the symbol table.
func Analyze(prog *ast.Program, table *SymbolTable) *Analysis {
	if table == nil {
		table = BuildSymbolTable(prog)
	}
	a := &Analysis{Table: table, Scope: NewScope(nil)}
	if prog == nil {
		return a
	}
	span := prog.Span()
	a.Scope.Span = &span

	for _, item := range prog.Items {
		a.handleItem(a.Scope, item)
	}
	return a
}

func (a *Analysis) handleItem(scope *Scope, item ast.Item) {
	switch item := item.(type) {
	case *ast.FunctionDecl:
		a.handleFunction(scope, item)
	case *ast.VarDecl:
		a.handleLet(scope, item)
	case *ast.ExprStmt:
		a.handleExpr(scope, item.Expr)
	}
}

func (a *Analysis) handleFunction(scope *Scope, fn *ast.FunctionDecl) {
	sym := funcSymbol(fn)
	scope.AddSymbol(sym)
	a.ref(fn.NameSpan, sym)

	fnScope := scope.Child(fn.Span())
	for _, param := range fn.Params {
		psym := varSymbol(param, SymParam)
		fnScope.AddSymbol(psym)
		a.ref(param.NameSpan, psym)
	}
	if fn.Body != nil {
		a.handleBlock(fnScope, fn.Body)
	}
}

func (a *Analysis) handleBlock(scope *Scope, block *ast.Block) {
	child := scope.Child(block.Span())
	for _, stmt := range block.Stmts {
		a.handleStmt(child, stmt)
	}
}

func (a *Analysis) handleStmt(scope *Scope, stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.VarDecl:
		a.handleLet(scope, stmt)
	case *ast.ExprStmt:
		a.handleExpr(scope, stmt.Expr)
	case *ast.Return:
		if stmt.Value != nil {
			a.handleExpr(scope, stmt.Value)
		}
	}
}

// handleLet checks the initializer before declaring the name.
func (a *Analysis) handleLet(scope *Scope, let *ast.VarDecl) {
	if let.Init != nil {
		a.handleExpr(scope, let.Init)
	}
	sym := varSymbol(let, SymVariable)
	scope.AddSymbol(sym)
	a.ref(let.NameSpan, sym)
}

func (a *Analysis) handleExpr(scope *Scope, expr ast.Expr) {
	switch expr := expr.(type) {
	case *ast.Binary:
		if expr.IsAssignment() {
			a.handleExpr(scope, expr.Right)
			a.handleExpr(scope, expr.Left)
			return
		}
		a.handleExpr(scope, expr.Left)
		a.handleExpr(scope, expr.Right)
	case *ast.Unary:
		a.handleExpr(scope, expr.Operand)
	case *ast.Call:
		for _, arg := range expr.Args {
			a.handleExpr(scope, arg)
		}
		a.resolve(scope, expr.Callee)
	case *ast.Ident:
		a.resolve(scope, expr)
	case *ast.Literal:
	}
}

func (a *Analysis) resolve(scope *Scope, ident *ast.Ident) {
	sym := scope.GetSymbol(ident.Name)
	if sym == nil {
		sym = a.Table.Symbol(ident.Name)
	}
	if sym == nil {
		a.error(diag.ErrUndefinedVariable, ident.Name, ident.Span(), "undefined variable '%s'", ident.Name)
		return
	}
	a.ref(ident.Span(), sym)
}
