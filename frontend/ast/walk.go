package ast

// Inspect traverses the tree rooted at n in source order, calling f for every
// node. If f returns false the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch n := n.(type) {
	case *Program:
		for _, it := range n.Items {
			Inspect(it, f)
		}
	case *FunctionDecl:
		for _, p := range n.Params {
			Inspect(p, f)
		}
		if n.ReturnType != nil {
			Inspect(n.ReturnType, f)
		}
		if n.Body != nil {
			Inspect(n.Body, f)
		}
	case *VarDecl:
		if n.Type != nil {
			Inspect(n.Type, f)
		}
		if n.Init != nil {
			Inspect(n.Init, f)
		}
	case *Block:
		for _, s := range n.Stmts {
			Inspect(s, f)
		}
	case *ExprStmt:
		Inspect(n.Expr, f)
	case *Return:
		if n.Value != nil {
			Inspect(n.Value, f)
		}
	case *Binary:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *Unary:
		Inspect(n.Operand, f)
	case *Call:
		Inspect(n.Callee, f)
		for _, a := range n.Args {
			Inspect(a, f)
		}
	}
}
