package ast

import "strings"

// Dump renders n as an S-expression, e.g. `(+ 1 (* 2 3))`. Spans are not
// printed, so two trees of the same shape dump identically.
func Dump(n Node) string {
	var sb strings.Builder
	dump(&sb, n)
	return sb.String()
}

func dump(sb *strings.Builder, n Node) {
	open := func(head string) {
		sb.WriteByte('(')
		sb.WriteString(head)
	}
	child := func(c Node) {
		sb.WriteByte(' ')
		dump(sb, c)
	}

	switch n := n.(type) {
	case nil:
		sb.WriteString("<nil>")
	case *Program:
		open("program")
		for _, it := range n.Items {
			child(it)
		}
		sb.WriteByte(')')
	case *FunctionDecl:
		open("fn " + n.Name + " (params")
		for _, p := range n.Params {
			sb.WriteString(" (" + p.Name + " " + TypeName(p.Type) + ")")
		}
		sb.WriteByte(')')
		ret := TypeName(n.ReturnType)
		if ret == "" {
			ret = "void"
		}
		sb.WriteString(" " + ret)
		if n.Body != nil {
			child(n.Body)
		}
		sb.WriteByte(')')
	case *VarDecl:
		open("let " + n.Name + " " + TypeName(n.Type))
		if n.Init != nil {
			child(n.Init)
		}
		sb.WriteByte(')')
	case *Type:
		sb.WriteString(n.Name)
	case *Block:
		open("block")
		for _, s := range n.Stmts {
			child(s)
		}
		sb.WriteByte(')')
	case *ExprStmt:
		open("expr")
		child(n.Expr)
		sb.WriteByte(')')
	case *Return:
		open("return")
		if n.Value != nil {
			child(n.Value)
		}
		sb.WriteByte(')')
	case *Binary:
		open(n.Op)
		child(n.Left)
		child(n.Right)
		sb.WriteByte(')')
	case *Unary:
		open(n.Op)
		child(n.Operand)
		sb.WriteByte(')')
	case *Call:
		open("call " + n.Callee.Name)
		for _, a := range n.Args {
			child(a)
		}
		sb.WriteByte(')')
	case *Literal:
		sb.WriteString(n.Raw)
	case *Ident:
		sb.WriteString(n.Name)
	}
}
