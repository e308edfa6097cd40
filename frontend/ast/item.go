package ast

/* Type */

// Type is a named type reference. There is no structural typing.
type Type struct {
	Name string
	span Span
}

func NewType(name string, span Span) *Type {
	return &Type{Name: name, span: span}
}

func (t *Type) node() {}

func (t *Type) Span() Span {
	return t.span
}

// TypeName returns the name of t, or "" for a missing type.
func TypeName(t *Type) string {
	if t == nil {
		return ""
	}
	return t.Name
}

/* Function */

type FunctionDecl struct {
	Name       string
	NameSpan   Span
	Params     []*VarDecl // never initialized
	ReturnType *Type      // nil means void
	Body       *Block
	span       Span
}

func NewFunctionDecl(name string, nameSpan Span, params []*VarDecl, ret *Type, body *Block, span Span) *FunctionDecl {
	return &FunctionDecl{Name: name, NameSpan: nameSpan, Params: params, ReturnType: ret, Body: body, span: span}
}

func (f *FunctionDecl) node()   {}
func (f *FunctionDecl) isItem() {}

func (f *FunctionDecl) Span() Span {
	return f.span
}

/* Variable */

type VarDecl struct {
	Name     string
	NameSpan Span
	Type     *Type
	Init     Expr // nil if absent
	span     Span
}

func NewVarDecl(name string, nameSpan Span, ty *Type, init Expr, span Span) *VarDecl {
	return &VarDecl{Name: name, NameSpan: nameSpan, Type: ty, Init: init, span: span}
}

func (v *VarDecl) node()   {}
func (v *VarDecl) isItem() {}
func (v *VarDecl) isStmt() {}

func (v *VarDecl) Span() Span {
	return v.span
}
