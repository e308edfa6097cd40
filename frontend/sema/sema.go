// Package sema builds the symbol table of a program and checks that every
// name it uses is declared.
package sema

import (
	"github.com/gluax-lang/dpp/common"
	"github.com/gluax-lang/dpp/frontend/ast"
)

type Span = common.Span

type SymbolKind uint8

const (
	SymVariable SymbolKind = iota
	SymFunction
	SymParam
)

func (k SymbolKind) String() string {
	switch k {
	case SymFunction:
		return "function"
	case SymParam:
		return "parameter"
	default:
		return "variable"
	}
}

// Symbol is a declared name together with its rendered type.
type Symbol struct {
	Name string
	Type string // "int", or "fn(bool) -> int" for functions
	Kind SymbolKind
	Span Span // span of the declaring name
}

func (s *Symbol) String() string {
	return s.Name + ": " + s.Type
}

func varSymbol(v *ast.VarDecl, kind SymbolKind) *Symbol {
	return &Symbol{Name: v.Name, Type: ast.TypeName(v.Type), Kind: kind, Span: v.NameSpan}
}

func funcSymbol(f *ast.FunctionDecl) *Symbol {
	return &Symbol{Name: f.Name, Type: Signature(f), Kind: SymFunction, Span: f.NameSpan}
}
