package sema

import (
	"slices"
	"strings"

	"github.com/gluax-lang/dpp/frontend/ast"
)

// SymbolTable maps every declared name of a program to its type. It is flat:
// a later declaration of the same name replaces the earlier one, whatever
// block it appears in.
type SymbolTable struct {
	symbols map[string]*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

// BuildSymbolTable records every function and every `let` in prog, including
// the ones inside function bodies. Parameters are not recorded.
func BuildSymbolTable(prog *ast.Program) *SymbolTable {
	st := NewSymbolTable()
	if prog == nil {
		return st
	}
	for _, item := range prog.Items {
		switch item := item.(type) {
		case *ast.FunctionDecl:
			st.Insert(funcSymbol(item))
			st.collectBlock(item.Body)
		case *ast.VarDecl:
			st.Insert(varSymbol(item, SymVariable))
		}
	}
	return st
}

func (st *SymbolTable) collectBlock(block *ast.Block) {
	if block == nil {
		return
	}
	for _, stmt := range block.Stmts {
		if let, ok := stmt.(*ast.VarDecl); ok {
			st.Insert(varSymbol(let, SymVariable))
		}
	}
}

// Signature renders the type of a function, e.g. `fn(bool, int) -> int`.
func Signature(f *ast.FunctionDecl) string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = ast.TypeName(p.Type)
	}
	ret := ast.TypeName(f.ReturnType)
	if ret == "" {
		ret = "void"
	}
	return "fn(" + strings.Join(params, ", ") + ") -> " + ret
}

func (st *SymbolTable) Insert(sym *Symbol) {
	st.symbols[sym.Name] = sym
}

// Lookup returns the type recorded for name.
func (st *SymbolTable) Lookup(name string) (string, bool) {
	sym, ok := st.symbols[name]
	if !ok {
		return "", false
	}
	return sym.Type, true
}

func (st *SymbolTable) Symbol(name string) *Symbol {
	return st.symbols[name]
}

func (st *SymbolTable) Has(name string) bool {
	_, ok := st.symbols[name]
	return ok
}

func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// Names returns the declared names in sorted order.
func (st *SymbolTable) Names() []string {
	names := make([]string, 0, len(st.symbols))
	for name := range st.symbols {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Map returns a name to type copy of the table.
func (st *SymbolTable) Map() map[string]string {
	out := make(map[string]string, len(st.symbols))
	for name, sym := range st.symbols {
		out[name] = sym.Type
	}
	return out
}

// String renders one `name: type` line per symbol, sorted by name.
func (st *SymbolTable) String() string {
	var sb strings.Builder
	for _, name := range st.Names() {
		sb.WriteString(st.symbols[name].String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
