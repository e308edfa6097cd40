package sema

import (
	"github.com/gluax-lang/lsp"
)

func (a *Analysis) FindScopeByPosition(pos lsp.Position) *Scope {
	found := a.findMostSpecificScopeInHierarchy(a.Scope, pos)
	if found == nil {
		return a.Scope
	}
	return found
}

func (a *Analysis) findMostSpecificScopeInHierarchy(scope *Scope, pos lsp.Position) *Scope {
	var mostSpecific *Scope

	if scopeContainsPosition(scope, pos) {
		mostSpecific = scope
	}

	for _, child := range scope.Children {
		childResult := a.findMostSpecificScopeInHierarchy(child, pos)
		if childResult != nil {
			mostSpecific = childResult
		}
	}

	return mostSpecific
}

func scopeContainsPosition(scope *Scope, pos lsp.Position) bool {
	if scope.Span == nil {
		return false
	}
	return scope.Span.Contains(pos)
}

// SymbolAt returns the symbol a resolved name at pos refers to.
func (a *Analysis) SymbolAt(pos lsp.Position) (*Symbol, Span, bool) {
	for _, ref := range a.Refs {
		if ref.Span.Contains(pos) {
			return ref.Symbol, ref.Span, true
		}
	}
	return nil, Span{}, false
}
