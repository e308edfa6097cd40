package lsp

import (
	"strings"

	"github.com/gluax-lang/dpp/frontend/sema"
	protocol "github.com/gluax-lang/lsp"
)

// SymToCode renders a symbol the way it is declared.
func SymToCode(sym *sema.Symbol) string {
	if sym == nil {
		return ""
	}
	switch sym.Kind {
	case sema.SymFunction:
		return "fn " + sym.Name + strings.TrimPrefix(sym.Type, "fn")
	case sema.SymParam:
		return sym.Name + ": " + sym.Type
	default:
		return "let " + sym.Name + ": " + sym.Type
	}
}

// findSymAtPos looks the position up in the last compilation of uri that got
// through the checker. The span is the name under the cursor.
func (h *Handler) findSymAtPos(uri string, pos protocol.Position) (*sema.Symbol, sema.Span) {
	res := h.results[uri]
	if res == nil || res.Analysis == nil {
		return nil, sema.Span{}
	}
	sym, span, ok := res.Analysis.SymbolAt(pos)
	if !ok {
		return nil, sema.Span{}
	}
	return sym, span
}
