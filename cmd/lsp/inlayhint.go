package lsp

import (
	"github.com/gluax-lang/dpp/frontend/ast"
	protocol "github.com/gluax-lang/lsp"
)

func (h *Handler) InlayHint(p *protocol.InlayHintParams) ([]protocol.InlayHint, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := h.results[p.TextDocument.URI]
	if res == nil || res.Program == nil {
		return nil, nil
	}
	return paramHints(res.Program), nil
}

// paramHints labels call arguments with the parameter they bind to. Arguments
// that already are a name equal to the parameter get no hint.
func paramHints(prog *ast.Program) []protocol.InlayHint {
	funcs := make(map[string]*ast.FunctionDecl)
	for _, it := range prog.Items {
		if fn, ok := it.(*ast.FunctionDecl); ok {
			funcs[fn.Name] = fn
		}
	}

	kind := protocol.InlayHintKindParam
	hints := []protocol.InlayHint{}
	ast.Inspect(prog, func(n ast.Node) bool {
		call, ok := n.(*ast.Call)
		if !ok {
			return true
		}
		fn := funcs[call.Callee.Name]
		if fn == nil || len(fn.Params) != len(call.Args) {
			return true
		}
		for i, arg := range call.Args {
			name := fn.Params[i].Name
			if id, ok := arg.(*ast.Ident); ok && id.Name == name {
				continue
			}
			span := arg.Span()
			hints = append(hints, protocol.InlayHint{
				Position: protocol.Position{
					Line:      span.LineStart - 1,
					Character: span.ColumnStart - 1,
				},
				Label: []protocol.InlayHintLabelPart{
					{Value: name + ": "},
				},
				Kind: &kind,
			})
		}
		return true
	})
	return hints
}
