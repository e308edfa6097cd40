package lsp

import (
	"fmt"

	protocol "github.com/gluax-lang/lsp"
)

func (h *Handler) Hover(p *protocol.HoverParams) (*protocol.Hover, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sym, span := h.findSymAtPos(p.TextDocument.URI, p.Position)
	code := SymToCode(sym)
	if code == "" {
		return nil, nil
	}

	content := fmt.Sprintf("```dpp\n%s\n```\ndeclared at %d:%d\n", code, sym.Span.LineStart, sym.Span.ColumnStart)
	rng := span.ToRange()

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  "markdown",
			Value: content,
		},
		Range: &rng,
	}, nil
}
