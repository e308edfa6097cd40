package lsp

import (
	"cmp"
	"slices"

	"github.com/gluax-lang/dpp/frontend/lexer"
	"github.com/gluax-lang/dpp/frontend/sema"
	protocol "github.com/gluax-lang/lsp"
)

func (h *Handler) Complete(p *protocol.CompletionParams) (*protocol.CompletionList, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// names in scope first, then whatever else the program declares, then
	// the reserved words
	seen := make(map[string]struct{})
	list := []protocol.CompletionItem{}
	add := func(item protocol.CompletionItem) {
		if _, ok := seen[item.Label]; ok {
			return
		}
		seen[item.Label] = struct{}{}
		list = append(list, item)
	}

	if res := h.results[p.TextDocument.URI]; res != nil && res.Analysis != nil {
		visible := res.Analysis.FindScopeByPosition(p.Position).Visible()
		slices.SortFunc(visible, func(a, b *sema.Symbol) int {
			return cmp.Compare(a.Name, b.Name)
		})
		for _, sym := range visible {
			add(symbolItem(sym))
		}
		for _, name := range res.Analysis.Table.Names() {
			add(symbolItem(res.Analysis.Table.Symbol(name)))
		}
	}

	keywords := append(lexer.Keywords(), h.options.Keywords...)
	slices.Sort(keywords)
	for _, kw := range keywords {
		add(keywordItem(kw))
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        list,
	}, nil
}

func symbolItem(sym *sema.Symbol) protocol.CompletionItem {
	kind := protocol.CompletionItemKindVariable
	if sym.Kind == sema.SymFunction {
		kind = protocol.CompletionItemKindFunction
	}
	detail := SymToCode(sym)
	return protocol.CompletionItem{
		Label:  sym.Name,
		Kind:   &kind,
		Detail: &detail,
	}
}

func keywordItem(kw string) protocol.CompletionItem {
	kind := protocol.CompletionItemKindKeyword
	return protocol.CompletionItem{
		Label: kw,
		Kind:  &kind,
	}
}
