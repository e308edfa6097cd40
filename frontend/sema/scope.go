package sema

// Scope is one lexical level of the checker: the program, a function's
// parameters, or a block.
type Scope struct {
	Parent   *Scope
	Children []*Scope
	Symbols  map[string]*Symbol
	Span     *Span
}

func NewScope(parent *Scope) *Scope {
	return &Scope{
		Parent:  parent,
		Symbols: make(map[string]*Symbol),
	}
}

func (s *Scope) walkScopes(fn func(*Scope) bool) bool {
	current := s
	for current != nil {
		if fn(current) {
			return true
		}
		current = current.Parent
	}
	return false
}

func (s *Scope) Child(span Span) *Scope {
	child := NewScope(s)
	child.Span = &span
	s.Children = append(s.Children, child)
	return child
}

// AddSymbol declares sym in s, shadowing any outer declaration.
func (s *Scope) AddSymbol(sym *Symbol) {
	s.Symbols[sym.Name] = sym
}

func (s *Scope) GetSymbol(name string) *Symbol {
	var result *Symbol
	s.walkScopes(func(scope *Scope) bool {
		if sym, ok := scope.Symbols[name]; ok {
			result = sym
			return true
		}
		return false
	})
	return result
}

// Visible returns every symbol reachable from s, inner declarations first.
func (s *Scope) Visible() []*Symbol {
	seen := make(map[string]struct{})
	var out []*Symbol
	s.walkScopes(func(scope *Scope) bool {
		for name, sym := range scope.Symbols {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, sym)
		}
		return false
	})
	return out
}
