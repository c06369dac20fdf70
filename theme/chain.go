package theme

import (
	"strings"

	"themedstyler/ordered"
	"themedstyler/style"
)

// Resolved is effective theme content: selectors, variables and breakpoints
// merged along the inheritance chain. It is derived from State and never
// stored.
type Resolved struct {
	Chain       []string
	Selectors   *Selectors
	Variables   *ordered.Map[string]
	Breakpoints *ordered.Map[string]
}

// Chain lists theme names from the active theme up through its ancestors.
// The walk stops silently on the first repeated name or missing parent and
// the default theme is always appended once. Default is DefaultTheme when
// it exists, otherwise the first theme. Without themes chain is empty.
func (s *State) Chain() []string {
	chain, _ := s.walk()
	return chain
}

// Cyclic reports whether the inheritance walk was cut short by a name
// already visited.
func (s *State) Cyclic() bool {
	_, cyclic := s.walk()
	return cyclic
}

func (s *State) walk() (chain []string, cyclic bool) {
	if s.Themes.Len() == 0 {
		return nil, false
	}
	def := s.DefaultTheme
	if !s.Themes.Has(def) {
		def = s.Themes.Keys()[0]
	}
	name := s.CurrentTheme
	if !s.Themes.Has(name) {
		name = def
	}

	seen := make(map[string]bool)
	for {
		if seen[name] {
			cyclic = true
			break
		}
		seen[name] = true
		chain = append(chain, name)
		e, _ := s.Themes.Get(name)
		if e == nil || e.Inherits == "" {
			break
		}
		name = e.Inherits
	}
	if !seen[def] {
		chain = append(chain, def)
	}
	return chain, cyclic
}

// Resolve merges chain ancestor first so descendants overwrite (never
// remove) inherited properties. Grouped selectors are split and every part
// merged on its own.
func (s *State) Resolve() *Resolved {
	r := &Resolved{
		Chain:       s.Chain(),
		Selectors:   ordered.NewMap[*style.Props](),
		Variables:   ordered.NewMap[string](),
		Breakpoints: ordered.NewMap[string](),
	}
	for i := len(r.Chain) - 1; i >= 0; i-- {
		e, ok := s.Themes.Get(r.Chain[i])
		if !ok || e == nil {
			continue
		}
		for sel, props := range e.Selectors.All() {
			if !strings.Contains(sel, ",") {
				r.merge(sel, props)
				continue
			}
			for part := range strings.SplitSeq(sel, ",") {
				if part = strings.TrimSpace(part); part != "" {
					r.merge(part, props)
				}
			}
		}
		r.Variables.Merge(e.Variables)
		r.Breakpoints.Merge(e.Breakpoints)
	}
	return r
}

func (r *Resolved) merge(sel string, props *style.Props) {
	dst, ok := r.Selectors.Get(sel)
	if !ok {
		dst = style.NewProps()
		r.Selectors.Set(sel, dst)
	}
	dst.Merge(props)
}

// Rule returns effective properties of a selector.
func (r *Resolved) Rule(sel string) (*style.Props, bool) {
	return r.Selectors.Get(sel)
}
