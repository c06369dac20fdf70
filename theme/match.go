package theme

import (
	"strings"

	"themedstyler/ordered"
	"themedstyler/style"
	"themedstyler/tailwind"
)

// ClassRef is a class token split into its variant prefixes and base.
type ClassRef struct {
	Breakpoint string
	Hover      bool
	Base       string
}

var breakpointNames = map[string]bool{"xs": true, "sm": true, "md": true, "lg": true, "xl": true}

// ParseClass splits colon prefixed class ("md:hover:bg-red-500"). Base is
// the last segment. Unknown prefixes are ignored, the last breakpoint wins.
func ParseClass(class string) ClassRef {
	parts := strings.Split(class, ":")
	ref := ClassRef{Base: parts[len(parts)-1]}
	for _, p := range parts[:len(parts)-1] {
		switch {
		case p == "hover":
			ref.Hover = true
		case breakpointNames[p]:
			ref.Breakpoint = p
		}
	}
	return ref
}

// Selector returns ".base" or ".base:hover".
func (c ClassRef) Selector() string {
	sel := "." + strings.ReplaceAll(c.Base, ":", `\:`)
	if c.Hover {
		sel += ":hover"
	}
	return sel
}

// Usage is observed usage with tag and class pairs folded into tags and
// classes.
type Usage struct {
	Tags       *ordered.Set
	Classes    *ordered.Set
	TagClasses *ordered.Set
}

// Usage computes closure of the observed sets.
func (s *State) Usage() *Usage {
	u := &Usage{
		Tags:       s.UsedTags.Clone(),
		Classes:    s.UsedClasses.Clone(),
		TagClasses: s.UsedTagClasses.Clone(),
	}
	for key := range s.UsedTagClasses.All() {
		if tag, class, ok := SplitTagClassKey(key); ok {
			u.Tags.Add(tag)
			u.Classes.Add(class)
		}
	}
	return u
}

func isSimpleTag(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '-' || c == '_'):
		default:
			return false
		}
	}
	return true
}

// Observed decides whether a theme selector belongs to the stylesheet.
// Supported forms are "tag", ".class" and "tag.class", each optionally with
// ":hover" suffix. Anything more complex is never emitted.
func (u *Usage) Observed(sel string) bool {
	base := strings.TrimSuffix(sel, ":hover")

	if isSimpleTag(base) {
		if u.Tags.Has(base) {
			return true
		}
		for key := range u.TagClasses.All() {
			if tag, _, _ := strings.Cut(key, "|"); tag == base {
				return true
			}
		}
		return false
	}

	if class, ok := strings.CutPrefix(base, "."); ok {
		if u.Classes.Has(class) {
			return true
		}
		for key := range u.TagClasses.All() {
			if strings.HasSuffix(key, "|"+class) {
				return true
			}
		}
		return false
	}

	if tag, class, ok := strings.Cut(base, "."); ok && tag != "" && class != "" {
		return u.TagClasses.Has(TagClassKey(tag, class)) || (u.Tags.Has(tag) && u.Classes.Has(class))
	}
	return false
}

// ClassProps resolves base properties of one class token: theme rule for
// the class selector, then utility expansion, then theme rule keyed by the
// bare class name. Leading '.' and variant prefixes (hover included) are
// ignored.
func (r *Resolved) ClassProps(class string) (*style.Props, bool) {
	ref := ParseClass(strings.TrimPrefix(class, "."))
	if props, ok := r.Selectors.Get(ClassRef{Base: ref.Base}.Selector()); ok {
		return props, true
	}
	if props := tailwind.Expand(ref.Base, r.Variables); props != nil {
		return props, true
	}
	return r.Selectors.Get(ref.Base)
}

// Match merges properties applying to an element into dst in priority
// order: theme rule for the tag, then every class in list order.
func (r *Resolved) Match(dst *style.Props, tag string, classes []string) {
	if props, ok := r.Selectors.Get(tag); ok {
		dst.Merge(props)
	}
	for _, class := range classes {
		if props, ok := r.ClassProps(class); ok {
			dst.Merge(props)
		}
	}
}
