// Package web renders effective theme rules and observed utility classes
// as CSS text.
package web

import (
	"strings"

	"go.uber.org/zap"

	"themedstyler/css"
	"themedstyler/ordered"
	"themedstyler/style"
	"themedstyler/tailwind"
	"themedstyler/theme"
)

// Rule is a selector with its properties. Selector of the form
// "@media (...) {inner}" is put into a shared media block on output.
type Rule struct {
	Selector   string
	Properties *style.Props
}

type Projector struct {
	log *zap.Logger
}

func NewProjector(log *zap.Logger) *Projector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Projector{log: log.Named("web")}
}

// Rules collects what goes into the stylesheet: every observed theme
// selector, then for each observed class its exact theme selector, utility
// expansion or theme rule keyed by the bare class name (first hit).
func (p *Projector) Rules(r *theme.Resolved, u *theme.Usage) []Rule {
	var rules []Rule
	for sel, props := range r.Selectors.All() {
		if u.Observed(sel) {
			rules = append(rules, Rule{Selector: sel, Properties: props})
		}
	}

	var unknown []string
	for class := range u.Classes.All() {
		ref := theme.ParseClass(class)
		sel := WrapMedia(ref.Selector(), ref.Breakpoint, r.Breakpoints)
		if props, ok := r.Rule(ref.Selector()); ok {
			rules = append(rules, Rule{Selector: sel, Properties: props})
			continue
		}
		if props := tailwind.Expand(ref.Base, r.Variables); props != nil {
			rules = append(rules, Rule{Selector: sel, Properties: props})
			continue
		}
		if props, ok := r.Rule(ref.Base); ok {
			rules = append(rules, Rule{Selector: sel, Properties: props})
			continue
		}
		unknown = append(unknown, class)
	}
	if len(unknown) > 0 {
		p.log.Debug("Classes contribute nothing", zap.Strings("classes", unknown))
	}
	return rules
}

// Stylesheet renders CSS for observed usage of the active theme.
func (p *Projector) Stylesheet(s *theme.State) string {
	r := s.Resolve()
	if s.Cyclic() {
		p.log.Debug("Theme inheritance cycle truncated", zap.Strings("chain", r.Chain))
	}
	rules := p.Rules(r, s.Usage())
	p.log.Debug("Stylesheet", zap.Strings("chain", r.Chain), zap.Int("rules", len(rules)))
	return PostProcess(rules, r.Variables)
}

// WrapMedia puts selector into min-width media query of a known
// breakpoint, otherwise returns it as is.
func WrapMedia(selector, breakpoint string, bps *ordered.Map[string]) string {
	if breakpoint == "" {
		return selector
	}
	if v, ok := bps.Get(breakpoint); ok {
		return "@media (min-width: " + v + ") {" + selector + "}"
	}
	return selector
}

func splitMedia(sel string) (media, inner string, ok bool) {
	head, tail, found := strings.Cut(sel, "{")
	if !found || !strings.HasPrefix(strings.TrimLeft(head, " \t\r\n"), "@media ") || !strings.HasSuffix(tail, "}") {
		return "", "", false
	}
	return strings.TrimSpace(head), strings.TrimRight(tail, "}"), true
}

// PostProcess writes plain rules first, one per line, followed by one block
// per distinct media query holding its rules in order of appearance.
func PostProcess(rules []Rule, vars css.Vars) string {
	var (
		sb     strings.Builder
		plain  []Rule
		groups = ordered.NewMap[[]Rule]()
	)
	for _, r := range rules {
		if media, inner, ok := splitMedia(r.Selector); ok {
			g, _ := groups.Get(media)
			groups.Set(media, append(g, Rule{Selector: inner, Properties: r.Properties}))
			continue
		}
		plain = append(plain, r)
	}
	for _, r := range plain {
		sb.WriteString(r.Selector)
		sb.WriteByte('{')
		sb.WriteString(Declarations(r.Properties, vars))
		sb.WriteString("}\n")
	}
	for media, group := range groups.All() {
		sb.WriteString(media)
		sb.WriteByte('{')
		for _, r := range group {
			sb.WriteString(r.Selector)
			sb.WriteByte('{')
			sb.WriteString(Declarations(r.Properties, vars))
			sb.WriteByte('}')
		}
		sb.WriteString("}\n")
	}
	return sb.String()
}

// Declarations renders "name:value;" pairs with hyphenated names. String
// values have variables substituted, colors pass through unchanged: keywords,
// currentColor and color-mix are left to the browser.
func Declarations(props *style.Props, vars css.Vars) string {
	var sb strings.Builder
	for name, v := range props.All() {
		sb.WriteString(style.KebabCase(name))
		sb.WriteByte(':')
		val := v.Text()
		if s, ok := v.AsString(); ok {
			val = css.ResolveVars(s, vars)
		}
		sb.WriteString(val)
		if !strings.HasSuffix(val, ";") {
			sb.WriteByte(';')
		}
	}
	return sb.String()
}

// ElementCSS returns inline style text for one element: theme tag rule and
// classes merged by the usual priority, no platform defaults. Names keep
// their theme spelling.
func (p *Projector) ElementCSS(s *theme.State, tag string, classes []string) string {
	r := s.Resolve()
	props := style.NewProps()
	r.Match(props, tag, classes)

	var sb strings.Builder
	for name, v := range props.All() {
		val := v.Text()
		if str, ok := v.AsString(); ok {
			val = css.ResolveVars(str, r.Variables)
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(val)
		sb.WriteString("; ")
	}
	return strings.TrimRight(sb.String(), " ")
}
