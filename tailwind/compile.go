// Package tailwind compiles single Tailwind style utility class tokens into
// CSS property sets.
package tailwind

import (
	"math"
	"strconv"
	"strings"

	"themedstyler/css"
	"themedstyler/style"
)

// rule inspects a class token. When matched is true no further rules are
// consulted even if props is nil.
type rule func(class string, vars css.Vars) (props *style.Props, matched bool)

// Order is significant: first match wins.
var rules = []rule{
	exact(displayTokens),
	flexbox,
	zIndex,
	alignment,
	spacing,
	exact(typographyTokens),
	exact(overflowTokens),
	opacity,
	exact(shadowTokens),
	arbitrary,
	textColor,
	background,
	divide,
	border,
	rounded,
	cursor,
	transition,
	sizing,
}

// Expand returns properties for a utility class token (without leading '.'
// or variant prefixes) or nil when the token is not recognized. Color
// tokens consult vars after the bundled palette.
func Expand(class string, vars css.Vars) *style.Props {
	for _, r := range rules {
		if props, matched := r(class, vars); matched {
			return props
		}
	}
	return nil
}

func fromPairs(kv pairs) *style.Props {
	p := style.NewProps()
	for i := 0; i+1 < len(kv); i += 2 {
		p.Set(kv[i], style.String(kv[i+1]))
	}
	return p
}

func single(name, value string) *style.Props {
	return fromPairs(pairs{name, value})
}

func each(names []string, value string) *style.Props {
	p := style.NewProps()
	for _, n := range names {
		p.Set(n, style.String(value))
	}
	return p
}

func exact(table map[string]pairs) rule {
	return func(class string, _ css.Vars) (*style.Props, bool) {
		if kv, ok := table[class]; ok {
			return fromPairs(kv), true
		}
		return nil, false
	}
}

func flexbox(class string, _ css.Vars) (*style.Props, bool) {
	if class == "flex-1" {
		return style.PropsOf("flex", 1), true
	}
	if kv, ok := flexTokens[class]; ok {
		return fromPairs(kv), true
	}
	return nil, false
}

func zIndex(class string, _ css.Vars) (*style.Props, bool) {
	if v, ok := strings.CutPrefix(class, "z-"); ok {
		if z, err := strconv.Atoi(v); err == nil {
			return style.PropsOf("elevation", z), true
		}
	}
	return nil, false
}

func alignment(class string, _ css.Vars) (*style.Props, bool) {
	if rest, ok := strings.CutPrefix(class, "items-"); ok {
		if v, ok := alignItems[rest]; ok {
			rest = v
		}
		return single("align-items", rest), true
	}
	if rest, ok := strings.CutPrefix(class, "justify-"); ok {
		if v, ok := justifyContent[rest]; ok {
			rest = v
		}
		return single("justify-content", rest), true
	}
	return nil, false
}

// spacingScale maps scale step n to n*4 pixels.
func spacingScale(value string) (string, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return "", false
	}
	return strconv.Itoa(n*4) + "px", true
}

var spacingPrefixes = []struct {
	prefix    string
	props     []string
	allowAuto bool
}{
	{"p-", []string{"padding"}, false},
	{"px-", []string{"padding-left", "padding-right"}, false},
	{"py-", []string{"padding-top", "padding-bottom"}, false},
	{"pt-", []string{"padding-top"}, false},
	{"pr-", []string{"padding-right"}, false},
	{"pb-", []string{"padding-bottom"}, false},
	{"pl-", []string{"padding-left"}, false},
	{"m-", []string{"margin"}, true},
	{"mx-", []string{"margin-left", "margin-right"}, true},
	{"my-", []string{"margin-top", "margin-bottom"}, true},
	{"mt-", []string{"margin-top"}, true},
	{"mr-", []string{"margin-right"}, true},
	{"mb-", []string{"margin-bottom"}, true},
	{"ml-", []string{"margin-left"}, true},
}

func spacing(class string, _ css.Vars) (*style.Props, bool) {
	for _, sp := range spacingPrefixes {
		v, ok := strings.CutPrefix(class, sp.prefix)
		if !ok {
			continue
		}
		if sp.allowAuto && v == "auto" {
			return each(sp.props, "auto"), true
		}
		if px, ok := spacingScale(v); ok {
			return each(sp.props, px), true
		}
		return nil, true
	}

	if v, ok := strings.CutPrefix(class, "gap-"); ok && !strings.HasPrefix(v, "x-") && !strings.HasPrefix(v, "y-") {
		return scaled("gap", v), true
	}
	for _, g := range []struct{ prefix, prop string }{
		{"gap-x-", "column-gap"},
		{"gap-y-", "row-gap"},
		{"space-x-", "--space-x"},
		{"space-y-", "--space-y"},
	} {
		if v, ok := strings.CutPrefix(class, g.prefix); ok {
			return scaled(g.prop, v), true
		}
	}
	return nil, false
}

func scaled(prop, value string) *style.Props {
	if px, ok := spacingScale(value); ok {
		return single(prop, px)
	}
	return nil
}

func opacity(class string, _ css.Vars) (*style.Props, bool) {
	if v, ok := strings.CutPrefix(class, "opacity-"); ok {
		if f, ok := style.ParseNumber(v); ok {
			return style.PropsOf("opacity", f/100), true
		}
	}
	return nil, false
}

// arbitrary handles "prefix-[value]" passing value through verbatim.
func arbitrary(class string, _ css.Vars) (*style.Props, bool) {
	i := strings.Index(class, "-[")
	if i < 0 || !strings.HasSuffix(class, "]") {
		return nil, false
	}
	prop, ok := arbitraryProps[class[:i]]
	if !ok {
		return nil, false
	}
	return single(prop, class[i+2:len(class)-1]), true
}

func colorRule(prefix, prop string) rule {
	return func(class string, vars css.Vars) (*style.Props, bool) {
		if rest, ok := strings.CutPrefix(class, prefix); ok {
			if hex, ok := Color(rest, vars); ok {
				return single(prop, hex), true
			}
		}
		return nil, false
	}
}

var (
	textColor = colorRule("text-", "color")
	divide    = colorRule("divide-", "border-color")
)

func background(class string, vars css.Vars) (*style.Props, bool) {
	rest, ok := strings.CutPrefix(class, "bg-")
	if !ok {
		return nil, false
	}
	if hex, ok := bgKeywords[rest]; ok {
		return single("background-color", hex), true
	}
	if hex, ok := Color(rest, vars); ok {
		return single("background-color", hex), true
	}
	return nil, false
}

func borderWidth(side string, width int) *style.Props {
	p := each(borderWidthSides[side], strconv.Itoa(width)+"px")
	p.Set("border-color", style.String("var(border)"))
	p.Set("border-style", style.String("solid"))
	return p
}

func border(class string, vars css.Vars) (*style.Props, bool) {
	if class == "border" {
		return borderWidth("", 1), true
	}
	rest, ok := strings.CutPrefix(class, "border-")
	if !ok {
		return nil, false
	}
	parts := strings.Split(rest, "-")
	side := ""
	if len(parts) > 1 {
		if _, ok := borderWidthSides[parts[0]]; ok && parts[0] != "" {
			side, parts = parts[0], parts[1:]
		}
	}
	colorProp := "border-color"
	if side != "" {
		// side letter kept as is ("border-b-color")
		colorProp = "border-" + side + "-color"
	}
	switch len(parts) {
	case 2:
		if hex, ok := Color(parts[0]+"-"+parts[1], vars); ok {
			return single(colorProp, hex), true
		}
	case 1:
		if hex, ok := Color(parts[0]+"-500", vars); ok {
			return single(colorProp, hex), true
		}
		if w, err := strconv.Atoi(parts[0]); err == nil {
			return borderWidth(side, w), true
		}
	}
	return nil, false
}

func radius(side, size string) *style.Props {
	px, ok := radii[size]
	if !ok {
		if n, err := strconv.Atoi(size); err == nil {
			px = n
		} else {
			px = radii["md"]
		}
	}
	return each(radiusSides[side], strconv.Itoa(px)+"px")
}

func rounded(class string, _ css.Vars) (*style.Props, bool) {
	if class == "rounded" {
		return radius("", "md"), true
	}
	for _, side := range []string{"t", "b", "l", "r"} {
		prefix := "rounded-" + side
		if class == prefix {
			return radius(side, "md"), true
		}
		if size, ok := strings.CutPrefix(class, prefix+"-"); ok {
			return radius(side, size), true
		}
	}
	if size, ok := strings.CutPrefix(class, "rounded-"); ok {
		return radius("", size), true
	}
	return nil, false
}

func cursor(class string, _ css.Vars) (*style.Props, bool) {
	if v, ok := strings.CutPrefix(class, "cursor-"); ok {
		return single("cursor", v), true
	}
	return nil, false
}

func transition(class string, _ css.Vars) (*style.Props, bool) {
	switch class {
	case "transition", "transition-all":
		return fromPairs(pairs{"transition-property", "all", "transition-duration", "150ms", "transition-timing-function", "ease-in-out"}), true
	case "transition-none":
		return fromPairs(pairs{"transition-property", "none", "transition-duration", "0ms"}), true
	}
	rest, ok := strings.CutPrefix(class, "transition-")
	if !ok {
		return nil, false
	}
	if v, ok := transitionProperties[rest]; ok {
		rest = v
	}
	return fromPairs(pairs{"transition-property", rest, "transition-duration", "150ms", "transition-timing-function", "ease-in-out"}), true
}

func sizing(class string, _ css.Vars) (*style.Props, bool) {
	for _, s := range sizingPrefixes {
		if v, ok := strings.CutPrefix(class, s.prefix); ok {
			if value, ok := sizeValue(s.prop, v); ok {
				return single(s.prop, value), true
			}
			return nil, true
		}
	}
	return nil, false
}

func sizeValue(prop, token string) (string, bool) {
	switch token {
	case "full":
		return "100%", true
	case "screen":
		if prop == "width" {
			return "100vw", true
		}
		return "100vh", true
	case "min":
		return "min-content", true
	case "max":
		return "max-content", true
	case "fit":
		return "fit-content", true
	case "auto":
		return "auto", true
	case "px":
		return "1px", true
	}
	if a, b, ok := strings.Cut(token, "/"); ok {
		na, okA := style.ParseNumber(a)
		nb, okB := style.ParseNumber(b)
		pct := na / nb * 100
		if !okA || !okB || nb == 0 || math.IsInf(pct, 0) || math.IsNaN(pct) {
			return "", false
		}
		return trimZeros(pct) + "%", true
	}
	return spacingScale(token)
}

// trimZeros formats with six decimals and drops trailing zeros.
func trimZeros(f float64) string {
	s := strconv.FormatFloat(f, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
