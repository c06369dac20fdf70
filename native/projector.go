// Package native projects resolved element styles into flat native property
// maps: shorthands expanded, dimensions in device pixels and flex/box
// semantics translated into gravity, orientation and elevation hints.
package native

import (
	"strings"

	"go.uber.org/zap"

	"themedstyler/css"
	"themedstyler/style"
	"themedstyler/theme"
	"themedstyler/units"
)

// Native property names produced by the projection.
const (
	Orientation      = "androidOrientation"
	Gravity          = "androidGravity"
	LayoutGravity    = "androidLayoutGravity"
	TextGravity      = "androidTextGravity"
	FlexWrap         = "androidFlexWrap"
	Alpha            = "androidAlpha"
	ScrollHorizontal = "androidScrollHorizontal"
	ScrollVertical   = "androidScrollVertical"
	ScaleType        = "androidScaleType"
	TypefaceStyle    = "androidTypefaceStyle"
)

const (
	horizontal = "horizontal"
	vertical   = "vertical"
)

// Projector produces native property maps. It holds no state besides the
// logger and may be shared.
type Projector struct {
	log *zap.Logger
}

func NewProjector(log *zap.Logger) *Projector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Projector{log: log.Named("native")}
}

// StylesFor resolves state and projects one element.
func (p *Projector) StylesFor(s *theme.State, tag string, classes []string) *style.Props {
	return p.Styles(s.Resolve(), s.Metrics(), tag, classes)
}

// Base merges tag defaults, theme tag rule and classes into native naming
// without unit conversion. Orientation is always present and first.
func (p *Projector) Base(r *theme.Resolved, tag string, classes []string) *style.Props {
	lower := strings.ToLower(tag)

	combined := TagDefaults(lower)
	r.Match(combined, tag, classes)
	p.log.Debug("Element properties", zap.String("tag", tag), zap.Strings("classes", classes), zap.Int("count", combined.Len()))

	out := style.NewProps()
	out.Set(Orientation, style.String(vertical))
	merge(out, combined, r.Variables)

	if display, _ := out.Get("display"); display.Text() == "flex" && !out.Has("flexDirection") {
		out.Set("flexDirection", style.String("row"))
		out.Set(Orientation, style.String(horizontal))
	}
	if !out.Has("flexDirection") && blockTags[lower] {
		out.Set("flexDirection", style.String("column"))
		out.Set(Orientation, style.String(vertical))
	}
	return out
}

// nativeValue resolves variables and colors of string values and turns
// "Npx" into a number.
func nativeValue(v style.Value, vars css.Vars, currentColor string) style.Value {
	s, ok := v.AsString()
	if !ok {
		return v
	}
	s = css.Resolve(s, vars, currentColor)
	if n, ok := strings.CutSuffix(s, "px"); ok {
		if f, ok := style.ParseNumber(strings.TrimSpace(n)); ok {
			return style.Number(f)
		}
	}
	return style.String(s)
}

// merge copies props into out renaming to native (camel) names. Shorthands
// are written to every longhand they cover and kept themselves.
func merge(out, props *style.Props, vars css.Vars) {
	var currentColor string
	if c, ok := props.Get("color"); ok && c.IsString() {
		s, _ := c.AsString()
		currentColor = css.ResolveVars(s, vars)
	} else if c, ok := out.Get("color"); ok && c.IsString() {
		currentColor, _ = c.AsString()
	}

	for name, v := range props.All() {
		val := nativeValue(v, vars, currentColor)
		prop := style.ParseProperty(name)
		switch {
		case prop == style.PropertyFlexDirection:
			orientation := horizontal
			if s := val.Text(); s == "column" || s == "column-reverse" {
				orientation = vertical
			}
			out.Set(Orientation, style.String(orientation))
			out.Set(prop.String(), val)
		case prop.Sides() != nil:
			for _, side := range prop.Sides() {
				out.Set(side.String(), val)
			}
			out.Set(prop.String(), val)
		default:
			out.Set(style.CamelCase(name), val)
		}
	}
}

// Styles runs the full projection in phases: base merge, orientation,
// dimensions, font size, semantic translation. Orientation precedes every
// gap key in the result.
func (p *Projector) Styles(r *theme.Resolved, m units.Metrics, tag string, classes []string) *style.Props {
	out := p.Base(r, tag, classes)
	orient(out)
	convertDimensions(out, m)
	for _, phase := range translations {
		phase(out, m)
	}
	var broken []string
	for name, v := range out.All() {
		if !v.IsFinite() {
			broken = append(broken, name)
		}
	}
	for _, name := range broken {
		p.log.Debug("Dropping non finite value", zap.String("tag", tag), zap.String("property", name))
		out.Delete(name)
	}
	p.log.Debug("Native styles", zap.String("tag", tag), zap.Int("count", out.Len()))
	return out
}

func orient(out *style.Props) {
	fd, ok := out.Get("flexDirection")
	if !ok {
		return
	}
	orientation := vertical
	if fd.Text() == "row" {
		orientation = horizontal
	}
	out.InsertAt(0, Orientation, style.String(orientation))
}

func convertDimensions(out *style.Props, m units.Metrics) {
	for name, v := range out.All() {
		if prop := style.ParseProperty(name); prop.IsDimension() && name == prop.String() {
			out.Set(name, m.Convert(v))
		}
	}
	if fs, ok := out.Get("fontSize"); ok {
		if sp, ok := m.FontSize(fs); ok {
			out.Set("fontSize", style.Number(sp))
		}
	}
}

func text(out *style.Props, name string) string {
	v, ok := out.Get(name)
	if !ok {
		return ""
	}
	s, _ := v.AsString()
	return s
}

// Order is significant: later phases may read what earlier ones wrote.
var translations = []func(*style.Props, units.Metrics){
	flexWrap,
	alpha,
	gravity,
	borderShorthand,
	shadowElevation,
	scrolling,
	textGravity,
	scaleType,
	fullSize,
	flexSize,
	typeface,
}

func flexWrap(out *style.Props, _ units.Metrics) {
	if text(out, "flexWrap") == "wrap" {
		out.Set(FlexWrap, style.Bool(true))
	}
}

func alpha(out *style.Props, _ units.Metrics) {
	if v, ok := out.Get("opacity"); ok {
		out.Set(Alpha, v)
	}
}

func gravity(out *style.Props, _ units.Metrics) {
	isHorizontal := text(out, Orientation) == horizontal
	pick := func(h, v string) string {
		if isHorizontal {
			return h
		}
		return v
	}

	var parts []string
	if out.Has("alignItems") {
		switch text(out, "alignItems") {
		case "center":
			parts = append(parts, pick("center_vertical", "center_horizontal"))
		case "flex-start", "start":
			parts = append(parts, pick("top", "start"))
		case "flex-end", "end":
			parts = append(parts, pick("bottom", "end"))
		case "stretch":
			parts = append(parts, pick("fill_vertical", "fill_horizontal"))
		}
	}
	if out.Has("justifyContent") {
		justify := text(out, "justifyContent")
		switch justify {
		case "center":
			parts = append(parts, pick("center_horizontal", "center_vertical"))
		case "flex-start", "start":
			parts = append(parts, pick("start", "top"))
		case "flex-end", "end":
			parts = append(parts, pick("end", "bottom"))
		}

		layout := ""
		switch justify {
		case "center":
			layout = "center_horizontal"
		case "flex-start", "start":
			layout = "start"
		case "flex-end", "end":
			layout = "end"
		case "space-between", "between":
			layout = "space_between"
		case "space-around", "around":
			layout = "space_around"
		}
		if layout != "" {
			out.Set(LayoutGravity, style.String(layout))
		}
	}
	if len(parts) == 0 {
		return
	}

	g := strings.Join(parts, "|")
	hasV, hasH := false, false
	for _, part := range parts {
		hasV = hasV || part == "center_vertical"
		hasH = hasH || part == "center_horizontal"
	}
	if hasV && hasH {
		g = "center"
	}
	out.Set(Gravity, style.String(g))
}

// borderShorthand splits "1px solid #cccccc".
func borderShorthand(out *style.Props, m units.Metrics) {
	border, ok := out.Get("border")
	if !ok || !border.IsString() {
		return
	}
	for _, part := range strings.Fields(border.Text()) {
		switch {
		case strings.HasSuffix(part, "px"):
			if w, ok := style.ParseNumber(strings.TrimSuffix(part, "px")); ok {
				out.Set("borderWidth", m.Convert(style.Number(w)))
			}
		case strings.HasPrefix(part, "#"):
			out.Set("borderColor", style.String(part))
		}
	}
}

// shadowElevation maps box-shadow text to an elevation tier.
func shadowElevation(out *style.Props, m units.Metrics) {
	shadow, ok := out.Get("boxShadow")
	if !ok || !shadow.IsString() || shadow.Text() == "" {
		return
	}
	s := shadow.Text()
	dp := 4.0
	switch {
	case strings.Contains(s, "20px"):
		dp = 24
	case strings.Contains(s, "15px"):
		dp = 16
	case strings.Contains(s, "10px"):
		dp = 8
	}
	out.Set("elevation", m.Convert(style.Number(dp)))
}

func scrolling(out *style.Props, _ units.Metrics) {
	scrollable := func(v string) bool { return v == "auto" || v == "scroll" }
	if scrollable(text(out, "overflowX")) {
		out.Set(ScrollHorizontal, style.Bool(true))
	}
	if scrollable(text(out, "overflowY")) {
		out.Set(ScrollVertical, style.Bool(true))
	}
}

func textGravity(out *style.Props, _ units.Metrics) {
	g := ""
	switch text(out, "textAlign") {
	case "center":
		g = "center_horizontal"
	case "right", "end":
		g = "end"
	case "left", "start":
		g = "start"
	}
	if g != "" {
		out.Set(TextGravity, style.String(g))
	}
}

var scaleTypes = map[string]string{
	"cover":      "center_crop",
	"contain":    "fit_center",
	"fill":       "fit_xy",
	"none":       "center",
	"scale-down": "center_inside",
}

func scaleType(out *style.Props, _ units.Metrics) {
	if st, ok := scaleTypes[text(out, "objectFit")]; ok {
		out.Set(ScaleType, style.String(st))
	}
}

func fullSize(out *style.Props, _ units.Metrics) {
	for _, name := range []string{"height", "width"} {
		if text(out, name) == "100%" {
			out.Set(name, style.String("match_parent"))
		}
	}
}

// flexSize gives flex children a content sized default on both axes; the
// renderer decides about zero main axis size for weighted layouts.
func flexSize(out *style.Props, _ units.Metrics) {
	if !out.Has("flex") && !out.Has("flexGrow") {
		return
	}
	for _, name := range []string{"width", "height"} {
		out.SetMissing(name, style.String("wrap_content"))
	}
}

func typeface(out *style.Props, _ units.Metrics) {
	w, ok := out.Get("fontWeight")
	if !ok {
		return
	}
	bold := false
	switch w.Kind() {
	case style.KindString:
		s := w.Text()
		bold = strings.Contains(s, "bold") || s == "500" || s == "600" || s == "700"
	case style.KindNumber:
		n, _ := w.AsNumber()
		bold = n >= 500
	}
	if bold {
		out.Set(TypefaceStyle, style.String("bold"))
	}
}
