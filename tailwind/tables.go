package tailwind

// Exact token tables. Each entry is a list of name, value pairs in output
// order.
type pairs []string

var displayTokens = map[string]pairs{
	"block":        {"display", "block"},
	"inline-block": {"display", "inline-block"},
	"inline":       {"display", "inline"},
	"inline-flex":  {"display", "inline-flex"},
	"grid":         {"display", "grid"},
	"hidden":       {"display", "none"},
}

// "flex-1" is numeric and handled separately.
var flexTokens = map[string]pairs{
	"flex":              {"display", "flex"},
	"flex-row":          {"display", "flex", "flexDirection", "row"},
	"flex-col":          {"display", "flex", "flexDirection", "column"},
	"flex-wrap":         {"display", "flex", "flex-wrap", "wrap"},
	"flex-nowrap":       {"display", "flex", "flex-wrap", "nowrap"},
	"flex-wrap-reverse": {"display", "flex", "flex-wrap", "wrap-reverse"},
	"w-full":            {"width", "match_parent"},
	"h-full":            {"height", "match_parent"},
}

var alignItems = map[string]string{
	"start": "flex-start",
	"end":   "flex-end",
}

var justifyContent = map[string]string{
	"start":   "flex-start",
	"end":     "flex-end",
	"between": "space-between",
	"around":  "space-around",
	"evenly":  "space-evenly",
}

var typographyTokens = map[string]pairs{
	"font-thin":       {"font-weight", "100"},
	"font-extralight": {"font-weight", "200"},
	"font-light":      {"font-weight", "300"},
	"font-normal":     {"font-weight", "400"},
	"font-medium":     {"font-weight", "500"},
	"font-semibold":   {"font-weight", "600"},
	"font-bold":       {"font-weight", "700"},
	"font-extrabold":  {"font-weight", "800"},
	"font-black":      {"font-weight", "900"},

	"font-sans":  {"font-family", "system-ui, -apple-system, sans-serif"},
	"font-serif": {"font-family", "Georgia, serif"},
	"font-mono":  {"font-family", "ui-monospace, monospace"},

	"text-xs":   {"font-size", "12px", "line-height", "16px"},
	"text-sm":   {"font-size", "14px", "line-height", "20px"},
	"text-base": {"font-size", "16px", "line-height", "24px"},
	"text-lg":   {"font-size", "18px", "line-height", "28px"},
	"text-xl":   {"font-size", "20px", "line-height", "28px"},
	"text-2xl":  {"font-size", "24px", "line-height", "32px"},
	"text-3xl":  {"font-size", "30px", "line-height", "36px"},
	"text-4xl":  {"font-size", "36px", "line-height", "40px"},
	"text-5xl":  {"font-size", "48px", "line-height", "1"},
	"text-6xl":  {"font-size", "60px", "line-height", "1"},

	"text-left":    {"text-align", "left"},
	"text-center":  {"text-align", "center"},
	"text-right":   {"text-align", "right"},
	"text-justify": {"text-align", "justify"},
}

var overflowTokens = map[string]pairs{
	"overflow-auto":     {"overflow", "auto"},
	"overflow-hidden":   {"overflow", "hidden"},
	"overflow-visible":  {"overflow", "visible"},
	"overflow-scroll":   {"overflow", "scroll"},
	"overflow-x-auto":   {"overflow-x", "auto"},
	"overflow-x-hidden": {"overflow-x", "hidden"},
	"overflow-x-scroll": {"overflow-x", "scroll"},
	"overflow-y-auto":   {"overflow-y", "auto"},
	"overflow-y-hidden": {"overflow-y", "hidden"},
	"overflow-y-scroll": {"overflow-y", "scroll"},
}

var shadowTokens = map[string]pairs{
	"shadow-sm":   {"box-shadow", "0 1px 2px 0 rgba(0, 0, 0, 0.05)"},
	"shadow":      {"box-shadow", "0 1px 3px 0 rgba(0, 0, 0, 0.1), 0 1px 2px -1px rgba(0, 0, 0, 0.1)"},
	"shadow-md":   {"box-shadow", "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -2px rgba(0, 0, 0, 0.1)"},
	"shadow-lg":   {"box-shadow", "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -4px rgba(0, 0, 0, 0.1)"},
	"shadow-xl":   {"box-shadow", "0 20px 25px -5px rgba(0, 0, 0, 0.1), 0 8px 10px -6px rgba(0, 0, 0, 0.1)"},
	"shadow-2xl":  {"box-shadow", "0 25px 50px -12px rgba(0, 0, 0, 0.25)"},
	"shadow-none": {"box-shadow", "none"},
}

// prefix of "prefix-[value]" to property
var arbitraryProps = map[string]string{
	"bg":     "background-color",
	"text":   "color",
	"border": "border-color",
	"divide": "border-color",
}

var bgKeywords = map[string]string{
	"white":       "#ffffff",
	"black":       "#000000",
	"transparent": "#00000000",
}

var radii = map[string]int{
	"none": 0,
	"sm":   2,
	"md":   4,
	"lg":   8,
	"xl":   12,
	"2xl":  16,
	"3xl":  24,
	"full": 9999,
}

var transitionProperties = map[string]string{
	"colors":    "color, background-color, border-color, fill, stroke",
	"opacity":   "opacity",
	"transform": "transform",
	"shadow":    "box-shadow",
}

// side letter to longhand border width properties
var borderWidthSides = map[string][]string{
	"":  {"border-width"},
	"t": {"border-top-width"},
	"b": {"border-bottom-width"},
	"l": {"border-left-width"},
	"r": {"border-right-width"},
	"x": {"border-left-width", "border-right-width"},
	"y": {"border-top-width", "border-bottom-width"},
}

// side letter to rounded corner properties
var radiusSides = map[string][]string{
	"":  {"border-radius"},
	"t": {"border-top-left-radius", "border-top-right-radius"},
	"b": {"border-bottom-left-radius", "border-bottom-right-radius"},
	"l": {"border-top-left-radius", "border-bottom-left-radius"},
	"r": {"border-top-right-radius", "border-bottom-right-radius"},
}

// sizing prefixes in match order
var sizingPrefixes = []struct{ prefix, prop string }{
	{"w-", "width"},
	{"min-w-", "min-width"},
	{"max-w-", "max-width"},
	{"h-", "height"},
	{"min-h-", "min-height"},
	{"max-h-", "max-height"},
}
