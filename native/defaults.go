package native

import "themedstyler/style"

// Built-in platform defaults per tag (lowest priority). Names and values are
// in theme (hyphenated) form and go through the regular merge.
var tagDefaults = map[string][]string{
	"div": {"width", "match_parent"},
	"p": {
		"width", "match_parent",
		"margin-vertical", "16px",
	},
	"h1": heading("32px", "21.44px"),
	"h2": heading("24px", "19.92px"),
	"h3": heading("18.72px", "18.72px"),
	"h4": heading("16px", "21.28px"),
	"h5": heading("13.28px", "22.17px"),
	"h6": heading("10.72px", "24.96px"),
	"input": {
		"padding-vertical", "8px",
		"padding-horizontal", "12px",
		"border-radius", "4px",
		"border-width", "1px",
		"border-color", "#cccccc",
		"background-color", "#ffffff",
		"color", "#000000",
		"placeholder-color", "#88888870",
		"min-height", "40px",
		"android-gravity", "center_vertical",
	},
	"select": {
		"padding-vertical", "8px",
		"padding-horizontal", "12px",
		"border-radius", "4px",
		"border-width", "1px",
		"border-color", "#cccccc",
		"background-color", "#ffffff",
		"color", "#000000",
		"min-height", "40px",
		"android-gravity", "center_vertical",
	},
	"textarea": {
		"padding", "12px",
		"border-radius", "4px",
		"border-width", "1px",
		"border-color", "#cccccc",
		"background-color", "#ffffff",
		"color", "#000000",
		"placeholder-color", "color-mix(in srgb, currentColor 75%, grey)",
		"min-height", "80px",
		"android-gravity", "top",
	},
	"button": {
		"padding-vertical", "8px",
		"padding-horizontal", "16px",
		"border-radius", "4px",
		"background-color", "#2196F3",
		"color", "#ffffff",
		"android-gravity", "center",
	},
}

func heading(fontSize, margin string) []string {
	return []string{
		"width", "match_parent",
		"font-size", fontSize,
		"font-weight", "bold",
		"margin-vertical", margin,
	}
}

// block level tags laid out as a column unless told otherwise
var blockTags = map[string]bool{
	"div": true, "p": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// TagDefaults returns a copy of built-in defaults for a lower-cased tag.
func TagDefaults(tag string) *style.Props {
	p := style.NewProps()
	kv := tagDefaults[tag]
	for i := 0; i+1 < len(kv); i += 2 {
		p.Set(kv[i], style.String(kv[i+1]))
	}
	return p
}
