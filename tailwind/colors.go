package tailwind

import (
	"strings"

	"themedstyler/css"
)

// PaletteColor looks up "name-shade" in the bundled palette.
func PaletteColor(colorShade string) (string, bool) {
	name, shade, ok := strings.Cut(colorShade, "-")
	if !ok || strings.Contains(shade, "-") {
		return "", false
	}
	hex, ok := palette[name][shade]
	return hex, ok
}

// Color resolves a color token: the palette first, then theme variables
// as "rest", "colors.rest", "color.rest", and finally the same three forms
// for the color name alone (text before the first dash).
func Color(rest string, vars css.Vars) (string, bool) {
	if hex, ok := PaletteColor(rest); ok {
		return hex, true
	}
	if v, ok := lookupColorVar(rest, vars); ok {
		return v, true
	}
	name, _, _ := strings.Cut(rest, "-")
	return lookupColorVar(name, vars)
}

func lookupColorVar(name string, vars css.Vars) (string, bool) {
	if vars == nil || name == "" {
		return "", false
	}
	for _, key := range []string{name, "colors." + name, "color." + name} {
		if v, ok := vars.Get(key); ok {
			return v, true
		}
	}
	return "", false
}

// Swatch is a single palette entry.
type Swatch struct {
	Name string
	Hex  string
}

// Palette returns all palette entries of a family in shade order, or every
// family when name is empty.
func Palette(name string) []Swatch {
	var out []Swatch
	for _, family := range families {
		if name != "" && family != name {
			continue
		}
		for _, shade := range shades {
			if hex, ok := palette[family][shade]; ok {
				out = append(out, Swatch{Name: family + "-" + shade, Hex: hex})
			}
		}
	}
	return out
}
