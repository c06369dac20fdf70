package css

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"themedstyler/style"
)

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	colorful.Color
	A float64
}

var opaqueBlack = Color{A: 1}

var keywordColors = map[string]string{
	"transparent": "#00000000",
	"black":       "#000000",
	"white":       "#ffffff",
	"gray":        "#808080",
	"grey":        "#808080",
	"red":         "#ff0000",
	"green":       "#00ff00",
	"blue":        "#0000ff",
}

// ParseHex accepts #rgb, #rgba, #rrggbb and #rrggbbaa (leading '#' optional).
func ParseHex(s string) (Color, error) {
	hex := strings.TrimLeft(s, "#")
	var digits [4]string
	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			digits[i] = strings.Repeat(hex[i:i+1], 2)
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			digits[i/2] = hex[i : i+2]
		}
	default:
		return Color{}, fmt.Errorf("bad hex color %q", s)
	}
	var ch [4]float64
	ch[3] = 1
	for i, d := range digits {
		if d == "" {
			continue
		}
		v, err := strconv.ParseUint(d, 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("bad hex color %q: %w", s, err)
		}
		ch[i] = float64(v) / 255
	}
	return Color{Color: colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, A: ch[3]}, nil
}

func channel(v float64) uint8 {
	// truncating, saturating at both ends; epsilon absorbs v/255*255 drift
	return uint8(max(0, min(255, v*255+1e-9)))
}

// Hex formats color as #rrggbb, or #rrggbbaa when not fully opaque.
// Channels are truncated, not rounded.
func (c Color) Hex() string {
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B), channel(c.A))
}

// Mix interpolates linearly from c towards other, weight clamped to [0, 1].
func (c Color) Mix(other Color, weight float64) Color {
	w := max(0, min(1, weight))
	return Color{
		Color: c.BlendRgb(other.Color, w),
		A:     c.A*(1-w) + other.A*w,
	}
}

// ResolveColor maps keyword colors and color-mix() expressions to hex.
// currentColor resolves to the supplied current color (black when empty).
// Anything else is returned trimmed but otherwise unchanged.
func ResolveColor(value, currentColor string) string {
	value = strings.TrimSpace(value)
	if value == "currentColor" {
		if currentColor == "" {
			return "#000000"
		}
		return currentColor
	}
	if hex, ok := keywordColors[value]; ok {
		return hex
	}
	if strings.HasPrefix(value, "color-mix(") && strings.HasSuffix(value, ")") {
		return resolveColorMix(value, currentColor)
	}
	return value
}

func resolveColorMix(value, currentColor string) string {
	content := value[len("color-mix(") : len(value)-1]
	parts := strings.Split(content, ",")
	if len(parts) < 3 {
		return opaqueBlack.Hex()
	}
	// parts[0] is the interpolation space, only srgb semantics are implemented
	c1s, p1, ok1 := colorAndPercentage(strings.TrimSpace(parts[1]))
	c2s, p2, ok2 := colorAndPercentage(strings.TrimSpace(parts[2]))

	c1, err := ParseHex(ResolveColor(c1s, currentColor))
	if err != nil {
		c1 = opaqueBlack
	}
	c2, err := ParseHex(ResolveColor(c2s, currentColor))
	if err != nil {
		c2 = opaqueBlack
	}

	weight := 0.5
	switch {
	case ok2:
		weight = p2 / 100
	case ok1:
		weight = 1 - p1/100
	}
	return c1.Mix(c2, weight).Hex()
}

// colorAndPercentage splits "color NN%".
func colorAndPercentage(part string) (string, float64, bool) {
	fields := strings.Fields(part)
	if len(fields) == 2 {
		if p, ok := strings.CutSuffix(fields[1], "%"); ok {
			if v, ok := style.ParseNumber(p); ok {
				return fields[0], v, true
			}
		}
	}
	return part, 0, false
}
