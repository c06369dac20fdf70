// Package units converts dimension values to integer device pixels.
//
// Both "px" and "dp" suffixes are density independent here: there is no
// unscaled pixel unit.
package units

import (
	"math"
	"strings"

	"themedstyler/style"
)

// Metrics are display scalars, zero fields are treated as 1.
type Metrics struct {
	Density       float64
	ScaledDensity float64
}

func (m Metrics) density() float64 {
	if m.Density == 0 {
		return 1
	}
	return m.Density
}

func (m Metrics) scaled() float64 {
	if m.ScaledDensity == 0 {
		return 1
	}
	return m.ScaledDensity
}

// DPToPx rounds half away from zero.
func DPToPx(dp, density float64) int {
	return int(math.Round(dp * density))
}

// ParseLength returns numeric part of a bare number, "Npx" or "Ndp". NaN
// and infinities are not lengths.
func ParseLength(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if n, ok := strings.CutSuffix(s, "px"); ok {
		s = n
	} else if n, ok := strings.CutSuffix(s, "dp"); ok {
		s = n
	}
	return style.ParseNumber(strings.TrimSpace(s))
}

// px converts to device pixels, false when result does not fit an int.
func (m Metrics) px(dp float64) (int, bool) {
	if f := math.Round(dp * m.density()); math.IsNaN(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return DPToPx(dp, m.density()), true
}

// ToPx converts a dimension value to device pixels. Keywords, percentages
// and non scalar values are reported as not convertible.
func (m Metrics) ToPx(v style.Value) (int, bool) {
	switch v.Kind() {
	case style.KindNumber:
		n, _ := v.AsNumber()
		return m.px(n)
	case style.KindString:
		s, _ := v.AsString()
		n, ok := ParseLength(s)
		if !ok {
			return 0, false
		}
		return m.px(n)
	}
	return 0, false
}

// Convert returns converted value or the original one when it is not a
// dimension.
func (m Metrics) Convert(v style.Value) style.Value {
	if px, ok := m.ToPx(v); ok {
		return style.Int(px)
	}
	return v
}

// FontSize converts to device pixels, divides back by display density and
// applies the accessibility scale. The result is not rounded.
func (m Metrics) FontSize(v style.Value) (float64, bool) {
	px, ok := m.ToPx(v)
	if !ok {
		return 0, false
	}
	return float64(px) / m.density() * m.scaled(), true
}
