package tokens

import (
	"fmt"
	"math"
	"strconv"

	"github.com/DEADSERPENT/DESIGN-TOKEN/pkg/figma"
)

// defaultLineHeight is the fallback for line heights without a usable unit
// (Figma's AUTO line height carries no value).
const defaultLineHeight = "1.5"

// RGBToHex converts fractional RGB channels in [0,1] to an uppercase
// #RRGGBB string. Each channel is independently rounded half-up to the
// nearest integer in [0,255]. Callers guarantee in-range input; no
// clamping is performed.
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02X%02X%02X", roundChannel(r), roundChannel(g), roundChannel(b))
}

// RGBAToHex converts fractional RGBA channels to hex. An alpha of exactly 1
// yields the 3-byte #RRGGBB form; any other alpha appends a fourth rounded
// hex byte (#RRGGBBAA).
func RGBAToHex(r, g, b, a float64) string {
	if a == 1 {
		return RGBToHex(r, g, b)
	}
	return fmt.Sprintf("%s%02X", RGBToHex(r, g, b), roundChannel(a))
}

// roundChannel scales a fractional channel to [0,255] with half-up
// rounding: 0.5*255 = 127.5 rounds to 128.
func roundChannel(v float64) int {
	return int(math.Round(v * 255))
}

// fontWeightsByStyleName is the closed lookup table from font style names
// to numeric weights. Multi-word tiers appear in both spaced and unspaced
// forms. Unknown names are not extrapolated; they fall back to 400.
var fontWeightsByStyleName = map[string]int{
	"Thin":        100,
	"Extra Light": 200,
	"ExtraLight":  200,
	"Light":       300,
	"Regular":     400,
	"Medium":      500,
	"Semi Bold":   600,
	"SemiBold":    600,
	"Bold":        700,
	"Extra Bold":  800,
	"ExtraBold":   800,
	"Black":       900,
}

// FontWeightFromStyleName maps a font style name such as "Semi Bold" to its
// numeric weight. Names outside the table normalize to 400 (Regular).
func FontWeightFromStyleName(name string) int {
	if w, ok := fontWeightsByStyleName[name]; ok {
		return w
	}
	return 400
}

// NormalizeLineHeight converts a typed line-height record to a CSS-like
// string: a PERCENT unit becomes a unitless ratio (value/100), a PIXELS
// unit gets a px suffix, and anything else falls back to "1.5".
func NormalizeLineHeight(unit string, value float64) string {
	switch unit {
	case figma.UnitPercent:
		return formatNumber(value / 100)
	case figma.UnitPixels:
		return formatNumber(value) + "px"
	default:
		return defaultLineHeight
	}
}

// NormalizeLetterSpacing converts a typed letter-spacing record to a
// CSS-like string: PERCENT keeps the % unit, everything else is pixels.
func NormalizeLetterSpacing(unit string, value float64) string {
	if unit == figma.UnitPercent {
		return formatNumber(value) + "%"
	}
	return formatNumber(value) + "px"
}

// formatNumber renders a float without trailing zeros: 32 -> "32",
// 1.5 -> "1.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
