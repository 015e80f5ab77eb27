package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// hexPattern matches "#rrggbb" or "rrggbb" in either case.
var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// Color is an sRGB color with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// Parse decodes a six-digit hex color. The second result is false when s
// has any other shape.
func Parse(s string) (Color, bool) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, false
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return Color{}, false
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, true
}

// MustParse is like Parse but panics on malformed input.
// It is intended for package-level defaults.
func MustParse(s string) Color {
	c, ok := Parse(s)
	if !ok {
		panic(fmt.Sprintf("color: malformed hex color %q", s))
	}
	return c
}

// Hex returns the color as "#" followed by six lowercase hex digits.
func (c Color) Hex() string {
	return Format(float64(c.R), float64(c.G), float64(c.B))
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

// Format renders fractional channel values as a hex color. Each channel is
// clamped to [0, 255] and rounded to the nearest integer (halves round up).
func Format(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

func channel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Floor(math.Max(0, math.Min(255, v)) + 0.5))
}

// Mix interpolates linearly between bg and fg. ratio is the weight of fg:
// 1 yields fg, 0 yields bg. The result is not rounded or clamped.
func Mix(fg, bg Color, ratio float64) (r, g, b float64) {
	mix := func(f, b uint8) float64 {
		return float64(f)*ratio + float64(b)*(1-ratio)
	}
	return mix(fg.R, bg.R), mix(fg.G, bg.G), mix(fg.B, bg.B)
}

// Blend mixes fgPercent percent of fg into bg and returns the hex result.
// If either input is not a parseable hex color, fg is returned unchanged.
func Blend(fg, bg string, fgPercent float64) string {
	f, ok := Parse(fg)
	if !ok {
		return fg
	}
	b, ok := Parse(bg)
	if !ok {
		return fg
	}
	return Format(Mix(f, b, fgPercent/100))
}
