package color

import (
	"github.com/lucasb-eyer/go-colorful"
)

// MinTextContrast is the WCAG AA contrast ratio for normal text.
const MinTextContrast = 4.5

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Luminance returns the relative luminance of c in [0, 1].
func (c Color) Luminance() float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the WCAG contrast ratio between a and b, from 1 (no
// contrast) to 21 (black on white). The order of the arguments does not
// matter.
func Contrast(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Distance returns the CIEDE2000 color difference between a and b.
// Values below about 0.02 are hard to tell apart.
func Distance(a, b Color) float64 {
	return a.colorful().DistanceCIEDE2000(b.colorful())
}
