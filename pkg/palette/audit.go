package palette

import (
	"github.com/matzehuels/svgtheme/pkg/color"
)

// Finding describes how one role reads against the background.
type Finding struct {
	Role     Role
	Value    string
	Parsed   bool    // false when Value or the background is not a hex color
	Contrast float64 // WCAG ratio against the background
	Distance float64 // CIEDE2000 difference from the background
}

// Below reports whether the finding is parseable and under min contrast.
func (f Finding) Below(min float64) bool {
	return f.Parsed && f.Contrast < min
}

// Audit measures every role against the background. Roles whose value
// cannot be parsed are returned with Parsed set to false.
func (p Palette) Audit() []Finding {
	bg, bgOK := color.Parse(p.Background())
	findings := make([]Finding, 0, numRoles)
	for _, r := range Roles() {
		f := Finding{Role: r, Value: p.Get(r)}
		if c, ok := color.Parse(f.Value); ok && bgOK {
			f.Parsed = true
			f.Contrast = color.Contrast(c, bg)
			f.Distance = color.Distance(c, bg)
		}
		findings = append(findings, f)
	}
	return findings
}
