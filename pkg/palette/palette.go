// Package palette derives the full set of template colors from a few base
// colors and the overrides a template declares.
package palette

import (
	"github.com/matzehuels/svgtheme/pkg/color"
)

// Defaults used when a template does not declare a base color.
const (
	DefaultBackground = "#ffffff"
	DefaultForeground = "#27272a"
)

// Foreground weights, in percent, for roles derived by blending.
const (
	accentMix        = 70
	textSecondaryMix = 60
	textMutedMix     = 40
	textFaintMix     = 25
	nodeFillMix      = 4
	nodeStrokeMix    = 25
	groupHeaderMix   = 6
	innerStrokeMix   = 15
	keyBadgeMix      = 12
)

// Palette holds the resolved value of every role.
type Palette struct {
	values [numRoles]string
	accent string
}

// Resolve computes the palette for the given overrides. Every role always
// receives a value: overrides that are not valid hex colors are used
// verbatim, and blends involving them fall back to the foreground string.
func Resolve(o Overrides) Palette {
	bg := orDefault(o, KeyBackground, DefaultBackground)
	fg := orDefault(o, KeyForeground, DefaultForeground)
	mix := func(percent float64) string { return color.Blend(fg, bg, percent) }
	derive := func(key string, percent float64) string {
		if v, ok := o.Lookup(key); ok {
			return v
		}
		return mix(percent)
	}

	accent := derive(KeyAccent, accentMix)

	var p Palette
	p.accent = accent
	p.values[Background] = bg
	p.values[Foreground] = fg
	p.values[Text] = fg
	p.values[TextSecondary] = derive(KeyMuted, textSecondaryMix)
	p.values[TextMuted] = derive(KeyMuted, textMutedMix)
	p.values[TextFaint] = mix(textFaintMix)
	p.values[Line] = accent
	p.values[Arrow] = accent
	p.values[NodeFill] = derive(KeySurface, nodeFillMix)
	p.values[NodeStroke] = derive(KeyBorder, nodeStrokeMix)
	p.values[GroupFill] = bg
	p.values[GroupHeader] = mix(groupHeaderMix)
	p.values[InnerStroke] = mix(innerStrokeMix)
	p.values[KeyBadge] = mix(keyBadgeMix)
	return p
}

// Default returns the palette of a template without overrides.
func Default() Palette { return Resolve(nil) }

func orDefault(o Overrides, key, def string) string {
	if v, ok := o.Lookup(key); ok {
		return v
	}
	return def
}

// Get returns the value of role, or "" for an unknown role.
func (p Palette) Get(r Role) string {
	if !r.valid() {
		return ""
	}
	return p.values[r]
}

// Accent returns the color shared by lines and arrows.
func (p Palette) Accent() string { return p.accent }

// Background returns the resolved background.
func (p Palette) Background() string { return p.values[Background] }

// Foreground returns the resolved foreground. Unresolved references fall
// back to it.
func (p Palette) Foreground() string { return p.values[Foreground] }
