// Package theme provides named color presets for templates.
//
// A theme supplies the same base colors a template can declare in its
// style attribute (--bg, --fg, --accent, --muted, --surface, --border).
// Presets are either built in or loaded from TOML or YAML files:
//
//	# dusk.toml
//	name   = "dusk"
//	bg     = "#1c1917"
//	fg     = "#e7e5e4"
//	accent = "#f59e0b"
//
// Only the fields that are set become overrides; the rest keep deriving
// from the background and foreground as usual.
package theme

import (
	"sort"

	"github.com/matzehuels/svgtheme/pkg/color"
	"github.com/matzehuels/svgtheme/pkg/errors"
	"github.com/matzehuels/svgtheme/pkg/palette"
)

// Theme is a set of base colors. Empty fields are left to the template.
type Theme struct {
	Name    string `toml:"name,omitempty"    yaml:"name,omitempty"`
	Bg      string `toml:"bg,omitempty"      yaml:"bg,omitempty"`
	Fg      string `toml:"fg,omitempty"      yaml:"fg,omitempty"`
	Accent  string `toml:"accent,omitempty"  yaml:"accent,omitempty"`
	Muted   string `toml:"muted,omitempty"   yaml:"muted,omitempty"`
	Surface string `toml:"surface,omitempty" yaml:"surface,omitempty"`
	Border  string `toml:"border,omitempty"  yaml:"border,omitempty"`
}

func (t Theme) fields() []struct{ key, value string } {
	return []struct{ key, value string }{
		{palette.KeyBackground, t.Bg},
		{palette.KeyForeground, t.Fg},
		{palette.KeyAccent, t.Accent},
		{palette.KeyMuted, t.Muted},
		{palette.KeySurface, t.Surface},
		{palette.KeyBorder, t.Border},
	}
}

// Overrides returns the theme's non-empty colors keyed by custom property.
func (t Theme) Overrides() palette.Overrides {
	o := palette.Overrides{}
	for _, f := range t.fields() {
		if f.value != "" {
			o[f.key] = f.value
		}
	}
	return o
}

// Validate checks that every color the theme sets is a six-digit hex
// color.
func (t Theme) Validate() error {
	for _, f := range t.fields() {
		if f.value == "" {
			continue
		}
		if _, ok := color.Parse(f.value); !ok {
			return errors.New(errors.ErrCodeInvalidTheme, "theme %q: %s is not a hex color: %q", t.Name, f.key, f.value)
		}
	}
	return nil
}

// Palette resolves the theme on its own, as if a template declared
// exactly these overrides.
func (t Theme) Palette() palette.Palette {
	return palette.Resolve(t.Overrides())
}

var builtins = map[string]Theme{
	"light": {
		Name: "light",
		Bg:   palette.DefaultBackground,
		Fg:   palette.DefaultForeground,
	},
	"dark": {
		Name: "dark",
		Bg:   "#18181b",
		Fg:   "#e4e4e7",
	},
	"slate": {
		Name:   "slate",
		Bg:     "#f8fafc",
		Fg:     "#0f172a",
		Accent: "#475569",
		Border: "#cbd5e1",
	},
	"solarized": {
		Name:    "solarized",
		Bg:      "#fdf6e3",
		Fg:      "#586e75",
		Accent:  "#268bd2",
		Muted:   "#93a1a1",
		Surface: "#eee8d5",
	},
}

// Builtin returns the built-in preset with the given name.
func Builtin(name string) (Theme, bool) {
	t, ok := builtins[name]
	return t, ok
}

// BuiltinNames returns the names of the built-in presets, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
