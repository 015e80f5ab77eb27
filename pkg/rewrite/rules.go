package rewrite

import (
	"fmt"
	"regexp"

	"github.com/matzehuels/svgtheme/pkg/palette"
)

// DefaultFont is used when the template names no font family.
const DefaultFont = "Inter"

const stylesheet = `<style>
  text { font-family: '%s', 'SF Pro Display', system-ui, -apple-system, sans-serif; font-weight: 500; }
  .mono { font-family: 'JetBrains Mono', 'SF Mono', 'Fira Code', ui-monospace, monospace; }
</style>`

var (
	fontFamily   = regexp.MustCompile(`font-family:\s*'([^']+)'`)
	styleBlock   = regexp.MustCompile(`<style>[\s\S]*?</style>`)
	backgroundBg = regexp.MustCompile(`background:\s*var\(--bg\)`)
	anyVar       = regexp.MustCompile(`var\(--[^)]+\)`)
	thinPolyline = regexp.MustCompile(`<polyline([^>]*?)stroke-width="0\.75"`)

	rolePatterns = func() []*regexp.Regexp {
		pats := make([]*regexp.Regexp, len(palette.Roles()))
		for i, r := range palette.Roles() {
			pats[i] = VarPattern(r.Var())
		}
		return pats
	}()
)

// VarPattern matches var(name) and var(name, fallback) for the custom
// property name, which includes its leading "--".
func VarPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`var\(` + regexp.QuoteMeta(name) + `(?:,[^)]*)?\)`)
}

// Stylesheet returns the <style> block that replaces the template's own.
func Stylesheet(font string) string {
	return fmt.Sprintf(stylesheet, font)
}

// FontFamily returns the first single-quoted font-family in doc, or
// DefaultFont.
func FontFamily(doc string) string {
	if m := fontFamily.FindStringSubmatch(doc); m != nil {
		return m[1]
	}
	return DefaultFont
}

// fontRule replaces style blocks with the fixed stylesheet.
type fontRule struct{}

func (fontRule) Name() string { return "font" }

func (fontRule) Apply(doc string) (string, int) {
	return patternRule{re: styleBlock, repl: Stylesheet(FontFamily(doc))}.Apply(doc)
}

// FontRule normalizes the document's stylesheet.
func FontRule() Rule { return fontRule{} }

// BackgroundRule inlines the background color in CSS background
// declarations.
func BackgroundRule(bg string) Rule {
	return patternRule{name: "background", re: backgroundBg, repl: "background:" + bg}
}

// RoleRule substitutes references to one palette role, dropping any
// fallback clause.
func RoleRule(r palette.Role, value string) Rule {
	return patternRule{name: "var " + r.Var(), re: rolePatterns[r], repl: value}
}

// CatchAllRule substitutes any remaining custom property reference with
// the foreground color.
func CatchAllRule(fg string) Rule {
	return patternRule{name: "catch-all", re: anyVar, repl: fg}
}

// GeometryRules enlarges thin polylines and arrow markers. Only the exact
// literals emitted by the diagram generator are touched.
func GeometryRules() []Rule {
	return []Rule{
		patternRule{name: "polyline stroke", re: thinPolyline, repl: `<polyline${1}stroke-width="1.5"`, expand: true},
		literalRule{name: "marker width", old: `markerWidth="8"`, new: `markerWidth="10"`},
		literalRule{name: "marker height", old: `markerHeight="4.8"`, new: `markerHeight="6"`},
		literalRule{name: "marker refX", old: `refX="8"`, new: `refX="10"`},
		literalRule{name: "marker refY", old: `refY="2.4"`, new: `refY="3"`},
		literalRule{name: "arrowhead forward", old: `points="0 0, 8 2.4, 0 4.8"`, new: `points="0 0, 10 3, 0 6"`},
		literalRule{name: "arrowhead backward", old: `points="8 0, 0 2.4, 8 4.8"`, new: `points="10 0, 0 3, 10 6"`},
	}
}

// Rules returns the full ordered rule set for a palette.
func Rules(p palette.Palette) []Rule {
	rules := []Rule{FontRule(), BackgroundRule(p.Background())}
	for _, r := range palette.Roles() {
		rules = append(rules, RoleRule(r, p.Get(r)))
	}
	rules = append(rules, CatchAllRule(p.Foreground()))
	return append(rules, GeometryRules()...)
}
