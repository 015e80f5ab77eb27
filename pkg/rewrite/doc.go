// Package rewrite turns a themed SVG template into a self-contained SVG.
//
// # Overview
//
// Templates reference palette roles through CSS custom properties
// (fill="var(--_node-fill)") and ship a placeholder stylesheet. Rewriting
// replaces those references with literal colors and swaps in a fixed
// stylesheet so the result renders the same everywhere, including viewers
// that do not support custom properties.
//
// The document is treated as text. Each step is a [Rule] that matches a
// literal pattern and replaces it; no DOM is built.
//
// # Rule Order
//
// [Rules] returns the rules in the order they must run:
//
//  1. Font: every <style> block becomes the fixed stylesheet, keeping the
//     first single-quoted font-family found in the document (Inter if none).
//  2. Background: "background: var(--bg)" becomes the literal background.
//  3. Roles: var(--role) and var(--role, fallback) become the role's value,
//     one rule per [palette.Role].
//  4. Catch-all: any var(--...) left over becomes the foreground color. It
//     must run after the role rules or it would consume their references.
//  5. Geometry: fixed literal replacements that enlarge line strokes and
//     arrow markers.
//
// Replacement values are inserted literally; a '$' in an override never
// expands to a capture group.
//
// # Usage
//
//	p := palette.Resolve(palette.ExtractOverrides(doc))
//	out, report := rewrite.Apply(doc, p)
//	fmt.Println(report.Total(), "replacements")
package rewrite
