// Package color implements the hex color model used by svgtheme.
//
// # Overview
//
// Colors travel through templates as six-digit hex strings. This package
// converts between that text form and a [Color] value, and mixes two colors
// by linear interpolation of their sRGB channels:
//
//	c, ok := color.Parse("#27272A")   // Color{R: 0x27, G: 0x27, B: 0x2a}, true
//	c.Hex()                           // "#27272a"
//	color.Blend("#27272A", "#FFFFFF", 40) // 40% foreground over background
//
// # Parsing
//
// [Parse] accepts an optional leading '#' followed by exactly three
// two-digit hex groups, in either case. Shorthand (#abc), named colors and
// functional notation (rgb(), hsl()) are not parseable.
//
// # Blending
//
// [Blend] never fails. When either argument is not parseable it returns the
// foreground argument unchanged, so raw override values survive resolution
// as-is. The percentage is not range checked; channels are clamped only when
// the result is formatted.
//
// # Inspection
//
// [Contrast] and [Distance] measure how far apart two colors are (WCAG
// contrast ratio and CIEDE2000 difference). They back the palette audit and
// never take part in resolution.
package color
