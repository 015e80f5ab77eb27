package color

import (
	"math"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Color
		wantOK bool
	}{
		{"with hash", "#27272A", Color{0x27, 0x27, 0x2a}, true},
		{"without hash", "ffffff", Color{0xff, 0xff, 0xff}, true},
		{"lowercase", "#0a0b0c", Color{0x0a, 0x0b, 0x0c}, true},
		{"mixed case", "#AbCdEf", Color{0xab, 0xcd, 0xef}, true},
		{"shorthand", "#fff", Color{}, false},
		{"named", "red", Color{}, false},
		{"rgb function", "rgb(1,2,3)", Color{}, false},
		{"too long", "#1234567", Color{}, false},
		{"non-hex digits", "#12345g", Color{}, false},
		{"double hash", "##123456", Color{}, false},
		{"empty", "", Color{}, false},
		{"surrounding space", " #123456", Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on malformed input")
		}
	}()
	MustParse("nope")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    string
	}{
		{"zero padded", 0, 1, 15, "#00010f"},
		{"white", 255, 255, 255, "#ffffff"},
		{"rounds half up", 0.5, 1.49, 244.5, "#0101f5"},
		{"clamps high", 300, 256, 255.4, "#ffffff"},
		{"clamps low", -10, -0.4, 0, "#000000"},
		{"nan", math.NaN(), 0, 0, "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Format(%v, %v, %v) = %q, want %q", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, in := range []string{"#27272A", "#FFFFFF", "#000000", "#a1B2c3", "#0f0f0f"} {
		c, ok := Parse(in)
		if !ok {
			t.Fatalf("Parse(%q) failed", in)
		}
		if got := c.Hex(); got != strings.ToLower(in) {
			t.Errorf("Parse(%q).Hex() = %q, want %q", in, got, strings.ToLower(in))
		}
	}

	c, _ := Parse("A1B2C3")
	if got := c.Hex(); got != "#a1b2c3" {
		t.Errorf("hash-less round trip = %q, want %q", got, "#a1b2c3")
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name    string
		fg, bg  string
		percent float64
		want    string
	}{
		{"full foreground", "#27272A", "#FFFFFF", 100, "#27272a"},
		{"full background", "#27272A", "#FFFFFF", 0, "#ffffff"},
		{"default accent", "#27272A", "#FFFFFF", 70, "#68686a"},
		{"default node fill", "#27272A", "#FFFFFF", 4, "#f6f6f6"},
		{"dark node fill", "#111111", "#FFFFFF", 4, "#f5f5f5"},
		{"white on black", "#FFFFFF", "#000000", 50, "#808080"},
		{"over range clamps", "#808080", "#000000", 300, "#ffffff"},
		{"below range clamps", "#808080", "#ffffff", -100, "#ffffff"},
		{"unparseable fg", "notacolor", "#FFFFFF", 50, "notacolor"},
		{"unparseable bg", "#123456", "transparent", 50, "#123456"},
		{"shorthand fg is returned verbatim", "#FFF", "#000000", 50, "#FFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.fg, tt.bg, tt.percent); got != tt.want {
				t.Errorf("Blend(%q, %q, %v) = %q, want %q", tt.fg, tt.bg, tt.percent, got, tt.want)
			}
		})
	}
}

func TestBlendShape(t *testing.T) {
	pairs := [][2]string{
		{"#000000", "#ffffff"},
		{"#27272A", "#FAFAFA"},
		{"#ff8800", "#0044cc"},
		{"123456", "#abcdef"},
	}
	for _, p := range pairs {
		for pct := 0.0; pct <= 100; pct += 12.5 {
			got := Blend(p[0], p[1], pct)
			if len(got) != 7 || got[0] != '#' {
				t.Errorf("Blend(%q, %q, %v) = %q, want #rrggbb", p[0], p[1], pct, got)
			}
			if got != strings.ToLower(got) {
				t.Errorf("Blend(%q, %q, %v) = %q, want lowercase", p[0], p[1], pct, got)
			}
		}
		if got, want := Blend(p[0], p[1], 100), MustParse(p[0]).Hex(); got != want {
			t.Errorf("Blend(%q, %q, 100) = %q, want %q", p[0], p[1], got, want)
		}
		if got, want := Blend(p[0], p[1], 0), MustParse(p[1]).Hex(); got != want {
			t.Errorf("Blend(%q, %q, 0) = %q, want %q", p[0], p[1], got, want)
		}
	}
}

func TestContrast(t *testing.T) {
	black, white := MustParse("#000000"), MustParse("#ffffff")

	if got := Contrast(black, white); math.Abs(got-21) > 1e-9 {
		t.Errorf("Contrast(black, white) = %v, want 21", got)
	}
	if got := Contrast(white, black); math.Abs(got-21) > 1e-9 {
		t.Errorf("Contrast(white, black) = %v, want 21", got)
	}
	if got := Contrast(white, white); math.Abs(got-1) > 1e-9 {
		t.Errorf("Contrast(white, white) = %v, want 1", got)
	}

	fg := MustParse("#27272a")
	if got := Contrast(fg, white); got < MinTextContrast {
		t.Errorf("default foreground contrast = %v, want >= %v", got, MinTextContrast)
	}
}

func TestDistance(t *testing.T) {
	a := MustParse("#27272a")
	if got := Distance(a, a); got > 1e-9 {
		t.Errorf("Distance(a, a) = %v, want 0", got)
	}

	near := Distance(a, MustParse("#28282b"))
	far := Distance(a, MustParse("#ffffff"))
	if near >= far {
		t.Errorf("Distance near = %v, far = %v, want near < far", near, far)
	}
}
