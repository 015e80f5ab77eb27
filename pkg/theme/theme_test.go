package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/svgtheme/pkg/errors"
	"github.com/matzehuels/svgtheme/pkg/palette"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestOverrides(t *testing.T) {
	th := Theme{Name: "x", Bg: "#000000", Accent: "#ff0000"}
	o := th.Overrides()

	if len(o) != 2 {
		t.Fatalf("Overrides() = %v, want 2 entries", o)
	}
	if o[palette.KeyBackground] != "#000000" || o[palette.KeyAccent] != "#ff0000" {
		t.Errorf("Overrides() = %v", o)
	}
	if _, ok := o[palette.KeyForeground]; ok {
		t.Error("unset fields should not become overrides")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		theme   Theme
		wantErr bool
	}{
		{"empty", Theme{}, false},
		{"valid", Theme{Bg: "#000000", Fg: "FFFFFF"}, false},
		{"shorthand", Theme{Bg: "#000"}, true},
		{"named", Theme{Border: "gray"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.theme.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidTheme) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidTheme)
			}
		})
	}
}

func TestBuiltins(t *testing.T) {
	names := BuiltinNames()
	if len(names) == 0 {
		t.Fatal("expected built-in themes")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("BuiltinNames() not sorted: %v", names)
		}
	}
	for _, name := range names {
		th, ok := Builtin(name)
		if !ok {
			t.Fatalf("Builtin(%q) missing", name)
		}
		if th.Name != name {
			t.Errorf("Builtin(%q).Name = %q", name, th.Name)
		}
		if err := th.Validate(); err != nil {
			t.Errorf("Builtin(%q) invalid: %v", name, err)
		}
	}

	light, _ := Builtin("light")
	if light.Palette() != palette.Default() {
		t.Error("light theme should reproduce the default palette")
	}
	if _, ok := Builtin("nope"); ok {
		t.Error("Builtin(nope) should miss")
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "dusk.toml", `
bg     = "#1c1917"
fg     = "#e7e5e4"
accent = "#f59e0b"
`)

	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Theme{Name: "dusk", Bg: "#1c1917", Fg: "#e7e5e4", Accent: "#f59e0b"}
	if th != want {
		t.Errorf("Load() = %+v, want %+v", th, want)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "paper.yaml", "name: Paper\nbg: \"#fafaf9\"\nsurface: \"#f5f5f4\"\n")

	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Theme{Name: "Paper", Bg: "#fafaf9", Surface: "#f5f5f4"}
	if th != want {
		t.Errorf("Load() = %+v, want %+v", th, want)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing file", filepath.Join(dir, "missing.toml"), errors.ErrCodeFileNotFound},
		{"unknown toml key", writeFile(t, dir, "extra.toml", `bg = "#000000"`+"\n"+`shadow = "#111111"`), errors.ErrCodeInvalidTheme},
		{"unknown yaml key", writeFile(t, dir, "extra.yml", "bg: \"#000000\"\nshadow: \"#111111\"\n"), errors.ErrCodeInvalidTheme},
		{"malformed toml", writeFile(t, dir, "broken.toml", `bg = `), errors.ErrCodeInvalidTheme},
		{"bad color", writeFile(t, dir, "bad.toml", `fg = "white"`), errors.ErrCodeInvalidTheme},
		{"unsupported ext", writeFile(t, dir, "theme.json", `{}`), errors.ErrCodeInvalidTheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestDecodeUnsupported(t *testing.T) {
	_, err := Decode([]byte(`{}`), ".json")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Decode(.json) error = %v, want %v", err, errors.ErrCodeInvalidFormat)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	th, _ := Builtin("solarized")
	data, err := Encode(th)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data, ".toml")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != th {
		t.Errorf("round trip = %+v, want %+v", got, th)
	}
}

func TestLookup(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dusk.toml", `bg = "#1c1917"`)
	writeFile(t, dir, "paper.yml", `bg: "#fafaf9"`)
	file := writeFile(t, dir, "direct.toml", `fg = "#111111"`)

	tests := []struct {
		name    string
		ref     string
		wantBg  string
		wantFg  string
		wantErr errors.Code
	}{
		{name: "builtin", ref: "dark", wantBg: "#18181b", wantFg: "#e4e4e7"},
		{name: "toml in dir", ref: "dusk", wantBg: "#1c1917"},
		{name: "yml in dir", ref: "paper", wantBg: "#fafaf9"},
		{name: "direct path", ref: file, wantFg: "#111111"},
		{name: "not found", ref: "missing", wantErr: errors.ErrCodeThemeNotFound},
		{name: "invalid name", ref: "..hidden", wantErr: errors.ErrCodeInvalidTheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := Lookup(tt.ref, filepath.Join(dir, "nonexistent"), dir)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Lookup(%q) error = %v, want %v", tt.ref, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.ref, err)
			}
			if th.Bg != tt.wantBg || th.Fg != tt.wantFg {
				t.Errorf("Lookup(%q) = %+v", tt.ref, th)
			}
		})
	}
}

func TestLookupBrokenUserTheme(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.toml", `bg = "nope"`)

	_, err := Lookup("broken", dir)
	if !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("Lookup(broken) error = %v, want %v", err, errors.ErrCodeInvalidTheme)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.toml", `bg = "#000000"`)
	writeFile(t, dir, "a.yaml", `bg: "#000000"`)
	writeFile(t, dir, "a.toml", `bg = "#000000"`)
	writeFile(t, dir, "notes.txt", `ignored`)
	if err := os.Mkdir(filepath.Join(dir, "sub.toml"), 0o755); err != nil {
		t.Fatal(err)
	}

	names, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"a", "b"}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	names, err = List(filepath.Join(dir, "missing"))
	if err != nil || names != nil {
		t.Errorf("List(missing) = %v, %v, want nil, nil", names, err)
	}
}

func TestExampleThemes(t *testing.T) {
	dir := filepath.Join("..", "..", "examples", "themes")
	names, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) == 0 {
		t.Skip("no example themes")
	}
	for _, name := range names {
		th, err := Lookup(name, dir)
		if err != nil {
			t.Errorf("Lookup(%s): %v", name, err)
			continue
		}
		if th.Name != name {
			t.Errorf("theme %s has name %q", name, th.Name)
		}
		if th.Bg == "" || th.Fg == "" {
			t.Errorf("theme %s should set bg and fg", name)
		}
	}
}
