package theme

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/matzehuels/svgtheme/pkg/errors"
)

// Extensions lists the theme file extensions Load understands, in lookup
// order.
var Extensions = []string{".toml", ".yaml", ".yml"}

// maxFileSize bounds theme files; real ones are a few hundred bytes.
const maxFileSize = 64 << 10

// Load reads a theme file. The format is chosen by extension and unknown
// keys are rejected. A theme without a name is named after its file.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Theme{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "theme file %s", path)
	}
	if err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeIO, err, "read theme %s", path)
	}
	if len(data) > maxFileSize {
		return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "theme file %s too large (%d bytes)", path, len(data))
	}

	ext := strings.ToLower(filepath.Ext(path))
	t, err := Decode(data, ext)
	if err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse theme %s", path)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Decode parses theme data in the format named by ext (".toml", ".yaml"
// or ".yml").
func Decode(data []byte, ext string) (Theme, error) {
	var t Theme
	switch ext {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&t)
		if err != nil {
			return Theme{}, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown key %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		if err := yaml.UnmarshalWithOptions(data, &t, yaml.Strict()); err != nil {
			return Theme{}, err
		}
	default:
		return Theme{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported theme format %q (want .toml, .yaml or .yml)", ext)
	}
	return t, nil
}

// Encode renders t as TOML.
func Encode(t Theme) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Lookup resolves a theme reference. A reference containing a path
// separator or a known extension is loaded as a file; otherwise it is a
// preset name, checked against the built-ins first and then against
// <dir>/<name><ext> in each directory.
func Lookup(ref string, dirs ...string) (Theme, error) {
	if isPath(ref) {
		return Load(ref)
	}
	if err := errors.ValidateThemeName(ref); err != nil {
		return Theme{}, err
	}
	if t, ok := Builtin(ref); ok {
		return t, nil
	}
	for _, dir := range dirs {
		for _, ext := range Extensions {
			path := filepath.Join(dir, ref+ext)
			t, err := Load(path)
			if err == nil {
				return t, nil
			}
			if !errors.Is(err, errors.ErrCodeFileNotFound) {
				return Theme{}, err
			}
		}
	}
	return Theme{}, errors.New(errors.ErrCodeThemeNotFound, "theme %q not found", ref)
}

// List returns the names of the theme files in dir, sorted and without
// extensions. A missing directory yields no names.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if stderrors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "list themes in %s", dir)
	}

	seen := map[string]bool{}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !hasThemeExt(e.Name()) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func isPath(ref string) bool {
	return strings.ContainsAny(ref, `/\`) || hasThemeExt(ref)
}

func hasThemeExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
