package palette

import (
	"regexp"
	"sort"
)

// Override keys recognized by Resolve. Other keys are carried but ignored.
const (
	KeyBackground = "--bg"
	KeyForeground = "--fg"
	KeyAccent     = "--accent"
	KeyMuted      = "--muted"
	KeySurface    = "--surface"
	KeyBorder     = "--border"
)

// Keys lists the recognized override keys.
var Keys = []string{KeyBackground, KeyForeground, KeyAccent, KeyMuted, KeySurface, KeyBorder}

var (
	styleAttr   = regexp.MustCompile(`style="([^"]*)"`)
	declaration = regexp.MustCompile(`(?i)--([a-z]+):\s*([^;"\s]+)`)
)

// Overrides maps custom property names ("--bg") to the raw value the
// template author supplied.
type Overrides map[string]string

// ExtractOverrides reads custom property declarations from the first
// style attribute in doc. Declarations are scanned left to right and a
// repeated name keeps its last value. A document without a style attribute
// yields an empty map.
func ExtractOverrides(doc string) Overrides {
	o := Overrides{}
	m := styleAttr.FindStringSubmatch(doc)
	if m == nil {
		return o
	}
	for _, d := range declaration.FindAllStringSubmatch(m[1], -1) {
		o["--"+d[1]] = d[2]
	}
	return o
}

// Merge returns a new map holding o with every entry of other laid over it.
func (o Overrides) Merge(other Overrides) Overrides {
	merged := make(Overrides, len(o)+len(other))
	for k, v := range o {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Lookup returns the override for key. Empty values count as absent.
func (o Overrides) Lookup(key string) (string, bool) {
	v, ok := o[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// SortedKeys returns the keys in lexical order.
func (o Overrides) SortedKeys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Recognized reports whether key is one of Keys.
func Recognized(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
