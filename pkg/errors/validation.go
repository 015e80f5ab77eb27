package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// overrideNameRegex mirrors the declarations a template style attribute
// can carry: two hyphens followed by letters.
var overrideNameRegex = regexp.MustCompile(`^--[A-Za-z]+$`)

// ValidateOverrideName checks that name can be declared in a template
// style attribute.
func ValidateOverrideName(name string) error {
	if !overrideNameRegex.MatchString(name) {
		return New(ErrCodeInvalidOverride, "invalid override name %q (want --name, letters only)", name)
	}
	return nil
}

// ValidateOverrideValue rejects values a template declaration could not
// hold: empty strings and anything containing whitespace, ';' or '"'.
func ValidateOverrideValue(value string) error {
	if value == "" {
		return New(ErrCodeInvalidOverride, "override value cannot be empty")
	}
	for _, r := range value {
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == ';' || r == '"' {
			return New(ErrCodeInvalidOverride, "override value %q contains invalid characters", value)
		}
	}
	return nil
}

// themeNameRegex matches preset names usable as file basenames.
var themeNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateThemeName validates a theme preset name. Names double as file
// basenames in the theme directory, so path components are rejected.
func ValidateThemeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTheme, "theme name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidTheme, "theme name too long (max 64 characters)")
	}
	if strings.Contains(name, "..") || !themeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidTheme, "invalid theme name %q", name)
	}
	return nil
}

// ValidatePath validates a local file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
