package rewrite

import (
	"regexp"
	"strings"
)

// Rule is one substitution step.
type Rule interface {
	// Name identifies the rule in reports and logs.
	Name() string
	// Apply rewrites doc and returns the new text with the number of
	// replacements made.
	Apply(doc string) (string, int)
}

// patternRule replaces every match of a regular expression.
type patternRule struct {
	name   string
	re     *regexp.Regexp
	repl   string
	expand bool // expand $1-style references in repl
}

func (r patternRule) Name() string { return r.name }

func (r patternRule) Apply(doc string) (string, int) {
	n := len(r.re.FindAllStringIndex(doc, -1))
	if n == 0 {
		return doc, 0
	}
	if r.expand {
		return r.re.ReplaceAllString(doc, r.repl), n
	}
	return r.re.ReplaceAllLiteralString(doc, r.repl), n
}

// literalRule replaces every occurrence of a fixed string.
type literalRule struct {
	name     string
	old, new string
}

func (r literalRule) Name() string { return r.name }

func (r literalRule) Apply(doc string) (string, int) {
	n := strings.Count(doc, r.old)
	if n == 0 {
		return doc, 0
	}
	return strings.ReplaceAll(doc, r.old, r.new), n
}
