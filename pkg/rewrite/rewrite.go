package rewrite

import (
	"github.com/matzehuels/svgtheme/pkg/palette"
)

// Count records how many replacements one rule made.
type Count struct {
	Rule     string
	Replaced int
}

// Report lists per-rule replacement counts in the order the rules ran.
type Report []Count

// Total returns the number of replacements across all rules.
func (r Report) Total() int {
	total := 0
	for _, c := range r {
		total += c.Replaced
	}
	return total
}

// Replaced returns the count recorded for the named rule.
func (r Report) Replaced(rule string) int {
	for _, c := range r {
		if c.Rule == rule {
			return c.Replaced
		}
	}
	return 0
}

// Run applies rules to doc in order.
func Run(doc string, rules []Rule) (string, Report) {
	report := make(Report, 0, len(rules))
	for _, rule := range rules {
		var n int
		doc, n = rule.Apply(doc)
		report = append(report, Count{Rule: rule.Name(), Replaced: n})
	}
	return doc, report
}

// Apply rewrites doc with the full rule set for p.
func Apply(doc string, p palette.Palette) (string, Report) {
	return Run(doc, Rules(p))
}
