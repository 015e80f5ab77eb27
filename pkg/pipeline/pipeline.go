// Package pipeline resolves themed SVG templates.
//
// The resolution itself is a pure function of the document text:
//
//	out := pipeline.Run(doc)
//
// which extracts the template's overrides, resolves the palette and applies
// the rewrite rules. [Process] does the same with extra overrides layered on
// top (theme presets, --set flags) and returns the intermediate results.
//
// # Files
//
// [Runner] adds the file handling the CLI needs: reading inputs, writing
// outputs (in place by default), skipping documents whose cached result is
// still on disk, and resolving many files concurrently:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	defer runner.Close()
//	results, err := runner.ResolveFiles(ctx, jobs, pipeline.Options{
//	    Overrides:   theme.Overrides(),
//	    Concurrency: 8,
//	})
//
// Every document is still processed on a single goroutine; concurrency only
// spans independent files.
package pipeline

import (
	"runtime"

	"github.com/matzehuels/svgtheme/pkg/errors"
	"github.com/matzehuels/svgtheme/pkg/palette"
	"github.com/matzehuels/svgtheme/pkg/rewrite"
)

// DefaultConcurrency bounds parallel file resolution when Options leaves
// it unset.
var DefaultConcurrency = runtime.NumCPU()

// Options configures a resolution.
type Options struct {
	// Overrides are laid over the overrides declared in each document.
	Overrides palette.Overrides `json:"overrides,omitempty"`
	// Refresh ignores cached results.
	Refresh bool `json:"refresh,omitempty"`
	// Concurrency is the number of files resolved at once.
	Concurrency int `json:"concurrency,omitempty"`
}

// ValidateAndSetDefaults checks override names and values and fills in
// defaults.
func (o *Options) ValidateAndSetDefaults() error {
	for _, k := range o.Overrides.SortedKeys() {
		if err := errors.ValidateOverrideName(k); err != nil {
			return err
		}
		if err := errors.ValidateOverrideValue(o.Overrides[k]); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidOverride, err, "override %s", k)
		}
	}
	if o.Concurrency < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "concurrency must be positive, got %d", o.Concurrency)
	}
	if o.Concurrency == 0 {
		o.Concurrency = DefaultConcurrency
	}
	return nil
}

// Result holds the outcome of resolving one document.
type Result struct {
	Output    string            // rewritten document
	Overrides palette.Overrides // document overrides merged with Options.Overrides
	Palette   palette.Palette
	Report    rewrite.Report
}

// Process resolves doc, laying opts.Overrides over the document's own.
// It never fails: malformed colors degrade to their raw values.
func Process(doc string, opts Options) *Result {
	overrides := palette.ExtractOverrides(doc).Merge(opts.Overrides)
	p := palette.Resolve(overrides)
	out, report := rewrite.Apply(doc, p)
	return &Result{
		Output:    out,
		Overrides: overrides,
		Palette:   p,
		Report:    report,
	}
}

// Run resolves doc using only the overrides it declares.
func Run(doc string) string {
	return Process(doc, Options{}).Output
}
