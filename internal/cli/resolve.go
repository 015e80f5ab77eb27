package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svgtheme/pkg/errors"
	"github.com/matzehuels/svgtheme/pkg/pipeline"
)

// stdioArg reads the document from stdin and writes the result to stdout.
const stdioArg = "-"

// resolveOpts holds the command-line flags for the resolve command.
type resolveOpts struct {
	theme   string   // theme preset name or file
	set     []string // name=value overrides
	noCache bool     // ignore and skip the result cache
	jobs    int      // files resolved at once
	outDir  string   // directory for outputs of multiple inputs
	inPlace bool     // treat every argument as an input rewritten in place
}

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve <input.svg> [output.svg]",
		Short: "Resolve theme variables, fonts and geometry in SVG templates",
		Long: `Resolve rewrites SVG templates into self-contained documents.

With one argument the file is rewritten in place; with two the second is the
output path. Several inputs can be resolved at once with --in-place or
--out-dir. Use - to read from stdin and write to stdout.

Colors come from the template's own style attribute, then --theme, then --set:

  svgtheme resolve diagram.svg --theme dark --set accent=#f59e0b`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "theme preset name or file (.toml, .yaml)")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "override a base color, e.g. --set bg=#0b0b0c (repeatable)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "resolve every file even if its output is up to date")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", pipeline.DefaultConcurrency, "number of files resolved at once")
	cmd.Flags().StringVar(&opts.outDir, "out-dir", "", "write outputs into this directory, keeping file names")
	cmd.Flags().BoolVar(&opts.inPlace, "in-place", false, "rewrite every argument in place")

	return cmd
}

func (c *CLI) runResolve(cmd *cobra.Command, args []string, opts resolveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	status := cmd.ErrOrStderr()

	overrides, err := buildOverrides(opts.theme, opts.set)
	if err != nil {
		return err
	}
	popts := pipeline.Options{Overrides: overrides, Concurrency: opts.jobs, Refresh: opts.noCache}

	if len(args) == 1 && args[0] == stdioArg {
		return c.resolveStdio(cmd.InOrStdin(), popts)
	}

	jobs, err := buildJobs(args, opts.outDir, opts.inPlace)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	results, err := runner.ResolveFiles(ctx, jobs, popts)
	if err != nil {
		return err
	}

	cached := 0
	for _, res := range results {
		if res.Cached {
			cached++
		}
		printFile(status, res.Job.OutputPath(), res.Cached)
	}
	prog.done(fmt.Sprintf("Resolved %d files (%d up to date)", len(results), cached))
	return nil
}

// resolveStdio resolves a single document from r to the command output.
// The cache is not involved.
func (c *CLI) resolveStdio(r io.Reader, opts pipeline.Options) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "read stdin")
	}
	res := pipeline.Process(string(data), opts)
	c.Logger.Debug("resolved stdin", "overrides", len(res.Overrides), "replacements", res.Report.Total())
	_, err = io.WriteString(c.Out, res.Output)
	return err
}

// buildJobs maps arguments to jobs:
//   - with --out-dir, every argument is an input written to outDir/<base>
//   - with --in-place, every argument is rewritten in place
//   - otherwise one argument is rewritten in place and two are input and output
func buildJobs(args []string, outDir string, inPlace bool) ([]pipeline.Job, error) {
	for _, a := range args {
		if a == stdioArg {
			return nil, errors.New(errors.ErrCodeInvalidInput, "- must be the only argument")
		}
	}
	if outDir != "" && inPlace {
		return nil, errors.New(errors.ErrCodeInvalidInput, "--out-dir and --in-place are mutually exclusive")
	}

	switch {
	case outDir != "":
		if err := errors.ValidatePath(outDir); err != nil {
			return nil, err
		}
		jobs := make([]pipeline.Job, len(args))
		for i, in := range args {
			jobs[i] = pipeline.Job{Input: in, Output: filepath.Join(outDir, filepath.Base(in))}
		}
		return jobs, nil
	case inPlace || len(args) == 1:
		jobs := make([]pipeline.Job, len(args))
		for i, in := range args {
			jobs[i] = pipeline.Job{Input: in}
		}
		return jobs, nil
	case len(args) == 2:
		return []pipeline.Job{{Input: args[0], Output: args[1]}}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"%d inputs given; use --in-place or --out-dir to resolve several files", len(args))
	}
}
