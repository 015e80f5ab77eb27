package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/svgtheme/pkg/cache"
	"github.com/matzehuels/svgtheme/pkg/color"
	"github.com/matzehuels/svgtheme/pkg/errors"
	"github.com/matzehuels/svgtheme/pkg/observability"
	"github.com/matzehuels/svgtheme/pkg/palette"
)

// cacheKeyType labels result cache events.
const cacheKeyType = "result"

// Job names one document to resolve.
type Job struct {
	Input  string
	Output string // empty rewrites Input in place
}

// OutputPath returns where the job writes its result.
func (j Job) OutputPath() string {
	if j.Output == "" {
		return j.Input
	}
	return j.Output
}

// InPlace reports whether the job overwrites its input.
func (j Job) InPlace() bool {
	return j.OutputPath() == j.Input
}

// FileResult describes a resolved file.
type FileResult struct {
	Job      Job
	Cached   bool    // output was already up to date; nothing was written
	Result   *Result // nil when Cached
	Duration time.Duration
}

// Runner resolves files with caching and logging.
//
// The Runner holds no per-file state, so one Runner may serve concurrent
// calls.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// ResolveFile reads job.Input, resolves it and writes the result.
func (r *Runner) ResolveFile(ctx context.Context, job Job, opts Options) (*FileResult, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return r.resolveFile(ctx, job, opts)
}

// ResolveFiles resolves jobs concurrently, at most opts.Concurrency at a
// time. Results are returned in job order. The first failure cancels the
// jobs that have not started yet.
func (r *Runner) ResolveFiles(ctx context.Context, jobs []Job, opts Options) ([]*FileResult, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := checkDistinctOutputs(jobs); err != nil {
		return nil, err
	}

	results := make([]*FileResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			res, err := r.resolveFile(gctx, job, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) resolveFile(ctx context.Context, job Job, opts Options) (res *FileResult, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	hooks := observability.Pipeline()
	hooks.OnResolveStart(ctx, job.Input)
	defer func() {
		replaced := 0
		if res != nil && res.Result != nil {
			replaced = res.Result.Report.Total()
		}
		hooks.OnResolveComplete(ctx, job.Input, replaced, time.Since(start), err)
	}()

	return r.resolve(ctx, job, opts, start)
}

func (r *Runner) resolve(ctx context.Context, job Job, opts Options, start time.Time) (*FileResult, error) {
	if err := errors.ValidatePath(job.Input); err != nil {
		return nil, err
	}
	if err := errors.ValidatePath(job.OutputPath()); err != nil {
		return nil, err
	}

	out := job.OutputPath()

	data, err := os.ReadFile(job.Input)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", job.Input)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", job.Input)
	}

	keyOpts := cache.ResultKeyOpts{Output: absPath(out), Overrides: opts.Overrides}
	key := r.Keyer.ResultKey(cache.Hash(data), keyOpts)

	if !opts.Refresh && r.upToDate(ctx, key, out) {
		r.Logger.Debug("output up to date", "input", job.Input, "output", out)
		return &FileResult{Job: job, Cached: true, Duration: time.Since(start)}, nil
	}

	observability.Cache().OnCacheMiss(ctx, cacheKeyType)

	res := Process(string(data), opts)
	r.audit(job.Input, res)

	if err := writeOutput(out, job.Input, []byte(res.Output)); err != nil {
		return nil, err
	}

	outHash := cache.Hash([]byte(res.Output))
	r.record(ctx, key, outHash)
	if job.InPlace() {
		// The rewritten file is the next run's input.
		r.record(ctx, r.Keyer.ResultKey(outHash, keyOpts), outHash)
	}

	elapsed := time.Since(start)
	r.Logger.Info("resolved",
		"input", job.Input,
		"output", out,
		"overrides", len(res.Overrides),
		"replacements", res.Report.Total(),
		"duration", elapsed)
	for _, c := range res.Report {
		if c.Replaced > 0 {
			r.Logger.Debug("rule applied", "input", job.Input, "rule", c.Rule, "replaced", c.Replaced)
		}
	}

	return &FileResult{Job: job, Result: res, Duration: elapsed}, nil
}

// upToDate reports whether the cache says key was already resolved into
// the current contents of out.
func (r *Runner) upToDate(ctx context.Context, key, out string) bool {
	want, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		return false
	}
	current, err := os.ReadFile(out)
	if err != nil || cache.Hash(current) != string(want) {
		return false
	}
	observability.Cache().OnCacheHit(ctx, cacheKeyType)
	return true
}

// record stores outHash under key. Cache failures only cost a rerun.
func (r *Runner) record(ctx context.Context, key, outHash string) {
	if err := r.Cache.Set(ctx, key, []byte(outHash), cache.TTLResult); err != nil {
		r.Logger.Debug("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cacheKeyType, len(outHash))
}

// audit logs overrides that will not blend and unreadable primary text.
func (r *Runner) audit(input string, res *Result) {
	for _, k := range palette.Keys {
		v, ok := res.Overrides.Lookup(k)
		if !ok {
			continue
		}
		if _, ok := color.Parse(v); !ok {
			r.Logger.Warn("override is not a hex color, used verbatim", "input", input, "key", k, "value", v)
		}
	}
	for _, f := range res.Palette.Audit() {
		if f.Role == palette.Text && f.Below(color.MinTextContrast) {
			r.Logger.Warn("low text contrast",
				"input", input,
				"text", f.Value,
				"background", res.Palette.Background(),
				"ratio", fmt.Sprintf("%.2f", f.Contrast))
		}
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func writeOutput(path, input string, data []byte) error {
	perm := os.FileMode(0o644)
	if fi, err := os.Stat(input); err == nil {
		perm = fi.Mode().Perm()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

func checkDistinctOutputs(jobs []Job) error {
	seen := make(map[string]string, len(jobs))
	for _, j := range jobs {
		out := absPath(j.OutputPath())
		if prev, ok := seen[out]; ok {
			return errors.New(errors.ErrCodeInvalidInput, "%s and %s both write %s", prev, j.Input, j.OutputPath())
		}
		seen[out] = j.Input
	}
	return nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
