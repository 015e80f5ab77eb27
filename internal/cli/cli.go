package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgtheme/pkg/buildinfo"
	"github.com/matzehuels/svgtheme/pkg/cache"
	"github.com/matzehuels/svgtheme/pkg/errors"
	"github.com/matzehuels/svgtheme/pkg/palette"
	"github.com/matzehuels/svgtheme/pkg/pipeline"
	"github.com/matzehuels/svgtheme/pkg/theme"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "svgtheme"

	// themesDirName is the theme directory below the config directory.
	themesDirName = "themes"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // command output; status and logs go to stderr
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "svgtheme resolves themed SVG diagram templates",
		Long: `svgtheme turns diagram templates that reference CSS custom properties
(var(--_node-fill), var(--_text), ...) into self-contained SVGs. The palette
is derived from two base colors declared in the template, a theme preset or
--set flags.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.themeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/svgtheme/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// themeDir returns the user theme directory (~/.config/svgtheme/themes/).
func themeDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, themesDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, themesDirName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// lookupTheme resolves a --theme reference against the built-ins and the
// user theme directory.
func lookupTheme(ref string) (theme.Theme, error) {
	var dirs []string
	if dir, err := themeDir(); err == nil {
		dirs = append(dirs, dir)
	}
	return theme.Lookup(ref, dirs...)
}

// parseSet parses repeated --set name=value flags. A missing "--" prefix
// is added so that --set bg=#000 and --set --bg=#000 are equivalent.
func parseSet(values []string) (palette.Overrides, error) {
	o := palette.Overrides{}
	for _, v := range values {
		name, value, ok := strings.Cut(v, "=")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidOverride, "invalid --set %q (want name=value)", v)
		}
		name = strings.TrimSpace(name)
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		value = strings.TrimSpace(value)
		if err := errors.ValidateOverrideName(name); err != nil {
			return nil, err
		}
		if err := errors.ValidateOverrideValue(value); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidOverride, err, "--set %s", name)
		}
		o[name] = value
	}
	return o, nil
}

// buildOverrides layers --set values over the selected theme.
func buildOverrides(themeRef string, set []string) (palette.Overrides, error) {
	o := palette.Overrides{}
	if themeRef != "" {
		t, err := lookupTheme(themeRef)
		if err != nil {
			return nil, err
		}
		o = t.Overrides()
	}
	flags, err := parseSet(set)
	if err != nil {
		return nil, err
	}
	return o.Merge(flags), nil
}
