package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgtheme/pkg/color"
	"github.com/matzehuels/svgtheme/pkg/errors"
	"github.com/matzehuels/svgtheme/pkg/palette"
)

// paletteOpts holds the command-line flags for the palette command.
type paletteOpts struct {
	theme       string
	set         []string
	interactive bool
}

// paletteCommand creates the palette inspection command.
func (c *CLI) paletteCommand() *cobra.Command {
	var opts paletteOpts

	cmd := &cobra.Command{
		Use:   "palette [input.svg]",
		Short: "Show the palette a template resolves to",
		Long: `Palette prints every role with its variable, resolved value, a swatch and
its contrast against the background. Text roles below a 4.5:1 ratio are
flagged. Without an input the default palette (plus --theme and --set) is
shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := buildOverrides(opts.theme, opts.set)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				doc, err := readDocument(args[0])
				if err != nil {
					return err
				}
				overrides = palette.ExtractOverrides(doc).Merge(overrides)
			}
			p := palette.Resolve(overrides)

			if opts.interactive {
				_, err := tea.NewProgram(NewPaletteListModel(p)).Run()
				return err
			}
			fmt.Fprintln(c.Out, renderPaletteTable(p))
			if f := p.Audit()[palette.Text]; f.Below(color.MinTextContrast) {
				printWarning(cmd.ErrOrStderr(), "text %s on %s has %.2f:1 contrast (want %.1f:1)",
					f.Value, p.Background(), f.Contrast, color.MinTextContrast)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "theme preset name or file (.toml, .yaml)")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "override a base color, e.g. --set bg=#0b0b0c (repeatable)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the palette interactively")

	return cmd
}

func readDocument(path string) (string, error) {
	if err := errors.ValidatePath(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	return string(data), nil
}

// paletteRows formats the audit of p as table rows:
// role, variable, value, swatch, contrast, distance.
func paletteRows(findings []palette.Finding) [][]string {
	rows := make([][]string, 0, len(findings))
	for _, f := range findings {
		contrast, distance := "—", "—"
		if f.Parsed {
			contrast = fmt.Sprintf("%.2f", f.Contrast)
			distance = fmt.Sprintf("%.1f", f.Distance*100)
		}
		rows = append(rows, []string{
			f.Role.String(),
			f.Role.Var(),
			f.Value,
			swatch(f.Value, f.Parsed),
			contrast,
			distance,
		})
	}
	return rows
}

// lowContrast reports whether f is a text role that is hard to read.
func lowContrast(f palette.Finding) bool {
	return f.Role.TextBearing() && f.Below(color.MinTextContrast)
}

func renderPaletteTable(p palette.Palette) string {
	findings := p.Audit()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Role", "Variable", "Value", "", "Contrast", "ΔE").
		Rows(paletteRows(findings)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(findings) {
				return base
			}
			switch col {
			case 1:
				return base.Foreground(colorDim)
			case 4:
				if lowContrast(findings[row]) {
					return base.Foreground(colorYellow)
				}
				return base.Foreground(colorGray)
			case 5:
				return base.Foreground(colorGray)
			}
			return base
		})

	return t.Render()
}
