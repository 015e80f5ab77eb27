package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svgtheme/pkg/theme"
)

// themeCommand creates the theme management command.
func (c *CLI) themeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "List and inspect theme presets",
	}

	cmd.AddCommand(c.themeListCommand())
	cmd.AddCommand(c.themeShowCommand())
	cmd.AddCommand(c.themePathCommand())

	return cmd
}

// themeListCommand creates the "theme list" subcommand.
func (c *CLI) themeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and user themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.Out, StyleTitle.Render("Built-in"))
			for _, name := range theme.BuiltinNames() {
				t, _ := theme.Builtin(name)
				fmt.Fprintf(c.Out, "  %-12s %s %s\n", name, swatch(t.Bg, true), swatch(t.Fg, true))
			}

			dir, err := themeDir()
			if err != nil {
				return fmt.Errorf("get theme dir: %w", err)
			}
			names, err := theme.List(dir)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				printDetail(cmd.ErrOrStderr(), "No user themes in %s", dir)
				printNextStep(cmd.ErrOrStderr(), "Add one as <name>.toml", "svgtheme theme show dark > "+dir+"/mine.toml")
				return nil
			}
			fmt.Fprintln(c.Out, StyleTitle.Render("User"))
			for _, name := range names {
				fmt.Fprintf(c.Out, "  %s\n", name)
			}
			return nil
		},
	}
}

// themeShowCommand creates the "theme show" subcommand.
func (c *CLI) themeShowCommand() *cobra.Command {
	var showPalette bool

	cmd := &cobra.Command{
		Use:   "show <name|file>",
		Short: "Print a theme as TOML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := lookupTheme(args[0])
			if err != nil {
				return err
			}
			data, err := theme.Encode(t)
			if err != nil {
				return err
			}
			fmt.Fprint(c.Out, string(data))
			if showPalette {
				fmt.Fprintln(c.Out)
				fmt.Fprintln(c.Out, renderPaletteTable(t.Palette()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showPalette, "palette", "p", false, "also print the palette the theme resolves to")
	return cmd
}

// themePathCommand creates the "theme path" subcommand.
func (c *CLI) themePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the user theme directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := themeDir()
			if err != nil {
				return fmt.Errorf("get theme dir: %w", err)
			}
			fmt.Fprintln(c.Out, dir)
			return nil
		},
	}
}
