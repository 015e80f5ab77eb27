package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/svgtheme/pkg/palette"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// derivations describes where each role's value comes from.
var derivations = map[palette.Role]string{
	palette.Background:    "--bg, else #ffffff",
	palette.Foreground:    "--fg, else #27272a",
	palette.Text:          "foreground",
	palette.TextSecondary: "--muted, else 60% foreground",
	palette.TextMuted:     "--muted, else 40% foreground",
	palette.TextFaint:     "25% foreground",
	palette.Line:          "--accent, else 70% foreground",
	palette.Arrow:         "--accent, else 70% foreground",
	palette.NodeFill:      "--surface, else 4% foreground",
	palette.NodeStroke:    "--border, else 25% foreground",
	palette.GroupFill:     "background",
	palette.GroupHeader:   "6% foreground",
	palette.InnerStroke:   "15% foreground",
	palette.KeyBadge:      "12% foreground",
}

// =============================================================================
// PaletteListModel - Interactive palette browser
// =============================================================================

// PaletteListModel is the bubbletea model for browsing a resolved palette.
type PaletteListModel struct {
	Palette  palette.Palette
	Findings []palette.Finding
	Cursor   int
	Height   int
	Offset   int
}

// NewPaletteListModel creates a browser over every role of p.
func NewPaletteListModel(p palette.Palette) PaletteListModel {
	return PaletteListModel{
		Palette:  p,
		Findings: p.Audit(),
		Height:   len(palette.Roles()),
	}
}

func (m PaletteListModel) Init() tea.Cmd {
	return nil
}

func (m PaletteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Findings)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		// title, help, blank line and the detail block
		m.Height = msg.Height - 10
		if m.Height < 3 {
			m.Height = 3
		}
	}
	return m, nil
}

func (m PaletteListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Palette"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Findings))
	for i := m.Offset; i < end; i++ {
		f := m.Findings[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-15s %-9s", cursor, f.Role, f.Value)
		switch {
		case i == m.Cursor:
			line = listSelectedStyle.Render(line)
		case lowContrast(f):
			line = StyleWarning.Render(line)
		default:
			line = listNormalStyle.Render(line)
		}
		b.WriteString(line + " " + swatch(f.Value, f.Parsed) + "\n")
	}

	if len(m.Findings) > 0 {
		b.WriteString("\n")
		b.WriteString(m.detail(m.Findings[m.Cursor]))
	}
	return b.String()
}

func (m PaletteListModel) detail(f palette.Finding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s\n", listDimStyle.Render("variable  "), f.Role.Var())
	fmt.Fprintf(&b, "  %s %s\n", listDimStyle.Render("from      "), derivations[f.Role])
	if !f.Parsed {
		fmt.Fprintf(&b, "  %s %s\n", listDimStyle.Render("contrast  "), "not a hex color")
		return b.String()
	}
	ratio := fmt.Sprintf("%.2f:1 against %s", f.Contrast, m.Palette.Background())
	if lowContrast(f) {
		ratio = StyleWarning.Render(ratio + " (low)")
	}
	fmt.Fprintf(&b, "  %s %s\n", listDimStyle.Render("contrast  "), ratio)
	return b.String()
}
