package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/svgtheme/pkg/palette"
)

func TestPaletteListModelNavigation(t *testing.T) {
	m := NewPaletteListModel(palette.Default())
	if len(m.Findings) != len(palette.Roles()) {
		t.Fatalf("Findings = %d, want one per role", len(m.Findings))
	}

	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}

	next, _ := m.Update(up)
	m = next.(PaletteListModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor after up at top = %d, want 0", m.Cursor)
	}

	for n := 0; n < len(m.Findings)+3; n++ {
		next, _ = m.Update(down)
		m = next.(PaletteListModel)
	}
	if want := len(m.Findings) - 1; m.Cursor != want {
		t.Errorf("Cursor after scrolling past the end = %d, want %d", m.Cursor, want)
	}
	if m.Offset > m.Cursor || m.Cursor >= m.Offset+m.Height {
		t.Errorf("cursor %d outside window [%d, %d)", m.Cursor, m.Offset, m.Offset+m.Height)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestPaletteListModelResize(t *testing.T) {
	m := NewPaletteListModel(palette.Default())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	m = next.(PaletteListModel)
	if m.Height != 3 {
		t.Errorf("Height = %d, want the minimum of 3", m.Height)
	}

	for n := 0; n < 5; n++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(PaletteListModel)
	}
	if m.Offset != 3 {
		t.Errorf("Offset = %d, want 3", m.Offset)
	}
}

func TestPaletteListModelView(t *testing.T) {
	m := NewPaletteListModel(palette.Resolve(palette.Overrides{"--fg": "#111111"}))
	view := m.View()
	for _, want := range []string{"Palette", "background", "#ffffff", "--bg"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestDerivationsCoverRoles(t *testing.T) {
	for _, r := range palette.Roles() {
		if derivations[r] == "" {
			t.Errorf("no derivation for %s", r)
		}
	}
}

func TestPaletteRows(t *testing.T) {
	p := palette.Resolve(palette.Overrides{"--accent": "tomato"})
	rows := paletteRows(p.Audit())
	if len(rows) != len(palette.Roles()) {
		t.Fatalf("rows = %d, want %d", len(rows), len(palette.Roles()))
	}
	for _, row := range rows {
		if len(row) != 6 {
			t.Fatalf("row %v has %d columns, want 6", row, len(row))
		}
	}
	line := rows[palette.Line]
	if line[2] != "tomato" || line[4] != "—" {
		t.Errorf("unparseable accent row = %v", line)
	}
	if got := rows[palette.Background][4]; got != "1.00" {
		t.Errorf("background contrast = %q, want 1.00", got)
	}

	var low []string
	for _, f := range p.Audit() {
		if lowContrast(f) {
			low = append(low, f.Role.String())
		}
	}
	// the lighter text blends are meant to recede
	if got := strings.Join(low, ","); got != "text-secondary,text-muted,text-faint" {
		t.Errorf("low contrast roles = %s", got)
	}
}
