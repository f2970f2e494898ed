package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/techniq-app/techniq/internal/ui/theme"
)

// MenuItem is one row of a Menu. Disabled rows render but are skipped
// when moving the cursor.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list with a single cursor, driven by j/k or the
// arrow keys, firing the selected item's Action on enter.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	// Land the cursor on the first selectable row.
	m.Selected = m.next(-1, 1)
	return m
}

func (m Menu) Init() tea.Cmd { return nil }

// next walks from index from by step until it finds an enabled item,
// returning from when every row in that direction is disabled.
func (m Menu) next(from, step int) int {
	for i := from + step; i >= 0 && i < len(m.Items); i += step {
		if !m.Items[i].Disabled {
			return i
		}
	}
	if from < 0 {
		return 0
	}
	return from
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		m.Selected = m.next(m.Selected, -1)
	case "down", "j":
		m.Selected = m.next(m.Selected, 1)
	case "enter":
		if m.Selected < len(m.Items) {
			if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}
	return m, nil
}

var (
	menuCursor = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	menuRow    = lipgloss.NewStyle().Foreground(theme.Text)
)

func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		if i == m.Selected {
			s += menuCursor.Render("  ▸ "+item.Label) + "\n"
		} else {
			s += menuRow.Render("    "+item.Label) + "\n"
		}
	}
	return s
}
