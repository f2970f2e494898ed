package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/techniq-app/techniq/internal/ui/theme"
)

// TextInput wraps bubbles/textinput, optionally restricted to digits,
// and can show a pass or fail mark after Submit.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	MaxWidth    int
	submitted   bool
	valid       bool
}

func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	m.Focus()
	if maxWidth > 0 {
		m.CharLimit = maxWidth
	}
	return TextInput{Model: m, NumericOnly: numericOnly, MaxWidth: maxWidth}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly && isNonDigitKey(msg) {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// isNonDigitKey reports whether msg is a printable key outside 0-9.
// Control keys (backspace, enter, arrows) pass through untouched.
func isNonDigitKey(msg tea.Msg) bool {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	s := key.String()
	return len(s) == 1 && (s[0] < '0' || s[0] > '9')
}

func (t TextInput) View() string {
	view := t.Model.View()
	if !t.submitted {
		return view
	}
	if t.valid {
		return view + " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	return view + " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
}

func (t TextInput) Value() string {
	return t.Model.Value()
}

// NumericValue parses the current value as an int.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Submit freezes the validation mark shown next to the input.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
