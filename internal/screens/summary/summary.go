package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/techniq-app/techniq/internal/progression"
	"github.com/techniq-app/techniq/internal/router"
	"github.com/techniq-app/techniq/internal/screen"
	"github.com/techniq-app/techniq/internal/training"
	"github.com/techniq-app/techniq/internal/ui/layout"
	"github.com/techniq-app/techniq/internal/ui/theme"
)

// SummaryScreen displays what a completed session earned.
type SummaryScreen struct {
	result *training.Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result *training.Result) *SummaryScreen {
	return &SummaryScreen{result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.result == nil || s.result.Outcome == nil {
		return ""
	}
	out := s.result.Outcome

	var b strings.Builder
	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Session complete!")
	b.WriteString("\n")

	for _, line := range breakdownLines(out.Breakdown) {
		center(lipgloss.NewStyle().Foreground(theme.Text), line)
	}
	center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
		fmt.Sprintf("Total: +%d XP", out.Breakdown.Total()))
	b.WriteString("\n")

	if out.NewLevel != nil {
		center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
			fmt.Sprintf("LEVEL UP! You are now level %d", *out.NewLevel))
		b.WriteString("\n")
	}

	streakLine := fmt.Sprintf("★ %d day streak", out.StreakDays)
	if out.UsedFreeze {
		streakLine += "  (freeze used)"
	}
	center(lipgloss.NewStyle().Foreground(theme.TextDim), streakLine)
	center(lipgloss.NewStyle().Foreground(theme.Accent),
		fmt.Sprintf("● %d coins", out.CoinTotal))

	for _, a := range s.result.Unlocked {
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
			fmt.Sprintf("Achievement unlocked: %s", a.Name))
		center(lipgloss.NewStyle().Foreground(theme.TextDim), a.Description)
	}

	return b.String()
}

// breakdownLines renders the non-zero reward components.
func breakdownLines(bd progression.Breakdown) []string {
	var lines []string
	add := func(label string, amount int64) {
		if amount > 0 {
			lines = append(lines, fmt.Sprintf("%-22s +%d XP", label, amount))
		}
	}
	add("Session", bd.Base)
	add("Intensity", bd.IntensityBonus)
	add("First of the day", bd.FirstSessionBonus)
	add("All exercises done", bd.CompletionBonus)
	add("Rated", bd.RatingBonus)
	add("Notes", bd.NotesBonus)
	add("Streak milestone", bd.StreakBonus)
	return lines
}
