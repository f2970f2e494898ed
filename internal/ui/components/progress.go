package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/techniq-app/techniq/internal/ui/theme"
)

// ProgressBar renders a horizontal fill bar, optionally prefixed with a
// label and suffixed with the percentage.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

func (p ProgressBar) View() string {
	var prefix, suffix string
	if p.Label != "" {
		prefix = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	if p.ShowPercent {
		suffix = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	track := p.Width - lipgloss.Width(prefix)
	if p.ShowPercent {
		track -= 6
	}
	if track < 4 {
		track = 4
	}

	filled := int(float64(track) * p.Percent)
	filled = max(0, min(filled, track))

	bar := lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", track-filled))

	return prefix + bar + suffix
}
