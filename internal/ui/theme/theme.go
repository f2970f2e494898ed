// Package theme holds the shared color palette. Screens build their own
// lipgloss styles from these so the whole TUI reads off one scheme.
package theme

import "charm.land/lipgloss/v2"

// Pitch greens with a gold accent for the coin counters.
var (
	Primary   = lipgloss.Color("#22C55E") // pitch green
	Secondary = lipgloss.Color("#0EA5E9") // sky blue
	Accent    = lipgloss.Color("#FACC15") // gold
	Success   = lipgloss.Color("#4ADE80") // light green
	Error     = lipgloss.Color("#F43F5E") // rose
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)
