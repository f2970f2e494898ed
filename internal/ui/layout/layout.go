// Package layout draws the fixed chrome around every screen: the header
// bar with coin and streak counters, the key-hint footer, and the frame
// that stacks them with the screen content in between.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/techniq-app/techniq/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer, e.g. {"q", "quit"}.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal cannot fit the UI.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Window too small\n\nTechnIQ needs at least %d x %d\n(currently %d x %d)",
			MinWidth, MinHeight, width, height,
		))
}

// bar is the shared bordered strip used by header and footer.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// spread lays left, center and right on one line, centering the middle
// segment and keeping at least one space between neighbors.
func spread(left, center, right string, width int) string {
	inner := width - 4 // border and padding
	if inner < 0 {
		inner = 0
	}
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	gapL := (inner-cw)/2 - lw
	if gapL < 1 {
		gapL = 1
	}
	gapR := inner - lw - gapL - cw - rw
	if gapR < 1 {
		gapR = 1
	}
	return left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
}

// RenderHeader draws the top bar: app name, screen title, then the coin
// balance and current streak on the right.
func RenderHeader(title string, coins int64, streak int, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  TechnIQ")
	name := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	counter := lipgloss.NewStyle().Foreground(theme.Accent)
	gap := lipgloss.NewStyle().Foreground(theme.TextDim).Render("   ")
	wallet := counter.Render(fmt.Sprintf("● %d", coins)) + gap +
		counter.Render(fmt.Sprintf("★ %d day", streak))

	return bar(spread(brand, name, wallet, width), width)
}

// RenderFooter draws the bottom bar listing the screen's key bindings.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content and footer, stretching the content
// region to fill whatever height the bars leave over.
func RenderFrame(header, content, footer string, width, height int) string {
	body := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if body < 0 {
		body = 0
	}
	middle := lipgloss.NewStyle().Width(width).Height(body).Render(content)
	return header + "\n" + middle + "\n" + footer
}
