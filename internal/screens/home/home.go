package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/techniq-app/techniq/internal/feed"
	"github.com/techniq-app/techniq/internal/progression"
	"github.com/techniq-app/techniq/internal/router"
	"github.com/techniq-app/techniq/internal/screen"
	feedscreen "github.com/techniq-app/techniq/internal/screens/feed"
	logsession "github.com/techniq-app/techniq/internal/screens/logsession"
	shopscreen "github.com/techniq-app/techniq/internal/screens/shop"
	"github.com/techniq-app/techniq/internal/shop"
	"github.com/techniq-app/techniq/internal/store"
	"github.com/techniq-app/techniq/internal/training"
	"github.com/techniq-app/techniq/internal/ui/components"
	"github.com/techniq-app/techniq/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu    components.Menu
	players store.PlayerRepo

	level       int
	progress    float64
	xp          int64
	streakDays  int
	freezes     int
	coins       int64
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(players store.PlayerRepo, trainingSvc *training.Service, shopSvc *shop.Service, feedSvc *feed.Service) *HomeScreen {
	h := &HomeScreen{players: players}
	h.loadStats()

	items := []components.MenuItem{
		{Label: "LOG SESSION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: logsession.New(trainingSvc)}
			}
		}},
		{Label: "SHOP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: shopscreen.New(shopSvc, players)}
			}
		}},
		{Label: "ACTIVITY FEED", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: feedscreen.New(feedSvc)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) loadStats() {
	p, err := h.players.Load(context.Background())
	if err != nil {
		return
	}
	h.level = p.Level
	h.xp = p.TotalExperience
	h.progress = progression.ProgressFraction(p.TotalExperience, p.Level)
	h.streakDays = p.CurrentStreakDays
	h.freezes = p.StreakFreezes
	h.coins = p.CoinBalance
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.RefreshStatsMsg); ok {
		h.loadStats()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Level %d", h.level)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", h.progress, true, min(width-20, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("● %d coins      ★ %d day streak      ❄ %d freezes      %d XP",
		h.coins, h.streakDays, h.freezes, h.xp)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	return b.String()
}
