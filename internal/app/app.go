package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/techniq-app/techniq/internal/achievements"
	"github.com/techniq-app/techniq/internal/economy"
	"github.com/techniq-app/techniq/internal/feed"
	"github.com/techniq-app/techniq/internal/progression"
	"github.com/techniq-app/techniq/internal/router"
	"github.com/techniq-app/techniq/internal/screen"
	"github.com/techniq-app/techniq/internal/screens/home"
	"github.com/techniq-app/techniq/internal/shop"
	"github.com/techniq-app/techniq/internal/store"
	"github.com/techniq-app/techniq/internal/training"
	"github.com/techniq-app/techniq/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	players store.PlayerRepo
	width   int
	height  int

	coins      int64
	streakDays int
}

// newAppModel builds the service graph over the store and starts on the
// home screen.
func newAppModel(st *store.Store) AppModel {
	players := st.PlayerRepo()
	events := st.EventRepo()

	econ := economy.NewService(players, events)
	ledger := progression.NewLedger(players, econ, time.Local)
	ach := achievements.NewService(players, events, econ)
	feedSvc := feed.NewService(st.FeedRepo())
	trainingSvc := training.NewService(events, ledger, ach, feedSvc)
	shopSvc := shop.NewService(players, econ)

	m := AppModel{
		router:  router.New(home.New(players, trainingSvc, shopSvc, feedSvc)),
		players: players,
	}
	m.refreshStats()
	return m
}

func (m *AppModel) refreshStats() {
	p, err := m.players.Load(context.Background())
	if err != nil {
		return
	}
	m.coins = p.CoinBalance
	m.streakDays = p.CurrentStreakDays
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.RefreshStatsMsg:
		m.refreshStats()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.coins, m.streakDays, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program over the given store.
func Run(st *store.Store) error {
	p := tea.NewProgram(newAppModel(st))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
