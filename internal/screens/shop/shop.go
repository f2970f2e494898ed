package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/techniq-app/techniq/internal/screen"
	shopsvc "github.com/techniq-app/techniq/internal/shop"
	"github.com/techniq-app/techniq/internal/store"
	"github.com/techniq-app/techniq/internal/ui/layout"
	"github.com/techniq-app/techniq/internal/ui/theme"
)

// ShopScreen lists the catalog and lets the player buy items.
type ShopScreen struct {
	shop    *shopsvc.Service
	players store.PlayerRepo

	items    []shopsvc.Item
	owned    map[string]bool
	balance  int64
	freezes  int
	selected int
	status   string
	statusOK bool
}

var _ screen.Screen = (*ShopScreen)(nil)
var _ screen.KeyHintProvider = (*ShopScreen)(nil)

// New creates a new ShopScreen.
func New(shop *shopsvc.Service, players store.PlayerRepo) *ShopScreen {
	s := &ShopScreen{
		shop:    shop,
		players: players,
		items:   shopsvc.Catalog(),
	}
	s.reload()
	return s
}

func (s *ShopScreen) reload() {
	p, err := s.players.Load(context.Background())
	if err != nil {
		return
	}
	s.balance = p.CoinBalance
	s.freezes = p.StreakFreezes
	s.owned = make(map[string]bool, len(p.OwnedItems))
	for _, id := range p.OwnedItems {
		s.owned[id] = true
	}
}

func (s *ShopScreen) Init() tea.Cmd {
	return nil
}

func (s *ShopScreen) Title() string {
	return "Shop"
}

func (s *ShopScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Buy"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ShopScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.items)-1 {
			s.selected++
		}
	case "enter":
		return s.buy()
	}
	return s, nil
}

func (s *ShopScreen) buy() (screen.Screen, tea.Cmd) {
	item := s.items[s.selected]
	receipt, err := s.shop.Purchase(context.Background(), item.ID)
	switch {
	case err == nil:
		s.status = fmt.Sprintf("Bought %s!", receipt.Item.Name)
		s.statusOK = true
	case errors.Is(err, shopsvc.ErrAlreadyOwned):
		s.status = "You already own that."
		s.statusOK = false
	case errors.Is(err, shopsvc.ErrInsufficientCoins):
		s.status = "Not enough coins."
		s.statusOK = false
	default:
		s.status = fmt.Sprintf("Purchase failed: %v", err)
		s.statusOK = false
	}
	s.reload()
	return s, func() tea.Msg { return screen.RefreshStatsMsg{} }
}

func (s *ShopScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(fmt.Sprintf("● %d coins    ❄ %d freezes", s.balance, s.freezes)))
	b.WriteString("\n\n")

	var rows []string
	for i, item := range s.items {
		label := fmt.Sprintf("%-22s %5d ●", item.Name, item.Price)
		if s.owned[item.ID] {
			label += "  owned"
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "    "
		if i == s.selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			prefix = "  ▸ "
		}
		rows = append(rows, style.Render(prefix+label))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n")))
	b.WriteString("\n\n")

	if s.status != "" {
		style := lipgloss.NewStyle().Foreground(theme.Error)
		if s.statusOK {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(s.status))
	}

	return b.String()
}
