package feed

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	feedsvc "github.com/techniq-app/techniq/internal/feed"
	"github.com/techniq-app/techniq/internal/screen"
	"github.com/techniq-app/techniq/internal/store"
	"github.com/techniq-app/techniq/internal/ui/layout"
	"github.com/techniq-app/techniq/internal/ui/theme"
)

const feedLimit = 20

// FeedScreen shows the recent activity feed.
type FeedScreen struct {
	feed     *feedsvc.Service
	posts    []store.FeedPostRecord
	selected int
}

var _ screen.Screen = (*FeedScreen)(nil)
var _ screen.KeyHintProvider = (*FeedScreen)(nil)

// New creates a new FeedScreen.
func New(feed *feedsvc.Service) *FeedScreen {
	f := &FeedScreen{feed: feed}
	f.reload()
	return f
}

func (f *FeedScreen) reload() {
	posts, err := f.feed.Recent(context.Background(), feedLimit)
	if err != nil {
		return
	}
	f.posts = posts
	if f.selected >= len(f.posts) {
		f.selected = 0
	}
}

func (f *FeedScreen) Init() tea.Cmd {
	return nil
}

func (f *FeedScreen) Title() string {
	return "Activity Feed"
}

func (f *FeedScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Like"},
		{Key: "Esc", Description: "Back"},
	}
}

func (f *FeedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if f.selected > 0 {
			f.selected--
		}
	case "down", "j":
		if f.selected < len(f.posts)-1 {
			f.selected++
		}
	case "enter":
		if f.selected < len(f.posts) {
			_, _ = f.feed.Like(context.Background(), f.posts[f.selected].PostID)
			f.reload()
		}
	}
	return f, nil
}

func kindIcon(kind string) string {
	switch kind {
	case feedsvc.KindLevelUp:
		return "▲"
	case feedsvc.KindAchievement:
		return "🏆"
	default:
		return "⚽"
	}
}

func (f *FeedScreen) View(width, height int) string {
	if len(f.posts) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nNothing here yet. Go train!")
	}

	var rows []string
	for i, p := range f.posts {
		line := fmt.Sprintf("%s  %s  %s", kindIcon(p.Kind), p.CreatedAt.Format("Jan 2"), p.Body)
		if p.Likes > 0 {
			line += lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("  ♥ %d", p.Likes))
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "    "
		if i == f.selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary)
			prefix = "  ▸ "
		}
		rows = append(rows, style.Render(prefix+line))
	}

	return "\n" + strings.Join(rows, "\n")
}
