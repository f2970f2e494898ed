package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/techniq-app/techniq/internal/screen"
)

type fakeScreen struct {
	name  string
	inits int
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeScreen) View(int, int) string                    { return f.name }
func (f *fakeScreen) Title() string                           { return f.name }

func TestNavigation(t *testing.T) {
	tests := []struct {
		name       string
		msgs       func() []tea.Msg
		wantDepth  int
		wantActive string
	}{
		{
			name:       "push stacks a screen",
			msgs:       func() []tea.Msg { return []tea.Msg{PushScreenMsg{Screen: &fakeScreen{name: "shop"}}} },
			wantDepth:  2,
			wantActive: "shop",
		},
		{
			name: "pop returns to the screen below",
			msgs: func() []tea.Msg {
				return []tea.Msg{PushScreenMsg{Screen: &fakeScreen{name: "shop"}}, PopScreenMsg{}}
			},
			wantDepth:  1,
			wantActive: "home",
		},
		{
			name:       "pop at the bottom is a no-op",
			msgs:       func() []tea.Msg { return []tea.Msg{PopScreenMsg{}} },
			wantDepth:  1,
			wantActive: "home",
		},
		{
			name: "replace keeps depth",
			msgs: func() []tea.Msg {
				return []tea.Msg{
					PushScreenMsg{Screen: &fakeScreen{name: "session"}},
					ReplaceScreenMsg{Screen: &fakeScreen{name: "results"}},
				}
			},
			wantDepth:  2,
			wantActive: "results",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&fakeScreen{name: "home"})
			for _, m := range tt.msgs() {
				r.Update(m)
			}
			if r.Depth() != tt.wantDepth {
				t.Errorf("depth = %d, want %d", r.Depth(), tt.wantDepth)
			}
			if got := r.Active().Title(); got != tt.wantActive {
				t.Errorf("active = %q, want %q", got, tt.wantActive)
			}
		})
	}
}

func TestPushRunsInit(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	s := &fakeScreen{name: "shop"}
	r.Push(s)
	if s.inits != 1 {
		t.Errorf("pushed screen Init ran %d times, want 1", s.inits)
	}
}

func TestReplaceRunsInit(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	s := &fakeScreen{name: "results"}
	r.Update(ReplaceScreenMsg{Screen: s})
	if s.inits != 1 {
		t.Errorf("replacement screen Init ran %d times, want 1", s.inits)
	}
	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "feed"})
	if got := r.View(80, 24); got != "feed" {
		t.Errorf("View() = %q, want %q", got, "feed")
	}
}
