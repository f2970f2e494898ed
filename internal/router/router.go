// Package router owns TUI navigation. Screens never hold references to
// each other; they emit PushScreenMsg or PopScreenMsg and the router
// maintains the stack, so "back" always works without screens knowing
// where they were opened from.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/techniq-app/techniq/internal/screen"
)

// PushScreenMsg opens a screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the current screen, returning to the one below.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the current screen in place, keeping the stack
// depth. Used for flows like session -> results where going back to the
// replaced screen would make no sense.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router is the screen stack. The bottom screen can never be popped.
type Router struct {
	stack []screen.Screen
}

func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

func (r *Router) top() int { return len(r.stack) - 1 }

// Push opens s on top of the stack and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the active screen. Popping the bottom screen is a no-op.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:r.top()]
	}
	return nil
}

// Replace swaps the active screen for s and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[r.top()] = s
	return s.Init()
}

// Active returns the screen currently receiving input, or nil on an
// empty stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[r.top()]
}

// Depth reports how many screens are stacked.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update intercepts navigation messages and forwards everything else to
// the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	next, cmd := active.Update(msg)
	r.stack[r.top()] = next
	return cmd
}

// View renders the active screen at the given size.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
