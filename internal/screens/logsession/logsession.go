package logsession

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/techniq-app/techniq/internal/router"
	"github.com/techniq-app/techniq/internal/screen"
	"github.com/techniq-app/techniq/internal/screens/summary"
	"github.com/techniq-app/techniq/internal/training"
	"github.com/techniq-app/techniq/internal/ui/components"
	"github.com/techniq-app/techniq/internal/ui/layout"
	"github.com/techniq-app/techniq/internal/ui/theme"
)

// Form steps in order.
const (
	stepExercises = iota
	stepCompleted
	stepIntensity
	stepDuration
	stepRating
	stepNotes
)

// LogScreen is the multi-step session entry form.
type LogScreen struct {
	training *training.Service

	step  int
	input components.TextInput
	err   string

	exerciseCount int
	completed     int
	intensity     int
	durationMins  int
	rating        int
	notes         string
}

var _ screen.Screen = (*LogScreen)(nil)
var _ screen.KeyHintProvider = (*LogScreen)(nil)

// New creates a new session entry form.
func New(trainingSvc *training.Service) *LogScreen {
	return &LogScreen{
		training: trainingSvc,
		input:    components.NewTextInput("number of exercises", true, 3),
	}
}

func (l *LogScreen) Init() tea.Cmd {
	return l.input.Init()
}

func (l *LogScreen) Title() string {
	return "Log Session"
}

func (l *LogScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Cancel"},
	}
}

// prompts maps each step to its question and whether input is numeric.
var prompts = []struct {
	question string
	numeric  bool
	optional bool
}{
	{"How many exercises did you train?", true, false},
	{"How many did you complete?", true, false},
	{"How intense was the session? (0-10)", true, false},
	{"How long did you train, in minutes?", true, false},
	{"Rate the session 1-5 (Enter to skip)", true, true},
	{"Any notes? (Enter to skip)", false, true},
}

func (l *LogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return l.submitStep()
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

// submitStep validates the current answer and advances the form. The last
// step hands the assembled session to the training service.
func (l *LogScreen) submitStep() (screen.Screen, tea.Cmd) {
	value := strings.TrimSpace(l.input.Value())

	switch l.step {
	case stepExercises:
		n, err := l.input.NumericValue()
		if err != nil || n < 0 {
			l.err = "Enter a number."
			return l, nil
		}
		l.exerciseCount = n
	case stepCompleted:
		n, err := l.input.NumericValue()
		if err != nil || n < 0 || n > l.exerciseCount {
			l.err = fmt.Sprintf("Enter a number between 0 and %d.", l.exerciseCount)
			return l, nil
		}
		l.completed = n
	case stepIntensity:
		n, err := l.input.NumericValue()
		if err != nil || n < 0 || n > 10 {
			l.err = "Enter a number between 0 and 10."
			return l, nil
		}
		l.intensity = n
	case stepDuration:
		n, err := l.input.NumericValue()
		if err != nil || n <= 0 {
			l.err = "Enter a positive number of minutes."
			return l, nil
		}
		l.durationMins = n
	case stepRating:
		if value != "" {
			n, err := l.input.NumericValue()
			if err != nil || n < 1 || n > 5 {
				l.err = "Enter 1-5, or leave empty to skip."
				return l, nil
			}
			l.rating = n
		}
	case stepNotes:
		l.notes = value
		return l.finish()
	}

	l.step++
	l.err = ""
	numeric := prompts[l.step].numeric
	width := 3
	if !numeric {
		width = 200
	}
	l.input = components.NewTextInput("", numeric, width)
	return l, l.input.Init()
}

func (l *LogScreen) finish() (screen.Screen, tea.Cmd) {
	sess := training.NewSession()
	sess.Intensity = l.intensity
	sess.Rating = l.rating
	sess.Notes = l.notes
	sess.Duration = time.Duration(l.durationMins) * time.Minute
	sess.EndedEarly = l.completed < l.exerciseCount
	for i := 0; i < l.exerciseCount; i++ {
		sess.Exercises = append(sess.Exercises, training.Exercise{
			Name:      fmt.Sprintf("Exercise %d", i+1),
			Completed: i < l.completed,
		})
	}

	result, err := l.training.Complete(context.Background(), sess)
	if err != nil {
		l.err = fmt.Sprintf("Could not record session: %v", err)
		return l, nil
	}

	return l, tea.Batch(
		func() tea.Msg { return router.PopScreenMsg{} },
		func() tea.Msg { return router.PushScreenMsg{Screen: summary.New(result)} },
		func() tea.Msg { return screen.RefreshStatsMsg{} },
	)
}

func (l *LogScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(prompts[l.step].question))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, l.input.View()))
	b.WriteString("\n\n")

	if l.err != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(l.err))
		b.WriteString("\n")
	}

	progress := fmt.Sprintf("Step %d of %d", l.step+1, len(prompts))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(progress))

	return b.String()
}
