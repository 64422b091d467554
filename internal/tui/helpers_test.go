package tui

import (
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/navigation"
)

type fakeClipboard struct {
	writes []string
	err    error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.writes = append(f.writes, text)
	return f.err
}

var errNoClipboard = errors.New("no clipboard")

func testRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

func newTestModel(t *testing.T, width, height int, mutate ...func(*Options)) Model {
	t.Helper()
	opts := Options{
		Renderer:   testRenderer(),
		Preference: navigation.FixedPreference(false),
		Clipboard:  &fakeClipboard{},
	}
	for _, fn := range mutate {
		fn(&opts)
	}
	m := New(opts)
	return send(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func sendCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func press(t *testing.T, m Model, s string) Model {
	t.Helper()
	return send(t, m, keyMsg(s))
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func clickAt(t *testing.T, m Model, x, y int) (Model, tea.Cmd) {
	t.Helper()
	return sendCmd(t, m, tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
}

func clickRegion(t *testing.T, m Model, r *navigation.Region) Model {
	t.Helper()
	bounds, ok := r.Bounds()
	require.True(t, ok, "region is not attached")
	m, _ = clickAt(t, m, bounds.X, bounds.Y)
	return m
}

func wheel(t *testing.T, m Model, button tea.MouseButton, times int) Model {
	t.Helper()
	for i := 0; i < times; i++ {
		m = send(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: button})
	}
	return m
}

// settle runs frames until nothing animates.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	now := time.Unix(0, 0)
	for i := 0; i < 1000 && m.animating(); i++ {
		now = now.Add(m.frameInterval)
		m = send(t, m, frameMsg(now))
	}
	require.False(t, m.animating(), "transitions did not settle")
	return m
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	return send(t, m, cmd())
}

func instant(o *Options) {
	o.TransitionDuration = 0
}

func lipglossWidth(s string) int {
	return lipgloss.Width(s)
}
