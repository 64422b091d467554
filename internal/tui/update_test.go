package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/navigation"
)

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := newTestModel(t, 100, 40, instant)

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.False(t, m.tooSmall)
	assert.Equal(t, 40, strings.Count(m.View(), "\n")+1, "view fills the terminal height")
}

func TestUpdate_WindowSizeMsg_TooSmall(t *testing.T) {
	m := newTestModel(t, 30, 10, instant)

	assert.True(t, m.tooSmall)
	assert.Contains(t, m.View(), "Terminal too small")
	assert.False(t, m.Social().Trigger().Attached())

	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.False(t, m.tooSmall)
	assert.True(t, m.Social().Trigger().Attached())
}

func TestKeysStepThroughPages(t *testing.T) {
	m := newTestModel(t, 120, 40, instant)

	m = press(t, m, "l")
	assert.Equal(t, pathAbout, m.CurrentPath())

	m = send(t, m, keyMsg("tab"))
	assert.Equal(t, pathNotes, m.CurrentPath())

	m = press(t, m, "h")
	m = press(t, m, "h")
	m = press(t, m, "h")
	assert.Equal(t, pathContact, m.CurrentPath(), "previous wraps around")

	m = press(t, m, "4")
	assert.Equal(t, pathNeurons, m.CurrentPath())
}

func TestDigitActivatesDrawerLinkWhenOpen(t *testing.T) {
	m := newTestModel(t, 60, 30, instant)
	m = press(t, m, "m")
	require.True(t, m.Drawer().IsOpen())

	m = press(t, m, "5")

	assert.False(t, m.Drawer().IsOpen())
	assert.Equal(t, pathContact, m.CurrentPath())
}

func TestDigitCopiesSocialLinkWhenPopoverOpen(t *testing.T) {
	cb := &fakeClipboard{}
	m := newTestModel(t, 120, 40, instant, func(o *Options) { o.Clipboard = cb })
	m = press(t, m, "e")

	m, cmd := sendCmd(t, m, keyMsg("2"))
	assert.False(t, m.Social().IsOpen())
	assert.Equal(t, pathWork, m.CurrentPath())

	m = run(t, m, firstCmd(t, cmd))
	assert.Equal(t, []string{"https://github.com/jahanzebahmed"}, cb.writes)
	assert.Equal(t, "Copied https://github.com/jahanzebahmed", m.status)
}

func TestSocialLinkClickCopiesURL(t *testing.T) {
	cb := &fakeClipboard{}
	m := newTestModel(t, 120, 40, instant, func(o *Options) { o.Clipboard = cb })
	m = clickRegion(t, m, m.Social().Trigger())
	require.True(t, m.Social().IsOpen())

	panel, _ := m.Social().Panel().Bounds()
	m, cmd := clickAt(t, m, panel.X+3, panel.Y+1)
	require.NotNil(t, cmd)
	assert.False(t, m.Social().IsOpen())

	m = send(t, m, cmd())
	assert.Equal(t, []string{"https://linkedin.com/in/jahanzebahmed"}, cb.writes)
}

func TestClipboardFailureShowsError(t *testing.T) {
	cb := &fakeClipboard{err: errNoClipboard}
	m := newTestModel(t, 120, 40, instant, func(o *Options) { o.Clipboard = cb })
	m = press(t, m, "e")

	_, cmd := sendCmd(t, m, keyMsg("1"))
	m = run(t, m, firstCmd(t, cmd))

	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "no clipboard")
	assert.Contains(t, m.View(), "no clipboard")
}

func TestStatusTimeoutClearsOnlyCurrentMessage(t *testing.T) {
	m := newTestModel(t, 120, 40, instant)
	m.setStatus("first", false)
	m.setStatus("second", false)

	m = send(t, m, statusTimeoutMsg{id: 1})
	assert.Equal(t, "second", m.status)

	m = send(t, m, statusTimeoutMsg{id: 2})
	assert.Empty(t, m.status)
}

func TestPageLinkClickCopiesURL(t *testing.T) {
	cb := &fakeClipboard{}
	m := newTestModel(t, 120, 40, instant, func(o *Options) { o.Clipboard = cb })
	require.NotEmpty(t, m.links)

	spot := m.links[0]
	require.Less(t, spot.rect.Y, m.viewport.Height, "first link is on screen")

	_, cmd := clickAt(t, m, spot.rect.X, m.layout.viewportY+spot.rect.Y)
	require.NotNil(t, cmd)
	msg := cmd()

	assert.Equal(t, clipboardMsg{Text: spot.url}, msg)
	assert.Equal(t, []string{spot.url}, cb.writes)
}

func TestThemeToggleKeyAndClick(t *testing.T) {
	m := newTestModel(t, 120, 40, instant, func(o *Options) {
		o.Preference = navigation.FixedPreference(true)
	})
	require.True(t, m.IsDark())
	require.True(t, m.styles.Dark)

	m = press(t, m, "t")
	assert.False(t, m.IsDark())
	assert.False(t, m.styles.Dark)

	z := findZone(t, m, actionTheme)
	m, _ = clickAt(t, m, z.rect.X, z.rect.Y)
	assert.True(t, m.IsDark())
}

func TestDesktopNavLinkClickNavigates(t *testing.T) {
	m := newTestModel(t, 120, 40, instant)

	z := findZoneIndex(t, m, actionRoute, 2)
	m, _ = clickAt(t, m, z.rect.X, z.rect.Y)

	assert.Equal(t, pathNotes, m.CurrentPath())
}

func TestRouteChangeClosesMenus(t *testing.T) {
	m := newTestModel(t, 120, 40, instant)
	m = press(t, m, "e")
	require.True(t, m.Social().IsOpen())

	m = press(t, m, "l")

	assert.False(t, m.Social().IsOpen())
	assert.Equal(t, pathAbout, m.CurrentPath())
}

func TestEscapeDismissesMenusBeforeFilter(t *testing.T) {
	m := newTestModel(t, 60, 30, instant)
	m = press(t, m, "/")
	m = typeText(t, m, "vision")
	m = press(t, m, "enter")
	require.Equal(t, "vision", m.query)

	m = press(t, m, "m")
	m = press(t, m, "e")

	m = press(t, m, "esc")
	assert.False(t, m.Drawer().IsOpen())
	assert.False(t, m.Social().IsOpen())
	assert.Equal(t, "vision", m.query)

	m = press(t, m, "esc")
	assert.Empty(t, m.query)
}

func TestScrollPastThresholdCompactsNavbar(t *testing.T) {
	m := newTestModel(t, 60, 30, instant)
	require.Equal(t, 3, strings.Count(m.layout.navbar, "\n")+1)

	m = wheel(t, m, tea.MouseButtonWheelDown, 7) // 21 rows
	require.Equal(t, 21, m.viewport.YOffset)

	assert.True(t, m.Compact())
	assert.Equal(t, 1, strings.Count(m.layout.navbar, "\n")+1)

	m = wheel(t, m, tea.MouseButtonWheelUp, 1)
	assert.False(t, m.Compact(), "offset 18 is not past the threshold")
}

func TestScrollExactlyAtThresholdIsNotCompact(t *testing.T) {
	m := newTestModel(t, 60, 30, instant)

	m.viewport.SetYOffset(20)
	m.syncScroll()

	assert.Equal(t, 20, m.scroll.Offset())
	assert.False(t, m.Compact())
}

func TestPageChangeResetsScroll(t *testing.T) {
	m := newTestModel(t, 60, 30, instant)
	m = wheel(t, m, tea.MouseButtonWheelDown, 10)
	require.True(t, m.Compact())

	m = press(t, m, "3")

	assert.Zero(t, m.viewport.YOffset)
	assert.False(t, m.Compact())
}

func TestFilterNarrowsCards(t *testing.T) {
	m := newTestModel(t, 120, 40, instant)
	before := m.viewport.TotalLineCount()

	m = press(t, m, "/")
	require.True(t, m.filtering)
	m = typeText(t, m, "kubernetes")

	assert.Equal(t, "kubernetes", m.query)
	assert.Less(t, m.viewport.TotalLineCount(), before)
	assert.Contains(t, m.viewport.View(), "Computer Vision Platform")
	assert.NotContains(t, m.viewport.View(), "Neural Network Visualizer")

	m = press(t, m, "esc")
	assert.False(t, m.filtering)
	assert.Empty(t, m.query)
	assert.Equal(t, before, m.viewport.TotalLineCount())
}

func TestFilterIgnoredOnPagesWithoutCards(t *testing.T) {
	m := newTestModel(t, 120, 40, instant)
	m = press(t, m, "2")

	m = press(t, m, "/")

	assert.False(t, m.filtering)
}

func TestContactFormRejectsEmptySubmit(t *testing.T) {
	m := newTestModel(t, 120, 60, instant)
	m = press(t, m, "5")
	m = press(t, m, "i")
	require.True(t, m.form.editing)

	m = send(t, m, keyMsg("ctrl+s"))

	assert.True(t, m.statusErr)
	assert.Equal(t, "is required", m.form.errors["name"])
	assert.Equal(t, "is required", m.form.errors["email"])
	assert.Equal(t, "is required", m.form.errors["message"])
	assert.Contains(t, m.viewport.View(), "Name is required")
}

func TestContactFormRejectsBadEmail(t *testing.T) {
	m := newTestModel(t, 120, 60, instant)
	m = press(t, m, "5")
	m = press(t, m, "i")
	m = typeText(t, m, "Ada")
	m = send(t, m, keyMsg("tab"))
	m = typeText(t, m, "not-an-email")
	m = send(t, m, keyMsg("tab"))
	m = typeText(t, m, "Hello")

	m = send(t, m, keyMsg("ctrl+s"))

	assert.Equal(t, "must be a valid email address", m.form.errors["email"])
	assert.NotContains(t, m.form.errors, "name")
	assert.Equal(t, "Ada", m.form.name.Value(), "rejected form keeps its values")
}

func TestContactFormValidSubmitClearsForm(t *testing.T) {
	m := newTestModel(t, 120, 60, instant)
	m = press(t, m, "5")
	m = press(t, m, "enter")
	m = typeText(t, m, "Ada")
	m = send(t, m, keyMsg("enter"))
	m = typeText(t, m, "ada@example.com")
	m = send(t, m, keyMsg("enter"))
	require.Equal(t, fieldMessage, m.form.focus)
	m = typeText(t, m, "Hello there")

	m = send(t, m, keyMsg("ctrl+s"))

	assert.False(t, m.statusErr)
	assert.Contains(t, m.status, "Ada")
	assert.Empty(t, m.form.name.Value())
	assert.Empty(t, m.form.email.Value())
	assert.Empty(t, m.form.message.Value())
	assert.False(t, m.form.editing)
}

func TestFormEditingCapturesNavigationKeys(t *testing.T) {
	m := newTestModel(t, 120, 60, instant)
	m = press(t, m, "5")
	m = press(t, m, "i")

	m = typeText(t, m, "q1t")

	assert.Equal(t, pathContact, m.CurrentPath())
	assert.False(t, m.IsDark())
	assert.Equal(t, "q1t", m.form.name.Value())

	m = press(t, m, "esc")
	assert.False(t, m.form.editing)
}

func TestContentReloadedMsgReplacesContent(t *testing.T) {
	m := newTestModel(t, 120, 40, instant)
	c := content.Default()
	c.Heroes.Work.Title = "Reloaded Portfolio"

	m = send(t, m, ContentReloadedMsg{Content: c})

	assert.Contains(t, m.viewport.View(), "Reloaded Portfolio")
	assert.Equal(t, "Content reloaded", m.status)
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, 120, 40, instant)
	short := strings.Count(m.layout.bottom, "\n")

	m = press(t, m, "?")

	assert.Greater(t, strings.Count(m.layout.bottom, "\n"), short)
	assert.Equal(t, 40, strings.Count(m.View(), "\n")+1)
}

func TestAnimatedDrawerStaysVisibleWhileClosing(t *testing.T) {
	m := newTestModel(t, 60, 30, func(o *Options) { o.TransitionDuration = 200 * time.Millisecond })
	m = settle(t, m)

	m = press(t, m, "m")
	require.True(t, m.ticking)
	m = settle(t, m)
	require.True(t, m.Drawer().PanelVisible())

	m = press(t, m, "m")
	assert.False(t, m.Drawer().IsOpen())
	assert.True(t, m.Drawer().PanelVisible(), "panel animates out")
	assert.NotEmpty(t, m.layout.drawer)
	assert.False(t, m.Drawer().Listening())

	m = settle(t, m)
	assert.False(t, m.Drawer().PanelVisible())
	assert.Empty(t, m.layout.drawer)
	assert.False(t, m.Drawer().Panel().Attached())
	assert.False(t, m.ticking)
}

func TestAnimatedPageTransitionNeverRendersEmpty(t *testing.T) {
	m := newTestModel(t, 120, 40, func(o *Options) { o.TransitionDuration = 150 * time.Millisecond })
	m = settle(t, m)

	m = press(t, m, "3")
	assert.Equal(t, pathNotes, m.CurrentPath())
	assert.Equal(t, pathWork, m.shownKey, "outgoing page exits first")

	now := time.Unix(0, 0)
	for i := 0; i < 1000 && m.animating(); i++ {
		now = now.Add(m.frameInterval)
		m = send(t, m, frameMsg(now))
		require.NotEmpty(t, strings.TrimSpace(m.viewport.View()))
	}

	assert.Equal(t, pathNotes, m.shownKey)
	assert.Contains(t, m.viewport.View(), "My Notes")
}

func firstCmd(t *testing.T, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			return c
		}
		t.Fatal("empty batch")
	}
	return func() tea.Msg { return msg }
}

func findZone(t *testing.T, m Model, a action) zone {
	t.Helper()
	for _, z := range m.layout.zones {
		if z.action == a {
			return z
		}
	}
	t.Fatalf("no zone for action %d", a)
	return zone{}
}

func findZoneIndex(t *testing.T, m Model, a action, index int) zone {
	t.Helper()
	for _, z := range m.layout.zones {
		if z.action == a && z.index == index {
			return z
		}
	}
	t.Fatalf("no zone for action %d index %d", a, index)
	return zone{}
}
