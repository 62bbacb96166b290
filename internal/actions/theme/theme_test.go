package theme

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/fsbteam/chat/internal/dispatchers"
	"github.com/fsbteam/chat/internal/ui/style"
	"github.com/fsbteam/chat/internal/usage"
)

var testThemes = map[string]style.ColorConfig{
	"ocean-dark": {Success: "42", Error: "196", Info: "45", Muted: "245", Header: "bold", Self: "81", Peer: "252", Notice: "214"},
	"mono-light": {Header: "bold"},
}

type captured struct {
	out   strings.Builder
	lines []string
}

func newTestDeps(c *captured, current string) Deps {
	return Deps{
		Out: &c.out,
		Edit: func(fn func([]string) ([]string, error)) error {
			updated, err := fn(append([]string(nil), c.lines...))
			if err != nil || updated == nil {
				return err
			}
			c.lines = updated
			return nil
		},
		Get: func(key string) (string, bool) {
			if key == themeKey && current != "" {
				return current, true
			}
			return "", false
		},
		Names:  []string{"ocean-dark", "mono-light"},
		Themes: testThemes,
	}
}

func noFlags() *dispatchers.ParsedFlags {
	return dispatchers.NewParsedFlags(nil)
}

func TestList_MarksCurrent(t *testing.T) {
	c := &captured{}
	err := list(nil, noFlags(), newTestDeps(c, "mono-light"))

	require.NoError(t, err)
	out := c.out.String()
	require.Contains(t, out, "Available themes (* = current)")
	require.Contains(t, out, "* mono-light")
	require.Contains(t, out, "  ocean-dark")
	require.Contains(t, out, "fsb theme set <name>")
}

func TestSet_Success(t *testing.T) {
	c := &captured{lines: []string{"server_addr=chat.example.org:7777"}}
	err := setTheme([]string{"ocean-dark"}, noFlags(), newTestDeps(c, ""))

	require.NoError(t, err)
	require.Equal(t, []string{"server_addr=chat.example.org:7777", "theme=ocean-dark"}, c.lines)
	require.Contains(t, c.out.String(), "theme set to ocean-dark")
}

func TestSet_BaseName(t *testing.T) {
	c := &captured{}
	err := setTheme([]string{"ocean"}, noFlags(), newTestDeps(c, ""))

	require.NoError(t, err)
	require.Equal(t, []string{"theme=ocean"}, c.lines)
}

func TestSet_MissingArgument(t *testing.T) {
	err := setTheme(nil, noFlags(), Deps{})

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrMissingArgument, ue.Kind)
}

func TestSet_UnknownTheme(t *testing.T) {
	c := &captured{}
	err := setTheme([]string{"plaid"}, noFlags(), newTestDeps(c, ""))

	require.EqualError(t, err, "unknown theme: plaid")
	require.Contains(t, c.out.String(), "available themes:")
	require.Contains(t, c.out.String(), "  ocean-dark")
	require.Nil(t, c.lines)
}

func TestSet_EditError(t *testing.T) {
	c := &captured{}
	deps := newTestDeps(c, "")
	deps.Edit = func(func([]string) ([]string, error)) error { return errors.New("disk full") }

	err := setTheme([]string{"ocean-dark"}, noFlags(), deps)
	require.EqualError(t, err, "disk full")
}

func TestRenderColorPreview(t *testing.T) {
	preview := renderColorPreview(testThemes["ocean-dark"])

	for _, label := range []string{"success", "error", "info", "muted", "you", "peer", "notice"} {
		require.Contains(t, preview, label)
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		name      string
		m         model
		wantOut   string
		wantLines []string
	}{
		{"cancelled", model{cancelled: true}, "Cancelled\n", nil},
		{"unchanged", model{chosen: "mono-light"}, "Theme mono-light is already active\n", nil},
		{"saved", model{chosen: "ocean-dark"}, "theme set to ocean-dark\n", []string{"theme=ocean-dark"}},
		{"nothing chosen", model{}, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &captured{}
			require.NoError(t, report(tt.m, "mono-light", newTestDeps(c, "mono-light")))
			require.Equal(t, tt.wantOut, c.out.String())
			require.Equal(t, tt.wantLines, c.lines)
		})
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m model, keys ...string) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(model)
	}
	return m, cmd
}

func TestModel_StartsOnCurrent(t *testing.T) {
	m := newModel(newTestDeps(&captured{}, ""), "mono-light")

	require.Equal(t, 1, m.cursor)
	require.Nil(t, m.Init())
}

func TestModel_Navigation(t *testing.T) {
	m := newModel(newTestDeps(&captured{}, ""), "ocean-dark")

	tests := []struct {
		keys []string
		want int
	}{
		{[]string{"down"}, 1},
		{[]string{"down", "down"}, 0},
		{[]string{"up"}, 1},
		{[]string{"j"}, 1},
		{[]string{"k"}, 1},
		{[]string{"G"}, 1},
		{[]string{"G", "g"}, 0},
		{[]string{"x"}, 0},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.keys, ","), func(t *testing.T) {
			got, cmd := update(t, m, tt.keys...)
			require.Equal(t, tt.want, got.cursor)
			require.Nil(t, cmd)
		})
	}
}

func TestModel_Select(t *testing.T) {
	m := newModel(newTestDeps(&captured{}, ""), "ocean-dark")

	got, cmd := update(t, m, "down", "enter")

	require.Equal(t, "mono-light", got.chosen)
	require.False(t, got.cancelled)
	require.NotNil(t, cmd)
}

func TestModel_Cancel(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		m := newModel(newTestDeps(&captured{}, ""), "ocean-dark")

		got, cmd := update(t, m, k)

		require.True(t, got.cancelled, k)
		require.Empty(t, got.chosen)
		require.NotNil(t, cmd)
	}
}

func TestModel_IgnoresOtherMessages(t *testing.T) {
	m := newModel(newTestDeps(&captured{}, ""), "ocean-dark")

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	require.Equal(t, m, next.(model))
	require.Nil(t, cmd)
}

func TestModel_View(t *testing.T) {
	m := newModel(newTestDeps(&captured{}, ""), "ocean-dark")

	view := m.View()

	require.Contains(t, view, "Select a theme:")
	require.Contains(t, view, "✓ ")
	require.Contains(t, view, "mono-light")
	require.Contains(t, view, "Preview: ")
	require.Contains(t, view, "[Alice] finished chapter 3?")
	require.Contains(t, view, "select")
}

func TestModel_ViewWithoutThemes(t *testing.T) {
	require.Equal(t, "No themes available.\n", model{}.View())
}
