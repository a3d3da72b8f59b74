package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typesnip/internal/model"
	"github.com/verte-zerg/typesnip/internal/session"
)

type staticProvider map[model.Category]string

func (p staticProvider) Snippet(category model.Category) string {
	return p[category]
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	now := time.Unix(0, 0)
	clock := session.ClockFunc(func() time.Time {
		now = now.Add(time.Second)
		return now
	})
	provider := staticProvider{"English": "hi\nyo", "Go": "go"}
	engine := session.New(provider, clock, []model.Category{"English", "Go"})
	return NewModel(engine, 0)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestMenuNavigationAndStart(t *testing.T) {
	m := newTestModel(t)
	send(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.engine.Selected() != 1 {
		t.Fatalf("expected down to select Go, got %d", m.engine.Selected())
	}
	send(m, runes("k"), runes("k"))
	if m.engine.Selected() != 1 {
		t.Fatalf("expected k twice to wrap back to Go, got %d", m.engine.Selected())
	}
	cmd := send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.engine.Screen() != model.ScreenTyping {
		t.Fatalf("expected typing screen, got %s", m.engine.Screen())
	}
	if cmd == nil || !m.ticking {
		t.Fatalf("expected start to schedule a tick")
	}
	if m.engine.Category() != "Go" {
		t.Fatalf("expected Go category, got %q", m.engine.Category())
	}
}

func TestTypingDispatch(t *testing.T) {
	m := newTestModel(t)
	send(m, tea.KeyMsg{Type: tea.KeySpace})
	if m.engine.Screen() != model.ScreenTyping {
		t.Fatalf("expected space to start from the menu")
	}
	send(m, runes("hx"), tea.KeyMsg{Type: tea.KeyBackspace})
	if m.engine.Cursor() != 1 || m.engine.Errors() != 0 {
		t.Fatalf("unexpected cursor/errors: %d/%d", m.engine.Cursor(), m.engine.Errors())
	}
	send(m, runes("i"), tea.KeyMsg{Type: tea.KeyEnter}, runes("y"))
	if m.engine.Errors() != 0 || m.engine.Cursor() != 4 {
		t.Fatalf("expected enter to type newline: cursor %d errors %d", m.engine.Cursor(), m.engine.Errors())
	}
	send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.engine.Cursor() != 4 {
		t.Fatalf("expected tab to be ignored")
	}
	send(m, runes("o"))
	if m.engine.Screen() != model.ScreenResults {
		t.Fatalf("expected results after last character")
	}
}

func TestTypingIgnoresRunesPastCompletion(t *testing.T) {
	m := newTestModel(t)
	send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	send(m, runes("gor"))
	if m.engine.Screen() != model.ScreenResults || m.engine.Cursor() != 2 {
		t.Fatalf("expected completion to stop consuming pasted runes")
	}
	send(m, runes("r"))
	if m.engine.Screen() != model.ScreenTyping || m.engine.Cursor() != 0 {
		t.Fatalf("expected r to retry on results screen")
	}
}

func TestTypingQIsACharacter(t *testing.T) {
	m := newTestModel(t)
	send(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("q"))
	if m.engine.Screen() != model.ScreenTyping || m.engine.Cursor() != 1 {
		t.Fatalf("expected q to be typed, not quit")
	}
	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.engine.Screen() != model.ScreenMenu {
		t.Fatalf("expected esc to return to menu")
	}
}

func TestResultsKeys(t *testing.T) {
	m := newTestModel(t)
	send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter}, runes("go"))
	send(m, runes("n"))
	if m.engine.Screen() != model.ScreenTyping || m.engine.Category() != "Go" {
		t.Fatalf("expected n to start a new Go round")
	}
	send(m, runes("go"), runes("q"))
	if m.engine.Screen() != model.ScreenMenu {
		t.Fatalf("expected q on results to return to menu")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	if cmd := send(m, runes("q")); cmd == nil {
		t.Fatalf("expected q on menu to quit")
	}
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Fatalf("expected ctrl+c to quit while typing")
	}
}

func TestTickStopsOffTypingScreen(t *testing.T) {
	m := newTestModel(t)
	send(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("h"))
	if cmd := send(m, tickMsg(time.Now())); cmd == nil {
		t.Fatalf("expected tick to reschedule while typing")
	}
	if m.shownPct <= 0 {
		t.Fatalf("expected progress easing toward target, got %.3f", m.shownPct)
	}
	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd := send(m, tickMsg(time.Now())); cmd != nil {
		t.Fatalf("expected tick to stop on menu")
	}
	if m.ticking {
		t.Fatalf("expected ticking flag cleared")
	}
}

func TestViewPerScreen(t *testing.T) {
	m := newTestModel(t)
	send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if out := m.View(); !strings.Contains(out, "English") || !strings.Contains(out, "typesnip") {
		t.Fatalf("menu view missing categories: %s", out)
	}
	send(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("h"))
	if out := m.View(); !strings.Contains(out, "wpm") || !strings.Contains(out, "acc") {
		t.Fatalf("typing view missing stats: %s", out)
	}
	send(m, runes("i"), tea.KeyMsg{Type: tea.KeyEnter}, runes("yo"))
	out := m.View()
	if !containsAll(out, []string{"results", "WPM", "Accuracy", "100.0%", "Errors"}) {
		t.Fatalf("results view missing fields: %s", out)
	}
}

func TestFormatClock(t *testing.T) {
	if got := formatClock(75 * time.Second); got != "01:15" {
		t.Fatalf("unexpected clock: %s", got)
	}
	if got := formatClock(0); got != "00:00" {
		t.Fatalf("unexpected clock: %s", got)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
