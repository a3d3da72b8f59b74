package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typesnip/internal/model"
	"github.com/verte-zerg/typesnip/internal/session"
)

// DefaultTickInterval is the live stats refresh period while typing.
const DefaultTickInterval = 100 * time.Millisecond

type tickMsg time.Time

// Model implements the Bubble Tea typing UI on top of a session engine.
type Model struct {
	engine *session.Engine
	keys   KeyMap
	help   help.Model
	bar    progress.Model

	tickInterval time.Duration
	ticking      bool

	spring      harmonica.Spring
	shownPct    float64
	shownPctVel float64

	width  int
	height int
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#82C378"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Underline(true)
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#161412")).Background(lipgloss.Color("#DCB950"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C8A05A")).Bold(true)
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#DCB950")).Bold(true)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	panelStyle       = lipgloss.NewStyle().Padding(1, 3).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A"))
	resultsStyle     = panelStyle.BorderForeground(lipgloss.Color("#DCB950"))
)

// NewModel constructs a typing TUI model. A non-positive tick interval uses
// DefaultTickInterval.
func NewModel(engine *session.Engine, tickInterval time.Duration) *Model {
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}
	bar := progress.New(progress.WithSolidFill("#DCB950"), progress.WithoutPercentage())
	return &Model{
		engine:       engine,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		bar:          bar,
		tickInterval: tickInterval,
		spring:       harmonica.NewSpring(tickInterval.Seconds(), 12.0, 1.0),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.engine.Screen() == model.ScreenTyping {
		return m.startTicking()
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		return m, m.handleTick()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.engine.Screen() {
		case model.ScreenMenu:
			return m, m.handleMenuKey(msg)
		case model.ScreenTyping:
			return m, m.handleTypingKey(msg)
		case model.ScreenResults:
			return m, m.handleResultsKey(msg)
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.engine.SelectPreviousCategory()
	case key.Matches(msg, m.keys.Down):
		m.engine.SelectNextCategory()
	case key.Matches(msg, m.keys.Start):
		m.engine.StartSession()
		return m.enterRound()
	case key.Matches(msg, m.keys.Exit):
		return tea.Quit
	}
	return nil
}

func (m *Model) handleTypingKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.engine.CancelToMenu()
		return nil
	case key.Matches(msg, m.keys.Backspace):
		m.engine.Backspace()
		return nil
	case key.Matches(msg, m.keys.Newline):
		m.engine.TypeCharacter('\n')
		return nil
	}
	switch msg.Type {
	case tea.KeySpace:
		m.engine.TypeCharacter(' ')
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		for _, r := range msg.Runes {
			if m.engine.Screen() != model.ScreenTyping {
				break
			}
			m.engine.TypeCharacter(r)
		}
	}
	return nil
}

func (m *Model) handleResultsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Retry):
		m.engine.RestartSession()
		return m.enterRound()
	case key.Matches(msg, m.keys.New):
		m.engine.NewSnippetSession()
		return m.enterRound()
	case key.Matches(msg, m.keys.Back):
		m.engine.CancelToMenu()
	}
	return nil
}

func (m *Model) enterRound() tea.Cmd {
	m.shownPct = 0
	m.shownPctVel = 0
	return m.startTicking()
}

func (m *Model) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// handleTick refreshes live stats and eases the progress bar. Ticking stops
// once the typing screen is left.
func (m *Model) handleTick() tea.Cmd {
	if m.engine.Screen() != model.ScreenTyping {
		m.ticking = false
		return nil
	}
	m.engine.Tick()
	m.shownPct, m.shownPctVel = m.spring.Update(m.shownPct, m.shownPctVel, m.engine.Progress())
	return m.tick()
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.engine.Screen() {
	case model.ScreenMenu:
		body = m.renderMenu()
	case model.ScreenTyping:
		body = m.renderTyping()
	case model.ScreenResults:
		body = m.renderResults()
	}
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) renderMenu() string {
	lines := []string{
		titleStyle.Render("typesnip"),
		footerStyle.Render("select a mode and press enter"),
		"",
	}
	for i, c := range m.engine.Categories() {
		if i == m.engine.Selected() {
			lines = append(lines, selectedStyle.Render("▶  "+string(c)))
			continue
		}
		lines = append(lines, pendingStyle.Render("   "+string(c)))
	}
	panel := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.JoinVertical(lipgloss.Center, panel, "", m.help.ShortHelpView(m.keys.menuHelp()))
}

func (m *Model) renderTyping() string {
	styled := buildStyledRunes(m.engine.Snippet(), m.engine.CharStates(), m.engine.Cursor())
	contentWidth := m.contentWidth()
	snippet := wrapStyledRunes(styled, contentWidth)
	if contentWidth > 0 {
		snippet = lipgloss.NewStyle().Width(contentWidth).Render(snippet)
	}
	m.bar.Width = contentWidth - 5
	if m.bar.Width <= 0 {
		m.bar.Width = 40
	}
	bar := m.bar.ViewAs(clampPct(m.shownPct))
	progressLine := footerStyle.Render(fmt.Sprintf("%3d%%", int(m.engine.Progress()*100)))
	sections := []string{
		m.renderStatsBar(),
		"",
		snippet,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, bar, " ", progressLine),
		"",
		m.help.ShortHelpView(m.keys.typingHelp()),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderStatsBar() string {
	live := m.engine.LiveStats()
	segments := []string{
		titleStyle.Render(string(m.engine.Category())),
		valueStyle.Render(fmt.Sprintf("%.0f wpm", live.WPM)),
		footerStyle.Render(fmt.Sprintf("%.1f%% acc", live.Accuracy)),
		footerStyle.Render(formatClock(m.engine.Elapsed())),
	}
	return strings.Join(segments, "   ")
}

func (m *Model) renderResults() string {
	res := m.engine.Result()
	rows := [][2]string{
		{"WPM", fmt.Sprintf("%.0f", res.WPM)},
		{"Accuracy", fmt.Sprintf("%.1f%%", res.Accuracy)},
		{"Time", fmt.Sprintf("%.1fs", res.Elapsed.Seconds())},
		{"Errors", fmt.Sprintf("%d", res.Errors)},
		{"Characters", fmt.Sprintf("%d", res.Characters)},
	}
	lines := []string{titleStyle.Render("results · " + string(res.Category)), ""}
	for _, row := range rows {
		style := valueStyle
		if row[0] == "Errors" {
			style = correctStyle.Bold(true)
			if res.Errors > 0 {
				style = incorrectStyle.Bold(true)
			}
		}
		lines = append(lines, footerStyle.Render(fmt.Sprintf("%-12s", row[0]))+style.Render(row[1]))
	}
	panel := resultsStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.JoinVertical(lipgloss.Center, panel, "", m.help.ShortHelpView(m.keys.resultsHelp()))
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	w := int(float64(m.width) * 0.80)
	if w < 1 {
		w = 1
	}
	return w
}

func formatClock(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
