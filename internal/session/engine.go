// Package session implements the typing round state machine and live stats.
package session

import (
	"time"

	"github.com/verte-zerg/typesnip/internal/model"
	"github.com/verte-zerg/typesnip/internal/stats"
)

// Provider returns a snippet for a category. It must not fail; providers
// backed by fallible storage are expected to fall back internally.
type Provider interface {
	Snippet(category model.Category) string
}

// Engine owns the state of a typing session. It is not safe for concurrent
// use; callers serialize commands and ticks.
type Engine struct {
	provider Provider
	clock    Clock

	screen     model.Screen
	categories []model.Category
	selected   int
	category   model.Category

	snippet    []rune
	charStates []model.CharState
	cursor     int
	errors     int

	started    bool
	startedAt  time.Time
	finished   bool
	finishedAt time.Time

	live model.LiveStats
}

// New constructs an engine on the menu screen. A nil clock uses SystemClock.
func New(provider Provider, clock Clock, categories []model.Category) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	e := &Engine{
		provider:   provider,
		clock:      clock,
		screen:     model.ScreenMenu,
		categories: append([]model.Category(nil), categories...),
		live:       stats.Initial(),
	}
	if len(e.categories) > 0 {
		e.category = e.categories[0]
	}
	return e
}

// Select moves the menu selection to the named category if it is listed.
func (e *Engine) Select(category model.Category) bool {
	for i, c := range e.categories {
		if c == category {
			e.selected = i
			return true
		}
	}
	return false
}

// SelectNextCategory moves the menu selection forward, wrapping to the first.
func (e *Engine) SelectNextCategory() {
	if e.screen != model.ScreenMenu || len(e.categories) == 0 {
		return
	}
	e.selected = (e.selected + 1) % len(e.categories)
}

// SelectPreviousCategory moves the menu selection back, wrapping to the last.
func (e *Engine) SelectPreviousCategory() {
	if e.screen != model.ScreenMenu || len(e.categories) == 0 {
		return
	}
	e.selected = (e.selected - 1 + len(e.categories)) % len(e.categories)
}

// StartSession commits the selected category and begins a round with a fresh snippet.
func (e *Engine) StartSession() {
	if e.screen != model.ScreenMenu || len(e.categories) == 0 {
		return
	}
	e.category = e.categories[e.selected]
	e.load(e.fetch())
}

// CancelToMenu abandons the current round or leaves the results screen.
func (e *Engine) CancelToMenu() {
	if e.screen == model.ScreenMenu {
		return
	}
	e.screen = model.ScreenMenu
}

// RestartSession replays the finished round's snippet.
func (e *Engine) RestartSession() {
	if e.screen != model.ScreenResults {
		return
	}
	e.load(e.snippet)
}

// NewSnippetSession starts a round with a new snippet from the same category.
func (e *Engine) NewSnippetSession() {
	if e.screen != model.ScreenResults {
		return
	}
	e.load(e.fetch())
}

// TypeCharacter records a keystroke against the character under the cursor.
func (e *Engine) TypeCharacter(c rune) {
	if e.screen != model.ScreenTyping || e.cursor >= len(e.snippet) {
		return
	}
	now := e.clock.Now()
	if !e.started {
		e.started = true
		e.startedAt = now
	}
	if e.snippet[e.cursor] == c {
		e.charStates[e.cursor] = model.Correct
	} else {
		e.charStates[e.cursor] = model.Wrong
		e.errors++
	}
	e.cursor++
	if e.cursor == len(e.snippet) {
		e.finished = true
		e.finishedAt = now
		e.screen = model.ScreenResults
	}
	e.recompute(now)
}

// Backspace undoes the last typed position.
func (e *Engine) Backspace() {
	if e.screen != model.ScreenTyping || e.cursor == 0 {
		return
	}
	e.cursor--
	if e.charStates[e.cursor] == model.Wrong && e.errors > 0 {
		e.errors--
	}
	e.charStates[e.cursor] = model.Untyped
	e.recompute(e.clock.Now())
}

// Tick refreshes live stats of a running round. Finished rounds stay frozen.
func (e *Engine) Tick() {
	if !e.started || e.finished {
		return
	}
	e.recompute(e.clock.Now())
}

// Screen returns the active screen.
func (e *Engine) Screen() model.Screen {
	return e.screen
}

// Categories returns the menu categories.
func (e *Engine) Categories() []model.Category {
	return append([]model.Category(nil), e.categories...)
}

// Selected returns the menu selection index.
func (e *Engine) Selected() int {
	return e.selected
}

// Category returns the category of the current or last round.
func (e *Engine) Category() model.Category {
	return e.category
}

// Snippet returns the characters of the current round.
func (e *Engine) Snippet() []rune {
	return e.snippet
}

// CharStates returns per-position typing states. Callers must not modify it.
func (e *Engine) CharStates() []model.CharState {
	return e.charStates
}

// Cursor returns the index of the next position to type.
func (e *Engine) Cursor() int {
	return e.cursor
}

// Errors returns the number of positions currently marked wrong.
func (e *Engine) Errors() int {
	return e.errors
}

// LiveStats returns the most recently computed WPM and accuracy.
func (e *Engine) LiveStats() model.LiveStats {
	return e.live
}

// Progress returns the typed share of the snippet in [0, 1].
func (e *Engine) Progress() float64 {
	if len(e.snippet) == 0 {
		return 0
	}
	return float64(e.cursor) / float64(len(e.snippet))
}

// Elapsed returns the duration of the round so far, or its total once finished.
func (e *Engine) Elapsed() time.Duration {
	switch {
	case e.started && e.finished:
		return e.finishedAt.Sub(e.startedAt)
	case e.started:
		return e.clock.Now().Sub(e.startedAt)
	default:
		return 0
	}
}

// Result summarizes the current round.
func (e *Engine) Result() model.RoundResult {
	return model.RoundResult{
		Category:   e.category,
		WPM:        e.live.WPM,
		Accuracy:   e.live.Accuracy,
		Elapsed:    e.Elapsed(),
		Errors:     e.errors,
		Characters: len(e.snippet),
	}
}

func (e *Engine) fetch() []rune {
	if e.provider == nil {
		return nil
	}
	return []rune(e.provider.Snippet(e.category))
}

// load resets round state around snippet and enters the typing screen.
// An empty snippet is never completed; the round waits for a cancel.
func (e *Engine) load(snippet []rune) {
	e.snippet = snippet
	e.charStates = make([]model.CharState, len(snippet))
	e.cursor = 0
	e.errors = 0
	e.started = false
	e.startedAt = time.Time{}
	e.finished = false
	e.finishedAt = time.Time{}
	e.live = stats.Initial()
	e.screen = model.ScreenTyping
}

func (e *Engine) recompute(now time.Time) {
	if !e.started {
		return
	}
	end := now
	if e.finished {
		end = e.finishedAt
	}
	correct := 0
	for _, st := range e.charStates[:e.cursor] {
		if st == model.Correct {
			correct++
		}
	}
	e.live = stats.Update(e.live, correct, e.cursor, e.errors, end.Sub(e.startedAt))
}
