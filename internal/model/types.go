// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Category     string
	TickInterval time.Duration
	DBPath       string
}

// Screen identifies the active screen of a session.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenTyping
	ScreenResults
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenTyping:
		return "typing"
	case ScreenResults:
		return "results"
	default:
		return "unknown"
	}
}

// CharState is the typing state of a single snippet position.
type CharState int

const (
	Untyped CharState = iota
	Correct
	Wrong
)

// Category names a snippet pool shown in the menu.
type Category string

// LiveStats holds the derived rate metrics of a round.
type LiveStats struct {
	WPM      float64
	Accuracy float64
}

// RoundResult summarizes a round for the results screen.
type RoundResult struct {
	Category   Category
	WPM        float64
	Accuracy   float64
	Elapsed    time.Duration
	Errors     int
	Characters int
}

// CategoryCount reports how many snippets a category holds.
type CategoryCount struct {
	Category Category
	Builtin  int
	User     int
}
