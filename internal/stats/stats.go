// Package stats contains live typing metric calculations.
package stats

import (
	"time"

	"github.com/verte-zerg/typesnip/internal/model"
)

// CharsPerWord is the standard word length used for WPM.
const CharsPerWord = 5.0

// Initial returns the stats of a round that has not started yet.
func Initial() model.LiveStats {
	return model.LiveStats{WPM: 0, Accuracy: 100}
}

// WPM computes words per minute from the number of correct characters.
// ok is false when elapsed is not positive and no rate can be derived.
func WPM(correct int, elapsed time.Duration) (wpm float64, ok bool) {
	if elapsed <= 0 {
		return 0, false
	}
	minutes := elapsed.Seconds() / 60.0
	if minutes <= 0 {
		return 0, false
	}
	return (float64(correct) / CharsPerWord) / minutes, true
}

// Accuracy computes the share of typed positions that are not wrong, in percent.
// ok is false when nothing is typed.
func Accuracy(typed, wrong int) (accuracy float64, ok bool) {
	if typed <= 0 {
		return 0, false
	}
	if wrong < 0 {
		wrong = 0
	}
	if wrong > typed {
		wrong = typed
	}
	return float64(typed-wrong) / float64(typed) * 100, true
}

// Update recomputes stats, keeping prior values for metrics that cannot be derived.
func Update(prev model.LiveStats, correct, typed, wrong int, elapsed time.Duration) model.LiveStats {
	next := prev
	if wpm, ok := WPM(correct, elapsed); ok {
		next.WPM = wpm
	}
	if acc, ok := Accuracy(typed, wrong); ok {
		next.Accuracy = acc
	}
	return next
}
