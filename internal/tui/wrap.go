// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typesnip/internal/model"
)

const (
	wrongSpaceGlyph = '•'
	newlineGlyph    = '↵'
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
	isBreak bool
}

func buildStyledRunes(snippet []rune, states []model.CharState, cursorIndex int) []styledRune {
	words := findWords(snippet)
	currentWord := wordForCursor(words, cursorIndex)

	out := make([]styledRune, 0, len(snippet))
	for i, target := range snippet {
		state := model.Untyped
		if i < len(states) {
			state = states[i]
		}
		displayed := target
		style := pendingStyle
		switch state {
		case model.Correct:
			style = correctStyle
		case model.Wrong:
			style = incorrectStyle
			if target == ' ' {
				displayed = wrongSpaceGlyph
			}
		default:
			if currentWord != nil && i >= currentWord.start && i < currentWord.end {
				style = currentWordStyle
			}
		}
		if i == cursorIndex {
			style = cursorStyle
		}

		if target == '\n' {
			item := styledRune{isBreak: true}
			if i == cursorIndex || state == model.Wrong {
				item.s = style.Render(string(newlineGlyph))
				item.width = runewidth.RuneWidth(newlineGlyph)
			}
			out = append(out, item)
			continue
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: target == ' ',
		})
	}
	return out
}

type wordRange struct {
	start int
	end   int
}

func findWords(snippet []rune) []wordRange {
	words := []wordRange{}
	start := -1
	for i, r := range snippet {
		if unicode.IsSpace(r) {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(snippet)})
	}
	return words
}

func wordForCursor(words []wordRange, cursorIndex int) *wordRange {
	if len(words) == 0 || cursorIndex < 0 {
		return nil
	}
	for i, w := range words {
		if cursorIndex < w.end {
			return &words[i]
		}
	}
	return nil
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
		if item.isBreak {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

// lineBuffer accumulates the current visual line while wrapping.
type lineBuffer struct {
	items []styledRune
	width int
	// breakAt is the index of the last space in items, or -1.
	breakAt int
}

func (l *lineBuffer) push(item styledRune) {
	l.items = append(l.items, item)
	l.width += item.width
	if item.isSpace {
		l.breakAt = len(l.items) - 1
	}
}

func (l *lineBuffer) reset(rest []styledRune) {
	l.items = append(l.items[:0:0], rest...)
	l.width = 0
	l.breakAt = -1
	for i, item := range l.items {
		l.width += item.width
		if item.isSpace {
			l.breakAt = i
		}
	}
}

// wrapStyledRunes soft-wraps at spaces to width and hard-wraps at snippet
// newlines. A space ending a soft-wrapped line stays on that line.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := &lineBuffer{breakAt: -1}
	for _, item := range runes {
		for line.width+item.width > width && len(line.items) > 0 {
			cut := len(line.items)
			if line.breakAt >= 0 {
				cut = line.breakAt + 1
			}
			out.WriteString(renderStyledRunes(line.items[:cut]))
			out.WriteRune('\n')
			line.reset(line.items[cut:])
		}
		line.push(item)
		if item.isBreak {
			out.WriteString(renderStyledRunes(line.items))
			line.reset(nil)
		}
	}
	out.WriteString(renderStyledRunes(line.items))
	return out.String()
}
