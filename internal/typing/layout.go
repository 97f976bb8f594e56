package typing

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultLineWidth is the wrap width used when none is configured.
const DefaultLineWidth = 60

// CharState classifies a reference character relative to the typed text.
type CharState int

const (
	StatePending CharState = iota
	StateCorrect
	StateIncorrect
	StateCurrent
)

func (c CharState) String() string {
	switch c {
	case StateCorrect:
		return "correct"
	case StateIncorrect:
		return "incorrect"
	case StateCurrent:
		return "current"
	default:
		return "pending"
	}
}

// Cell is one reference character with its position and state.
type Cell struct {
	Rune  rune
	Index int
	State CharState
}

// Line is a wrapped line of the reference text. When the line ends at a wrap
// point, Break holds the space consumed by the line break.
type Line struct {
	Cells    []Cell
	Break    Cell
	HasBreak bool
}

// Text returns the line content without styling.
func (l Line) Text() string {
	var b strings.Builder
	for _, c := range l.Cells {
		b.WriteRune(c.Rune)
	}
	return b.String()
}

// Lines wraps the reference into lines no wider than width and classifies
// every character.
func (s Session) Lines(width int) []Line {
	spans := wrap(s.reference, width)
	lines := make([]Line, 0, len(spans))
	for _, sp := range spans {
		line := Line{Cells: make([]Cell, 0, sp.end-sp.start)}
		for i := sp.start; i < sp.end; i++ {
			line.Cells = append(line.Cells, Cell{Rune: s.reference[i], Index: i, State: s.State(i)})
		}
		if sp.brk {
			line.Break = Cell{Rune: s.reference[sp.end], Index: sp.end, State: s.State(sp.end)}
			line.HasBreak = true
		}
		lines = append(lines, line)
	}
	return lines
}

type span struct {
	start int
	end   int
	brk   bool
}

// wrap greedily packs space-separated words into lines of at most width
// columns. Words are never split, so a single long word may exceed width.
// The space at each wrap point belongs to no line. Runs of spaces count as
// empty words and wrap like any other word, which can leave a line with no
// cells.
func wrap(ref []rune, width int) []span {
	if len(ref) == 0 {
		return nil
	}
	if width <= 0 {
		return []span{{start: 0, end: len(ref)}}
	}
	var spans []span
	lineStart := 0
	lineWidth := 0
	wordStart := 0
	for {
		wordEnd := wordStart
		for wordEnd < len(ref) && ref[wordEnd] != ' ' {
			wordEnd++
		}
		w := runewidth.StringWidth(string(ref[wordStart:wordEnd]))
		switch {
		case wordStart == lineStart:
			lineWidth = w
		case lineWidth+1+w > width:
			spans = append(spans, span{start: lineStart, end: wordStart - 1, brk: true})
			lineStart = wordStart
			lineWidth = w
		default:
			lineWidth += 1 + w
		}
		if wordEnd >= len(ref) {
			break
		}
		wordStart = wordEnd + 1
	}
	if lineStart == len(ref) {
		// A trailing space already sits on the previous line as its break.
		return spans
	}
	return append(spans, span{start: lineStart, end: len(ref)})
}
