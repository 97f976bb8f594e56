package display

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/folio/internal/typing"
)

const progressBarWidth = 40

// ProgressBar renders a bar of width cells for current out of total.
func (f *Formatter) ProgressBar(current, total, width int) string {
	if width <= 0 {
		width = progressBarWidth
	}
	ratio := 1.0
	if total > 0 {
		ratio = float64(current) / float64(total)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*float64(width) + 0.5)
	bar := f.success.Render(strings.Repeat("█", filled)) + f.dim.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("[%s] %d%%", bar, int(ratio*100+0.5))
}

// TypingLines colors the classified reference text, one output line per wrapped line.
func (f *Formatter) TypingLines(lines []typing.Line) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		var b strings.Builder
		for _, c := range line.Cells {
			b.WriteString(f.typingCell(c))
		}
		if line.HasBreak && line.Break.State != typing.StatePending {
			b.WriteString(f.typingCell(line.Break))
		}
		out = append(out, b.String())
	}
	return strings.Join(out, "\n")
}

func (f *Formatter) typingCell(c typing.Cell) string {
	s := string(c.Rune)
	switch c.State {
	case typing.StateCorrect:
		return f.correct.Render(s)
	case typing.StateIncorrect:
		if c.Rune == ' ' {
			s = "•"
		}
		return f.incorrect.Render(s)
	case typing.StateCurrent:
		if f.markCursor {
			s = cursorGlyph(c.Rune)
		}
		return f.current.Render(s)
	default:
		return f.pending.Render(s)
	}
}

// cursorGlyph underlines r with a combining low line, or shows "_" for a space.
func cursorGlyph(r rune) string {
	if r == ' ' {
		return "_"
	}
	return string(r) + "\u0332"
}

// TypingProgress renders the live progress panel.
func (f *Formatter) TypingProgress(p typing.Progress) string {
	return strings.Join([]string{
		f.KeyValue("Progress", fmt.Sprintf("%d%%", p.Percent)),
		f.ProgressBar(p.CharactersTyped, p.Total, progressBarWidth),
		"",
		f.KeyValue("WPM", fmt.Sprintf("%d", p.WPM)),
		f.KeyValue("Accuracy", fmt.Sprintf("%d%%", p.Accuracy)),
		f.KeyValue("Errors", fmt.Sprintf("%d", p.Errors)),
		f.KeyValue("Characters", fmt.Sprintf("%d/%d", p.CharactersTyped, p.Total)),
	}, "\n")
}

// TypingResults renders the final summary box.
func (f *Formatter) TypingResults(r typing.Result) string {
	content := strings.Join([]string{
		f.KeyValue("Words per Minute", fmt.Sprintf("%d", r.WPM)),
		f.KeyValue("Accuracy", fmt.Sprintf("%d%%", r.Accuracy)),
		f.KeyValue("Errors", fmt.Sprintf("%d", r.Errors)),
		f.KeyValue("Time Elapsed", fmt.Sprintf("%ds", r.TimeElapsed)),
		f.KeyValue("Characters Typed", fmt.Sprintf("%d", r.CharactersTyped)),
	}, "\n")
	return f.Box(content, "🏆 Typing Test Results")
}

// Notes renders feedback notes, one per line.
func (f *Formatter) Notes(notes []typing.Note) string {
	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		switch n.Level {
		case typing.LevelSuccess:
			lines = append(lines, f.Success(n.Message))
		case typing.LevelInfo:
			lines = append(lines, f.Info(n.Message))
		default:
			lines = append(lines, f.Warning(n.Message))
		}
	}
	return strings.Join(lines, "\n")
}
