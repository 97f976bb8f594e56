package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/typing"
)

func plain() *Formatter {
	return New(&bytes.Buffer{}, false)
}

func TestKeyValuePadding(t *testing.T) {
	got := plain().KeyValue("WPM", "42")
	want := "WPM                  : 42"
	if got != want {
		t.Fatalf("unexpected key value line: %q", got)
	}
}

func TestTableAlignsColumns(t *testing.T) {
	out := plain().Table([]string{"#", "Project"}, [][]string{
		{"1", "folio"},
		{"10", "x"},
	})
	lines := strings.Split(out, "\n")
	want := []string{
		"┌────┬─────────┐",
		"│ #  │ Project │",
		"├────┼─────────┤",
		"│ 1  │ folio   │",
		"│ 10 │ x       │",
		"└────┴─────────┘",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestProgressBar(t *testing.T) {
	f := plain()
	if got := f.ProgressBar(5, 10, 10); got != "[█████░░░░░] 50%" {
		t.Fatalf("unexpected bar: %q", got)
	}
	if got := f.ProgressBar(0, 0, 4); got != "[████] 100%" {
		t.Fatalf("unexpected bar for empty total: %q", got)
	}
}

func TestTypingLinesPlain(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := typing.NewSession("ab cd").Start(now)
	s, _ = s.Add('a', now)
	s, _ = s.Add('b', now)
	s, _ = s.Add(' ', now)
	out := plain().TypingLines(s.Lines(2))
	if out != "ab \nc\u0332d" {
		t.Fatalf("unexpected plain lines: %q", out)
	}
}

func TestTypingLinesIncorrectBreak(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := typing.NewSession("aaaa bbbb").Start(now)
	for _, r := range "aaaax" {
		s, _ = s.Add(r, now)
	}
	out := plain().TypingLines(s.Lines(4))
	if out != "aaaa•\nb\u0332bbb" {
		t.Fatalf("expected mistyped break to be drawn, got %q", out)
	}
}

func TestTypingLinesCursorOnBreak(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := typing.NewSession("ab cd").Start(now)
	s, _ = s.Add('a', now)
	s, _ = s.Add('b', now)
	out := plain().TypingLines(s.Lines(2))
	if out != "ab_\ncd" {
		t.Fatalf("expected cursor cell at line end, got %q", out)
	}
}

func TestTypingLinesPendingBreakHidden(t *testing.T) {
	s := typing.NewSession("ab cd")
	out := plain().TypingLines(s.Lines(2))
	if out != "a\u0332b\ncd" {
		t.Fatalf("expected pending break to stay hidden, got %q", out)
	}
}

func TestTypingResults(t *testing.T) {
	out := plain().TypingResults(typing.Result{WPM: 55, Accuracy: 97, Errors: 3, TimeElapsed: 60, CharactersTyped: 275})
	for _, want := range []string{"Typing Test Results", "Words per Minute", "55", "97%", "60s", "275"} {
		if !strings.Contains(out, want) {
			t.Fatalf("results missing %q:\n%s", want, out)
		}
	}
}

func TestWorksTableTruncatesTechnologies(t *testing.T) {
	out := plain().WorksTable([]model.Work{{
		Title:        "folio",
		Year:         2025,
		Category:     "CLI",
		Status:       model.StatusOpenSource,
		Technologies: []string{"Go", "SQLite", "Bubble Tea", "gin"},
	}})
	if !strings.Contains(out, "Go, SQLite, Bubble Tea...") {
		t.Fatalf("expected truncated technologies:\n%s", out)
	}
	if !strings.Contains(out, "🔓 open-source") {
		t.Fatalf("expected status icon:\n%s", out)
	}
}

func TestFindSkillCategory(t *testing.T) {
	skills := model.Skills{Cloud: []string{"AWS"}}
	c, ok := FindSkillCategory(skills, " Cloud ")
	if !ok || len(c.Items) != 1 || c.Items[0] != "AWS" {
		t.Fatalf("unexpected category: %+v %v", c, ok)
	}
	if _, ok := FindSkillCategory(skills, "music"); ok {
		t.Fatalf("expected unknown category")
	}
	if len(SkillCategoryKeys()) != 6 {
		t.Fatalf("expected 6 category keys")
	}
}

func TestNotes(t *testing.T) {
	out := plain().Notes([]typing.Note{
		{Level: typing.LevelSuccess, Message: "fast"},
		{Level: typing.LevelWarning, Message: "sloppy"},
	})
	if out != "✓ fast\n⚠ sloppy" {
		t.Fatalf("unexpected notes: %q", out)
	}
}
