package corpus

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	content := "# comment\nfirst   paragraph here\n\n  second one\t \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	paragraphs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(paragraphs))
	}
	if paragraphs[0] != "first paragraph here" || paragraphs[1] != "second one" {
		t.Fatalf("unexpected paragraphs: %q", paragraphs)
	}
}

func TestLoadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected error for empty corpus")
	}
}

func TestPickerDeterministic(t *testing.T) {
	a := NewPickerWithSource(rand.NewSource(7))
	b := NewPickerWithSource(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		if a.Pick(Builtin) != b.Pick(Builtin) {
			t.Fatalf("expected same picks for same seed")
		}
	}
	if NewPicker().Pick(nil) != "" {
		t.Fatalf("expected empty pick for empty corpus")
	}
}
