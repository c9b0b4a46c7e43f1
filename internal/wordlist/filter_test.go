package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTypable(t *testing.T) {
	if !Typable("hello") {
		t.Fatalf("expected hello to be typable")
	}
	for _, word := range []string{"", "résumé", "naïve", "don’t", "co-op", "Next"} {
		if Typable(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestDefaultIsTypableCopy(t *testing.T) {
	words := Default()
	if len(words) != 10 {
		t.Fatalf("expected 10 built-in words, got %d", len(words))
	}
	for _, w := range words {
		if !Typable(w) {
			t.Fatalf("built-in word %q is not typable", w)
		}
	}
	words[0] = "mutated"
	if Default()[0] == "mutated" {
		t.Fatalf("expected Default to return a copy")
	}
}

func TestLoadWordsFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("Gopher\n\nco-op\n  channel \n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	if len(words) != 2 || words[0] != "gopher" || words[1] != "channel" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("co-op\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	if _, err := LoadWords(path); err == nil {
		t.Fatalf("expected error for list with no typable words")
	}
}
