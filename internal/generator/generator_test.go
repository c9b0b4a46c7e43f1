package generator

import "testing"

func TestPickDeterministicWithSeed(t *testing.T) {
	words := []string{"react", "vercel", "motion", "framer"}
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 20; i++ {
		if wa, wb := a.Pick(words), b.Pick(words); wa != wb {
			t.Fatalf("expected same pick at %d, got %q and %q", i, wa, wb)
		}
	}
}

func TestPickCoversList(t *testing.T) {
	words := []string{"a", "b", "c"}
	g := NewSeeded(7)
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		seen[g.Pick(words)] = true
	}
	if len(seen) != len(words) {
		t.Fatalf("expected every word to be picked, saw %v", seen)
	}
}

func TestPickEmpty(t *testing.T) {
	if got := New().Pick(nil); got != "" {
		t.Fatalf("expected empty pick, got %q", got)
	}
}
