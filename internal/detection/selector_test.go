package detection_test

import (
	"testing"

	"plagscan/internal/detection"
	"plagscan/internal/features"
	"plagscan/internal/similarity"
)

func buildSimilarity(t *testing.T, corpus ...string) *similarity.Matrix {
	t.Helper()
	_, m, err := features.Build(corpus)
	if err != nil {
		t.Fatalf("features.Build: %v", err)
	}
	return similarity.Cosine(m)
}

func TestSelectPairsOrderingAndInclusiveThreshold(t *testing.T) {
	sim := buildSimilarity(t,
		"red green blue",
		"red green blue",
		"red green yellow",
		"cat dog",
	)
	ids := []string{"p", "q", "r", "s"}

	pairs := detection.SelectPairs(ids, sim, sim.At(0, 2))
	if len(pairs) != 3 {
		t.Fatalf("expected 3 pairs at the partial-overlap score, got %+v", pairs)
	}
	want := [][2]string{{"p", "q"}, {"p", "r"}, {"q", "r"}}
	for i, p := range pairs {
		if p.DocIDA != want[i][0] || p.DocIDB != want[i][1] {
			t.Fatalf("pair %d = %+v, want %v", i, p, want[i])
		}
	}
	if pairs[1].Similarity != sim.At(0, 2) {
		t.Fatalf("pair similarity should equal the matrix entry")
	}
}

func TestSelectPairsNeverPairsDocumentWithItself(t *testing.T) {
	sim := buildSimilarity(t, "same words", "same words")
	pairs := detection.SelectPairs([]string{"a", "b"}, sim, 0)
	if len(pairs) != 1 {
		t.Fatalf("expected one pair, got %+v", pairs)
	}
	if pairs[0].DocIDA == pairs[0].DocIDB {
		t.Fatalf("self pair selected: %+v", pairs[0])
	}
}

func TestSelectPairsEmpty(t *testing.T) {
	sim := buildSimilarity(t, "alpha", "beta")
	pairs := detection.SelectPairs([]string{"a", "b"}, sim, 0.5)
	if pairs == nil || len(pairs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", pairs)
	}
}
