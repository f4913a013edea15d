package reviewlex

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
)

func TestScoreOne(t *testing.T) {
	tests := []struct {
		text      string
		wantLabel Label
		wantNorm  float64
		delta     float64
		desc      string
	}{
		{"This product is very good!", Positive, 0.75, 1e-9, "Intensified positive"},
		{"Terrible. Just terrible.", Negative, -1.0, 1e-9, "Repeated strong negative clamped"},
		{"It works, nothing remarkable about it.", Neutral, 0.0, 1e-9, "No lexicon evidence"},
		{"not good", Negative, -0.5, 1e-9, "Negated positive"},
		{"don't think it is good", Negative, -0.5, 1e-9, "Negation hidden in a contraction"},
		{"good, not bad", Positive, 2.0 / 3.0, 1e-9, "Boundary keeps first clause positive"},
	}

	a := newTestAnalyzer(t, DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			score, err := a.ScoreOne(tt.text)
			if err != nil {
				t.Fatalf("ScoreOne(%q): %v", tt.text, err)
			}
			if score.Label != tt.wantLabel {
				t.Errorf("label = %v, want %v (score %+v)", score.Label, tt.wantLabel, score)
			}
			if math.Abs(score.Normalized-tt.wantNorm) > tt.delta {
				t.Errorf("normalized = %v, want %v", score.Normalized, tt.wantNorm)
			}
		})
	}
}

func TestScoreOneHitBreakdown(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())
	score, err := a.ScoreOne("good value but terrible packaging")
	if err != nil {
		t.Fatalf("ScoreOne: %v", err)
	}
	if score.PosHits != 1 || score.NegHits != 1 || score.HitCount != 2 {
		t.Errorf("breakdown = %+v, want 1 positive / 1 negative hit", score)
	}
	if score.TokenCount == 0 {
		t.Error("token count missing")
	}
}

func TestScoreOneInvalidText(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())
	for _, text := range []string{"", "   \n\t "} {
		if _, err := a.ScoreOne(text); !errors.Is(err, ErrInvalidReviewText) {
			t.Errorf("ScoreOne(%q) err = %v, want ErrInvalidReviewText", text, err)
		}
	}
}

func TestScoreOneNoLexicon(t *testing.T) {
	a, err := New(DefaultConfig(), testLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := a.ScoreOne("good"); !errors.Is(err, ErrNoLexicon) {
		t.Errorf("err = %v, want ErrNoLexicon", err)
	}
}

// Reloads swap the whole table behind a generation pointer, so a scorer
// running during a reload must see one coherent lexicon: "good" is worth
// +1.0 in one table and -1.0 in the other, never anything in between.
func TestReloadLexiconAtomic(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())
	if err := a.ReloadLexiconString("good,1.0\n"); err != nil {
		t.Fatalf("ReloadLexiconString: %v", err)
	}

	const iterations = 500
	var wg sync.WaitGroup
	errs := make(chan error, 4)

	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				score, err := a.ScoreOne("good")
				if err != nil {
					errs <- err
					return
				}
				if math.Abs(score.Normalized) != 0.5 {
					errs <- errors.New("observed a mixed lexicon state")
					return
				}
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			src := "good,1.0\n"
			if i%2 == 1 {
				src = "good,-1.0\n"
			}
			if err := a.ReloadLexiconString(src); err != nil {
				errs <- err
				return
			}
		}
	}()

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestAppendScoredAndAnalyzeStore(t *testing.T) {
	store := NewMemoryStore()
	a := newTestAnalyzer(t, DefaultConfig()).WithReviewStore(store)

	texts := []string{"very good purchase", "terrible quality", "arrived on schedule"}
	for _, text := range texts {
		if _, err := a.AppendScored(text); err != nil {
			t.Fatalf("AppendScored(%q): %v", text, err)
		}
	}
	if store.Len() != len(texts) {
		t.Fatalf("store has %d reviews, want %d", store.Len(), len(texts))
	}

	stats, err := a.AnalyzeStore(context.Background())
	if err != nil {
		t.Fatalf("AnalyzeStore: %v", err)
	}
	if stats.Scored != 3 || stats.Unscored != 0 {
		t.Errorf("stats = %+v, want 3 scored", stats)
	}
	// AppendScored wrote back predicted labels, so every stored review is
	// labeled and the rerun agrees with itself.
	if stats.LabeledCount != 3 || stats.Accuracy != 1.0 {
		t.Errorf("labeled = %d accuracy = %v, want 3 and 1.0", stats.LabeledCount, stats.Accuracy)
	}
}

func TestAppendScoredInvalidTextNotStored(t *testing.T) {
	store := NewMemoryStore()
	a := newTestAnalyzer(t, DefaultConfig()).WithReviewStore(store)

	if _, err := a.AppendScored("   "); !errors.Is(err, ErrInvalidReviewText) {
		t.Fatalf("err = %v, want ErrInvalidReviewText", err)
	}
	if store.Len() != 0 {
		t.Error("invalid review must not reach the store")
	}
}

func TestAnalyzeStoreUnattached(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())
	if _, err := a.AnalyzeStore(context.Background()); !errors.Is(err, ErrNoReviewStore) {
		t.Errorf("err = %v, want ErrNoReviewStore", err)
	}
}

func TestImpliedRating(t *testing.T) {
	tests := []struct {
		label Label
		want  int
	}{
		{Positive, 5},
		{Neutral, 3},
		{Negative, 1},
	}
	for _, tt := range tests {
		if got := tt.label.ImpliedRating(); got != tt.want {
			t.Errorf("ImpliedRating(%v) = %d, want %d", tt.label, got, tt.want)
		}
	}
}
