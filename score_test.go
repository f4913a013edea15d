package reviewlex

import (
	"math"
	"testing"
)

func TestScoreZeroHits(t *testing.T) {
	raw, normalized, hits := NewScorer(DefaultConfig()).Score(nil)
	if raw != 0 || normalized != 0 || hits != 0 {
		t.Errorf("Score(nil) = (%v, %v, %d), want all zero", raw, normalized, hits)
	}
	if label := NewClassifier(DefaultConfig()).Classify(normalized); label != Neutral {
		t.Errorf("zero-hit classification = %v, want neutral", label)
	}
}

func TestScoreSmoothing(t *testing.T) {
	tests := []struct {
		polarities []float64
		wantRaw    float64
		wantNorm   float64
		desc       string
	}{
		{[]float64{1.0}, 1.0, 0.5, "Single hit halved by smoothing"},
		{[]float64{1.5}, 1.5, 0.75, "Boosted single hit"},
		{[]float64{1.0, 1.0, 1.0}, 3.0, 0.75, "Raw sum over hits plus smoothing"},
		{[]float64{1.0, -1.0}, 0.0, 0.0, "Opposing hits cancel"},
		{[]float64{4.0, 4.0}, 8.0, 1.0, "Normalized score clamped to +1"},
		{[]float64{-4.0, -4.0}, -8.0, -1.0, "Normalized score clamped to -1"},
	}

	scorer := NewScorer(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			hits := make([]LexiconHit, len(tt.polarities))
			for i, p := range tt.polarities {
				hits[i] = LexiconHit{Position: i, Polarity: p}
			}
			raw, normalized, count := scorer.Score(hits)
			if raw != tt.wantRaw {
				t.Errorf("raw = %v, want %v", raw, tt.wantRaw)
			}
			if math.Abs(normalized-tt.wantNorm) > 1e-9 {
				t.Errorf("normalized = %v, want %v", normalized, tt.wantNorm)
			}
			if count != len(tt.polarities) {
				t.Errorf("hitCount = %d, want %d", count, len(tt.polarities))
			}
		})
	}
}

func TestClassifyThresholdBoundary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PositiveThreshold = 0.2
	cfg.NegativeThreshold = -0.2
	c := NewClassifier(cfg)

	tests := []struct {
		score float64
		want  Label
	}{
		{0.2, Positive},
		{0.199999, Neutral},
		{-0.2, Negative},
		{-0.199999, Neutral},
		{0.0, Neutral},
		{1.0, Positive},
		{-1.0, Negative},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestClassifyDefaults(t *testing.T) {
	c := NewClassifier(DefaultConfig())
	if got := c.Classify(DefaultPositiveThreshold); got != Positive {
		t.Errorf("Classify at default positive threshold = %v", got)
	}
	if got := c.Classify(DefaultNegativeThreshold); got != Negative {
		t.Errorf("Classify at default negative threshold = %v", got)
	}
	if got := c.Classify(0.01); got != Neutral {
		t.Errorf("Classify inside neutral band = %v", got)
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		label    Label
		norm     float64
		hits     int
		expected float64
		desc     string
	}{
		{Neutral, 0, 0, 50, "Zero-hit neutral"},
		{Neutral, 0.01, 2, 70, "Neutral with evidence gets the bonus"},
		{Positive, 0.5, 1, 70, "Magnitude percentage plus bonus"},
		{Negative, -0.9, 3, 100, "Capped at 100"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := confidence(tt.label, tt.norm, tt.hits); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("confidence = %v, want %v", got, tt.expected)
			}
		})
	}
}
