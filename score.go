package reviewlex

import "math"

// A Scorer folds lexicon hits into a review-level score.
type Scorer struct {
	cfg Config
}

// NewScorer builds a scorer.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg.withDefaults()}
}

// Score sums the effective hit polarities and smooths the sum by hit count:
// normalized = raw / (hits + smoothing), clamped to [-1, 1]. The smoothing
// term keeps a review with one strong word from landing at the extreme of
// the scale; it is part of the scoring contract, not a tuning nicety. Zero
// hits yield (0, 0, 0).
func (s *Scorer) Score(hits []LexiconHit) (raw, normalized float64, hitCount int) {
	if len(hits) == 0 {
		return 0, 0, 0
	}
	for _, h := range hits {
		raw += h.Polarity
	}
	hitCount = len(hits)
	normalized = raw / (float64(hitCount) + s.cfg.Smoothing)
	if normalized > 1 {
		normalized = 1
	} else if normalized < -1 {
		normalized = -1
	}
	return raw, normalized, hitCount
}

// A Classifier maps a normalized score onto a discrete label. Thresholds
// default to DefaultPositiveThreshold / DefaultNegativeThreshold.
type Classifier struct {
	tPos float64
	tNeg float64
}

// NewClassifier builds a classifier from the configured thresholds.
func NewClassifier(cfg Config) *Classifier {
	cfg = cfg.withDefaults()
	return &Classifier{tPos: cfg.PositiveThreshold, tNeg: cfg.NegativeThreshold}
}

// Classify labels a normalized score. The boundary values belong to the
// non-neutral side: a score of exactly tPos is positive, exactly tNeg is
// negative. Zero-hit reviews score 0 and therefore land in the neutral band.
func (c *Classifier) Classify(normalized float64) Label {
	switch {
	case normalized >= c.tPos:
		return Positive
	case normalized <= c.tNeg:
		return Negative
	default:
		return Neutral
	}
}

// confidence reproduces the percentage measure the original analyzer
// reports: the normalized magnitude as a percentage, 50 for neutral, with a
// flat bonus when any lexicon evidence exists, capped at 100.
func confidence(label Label, normalized float64, hitCount int) float64 {
	var conf float64
	switch label {
	case Neutral:
		conf = 50
	default:
		conf = math.Min(math.Abs(normalized)*100, 100)
	}
	if hitCount > 0 {
		conf = math.Min(conf+20, 100)
	}
	return conf
}
