package reviewlex

import "time"

// A Label is the discrete sentiment class assigned to a review.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// ImpliedRating maps a label to the star rating the dataset assigns when a
// review is saved without one (positive 5, neutral 3, negative 1).
func (l Label) ImpliedRating() int {
	switch l {
	case Positive:
		return 5
	case Negative:
		return 1
	default:
		return 3
	}
}

// A Category describes the role a lexicon word plays during scoring.
type Category int

const (
	CategoryPositive Category = iota
	CategoryNegative
	CategoryIntensifier
	CategoryNegator
)

// String returns the category tag as it appears in lexicon files.
func (c Category) String() string {
	switch c {
	case CategoryPositive:
		return "positive"
	case CategoryNegative:
		return "negative"
	case CategoryIntensifier:
		return "intensifier"
	case CategoryNegator:
		return "negator"
	}
	return "unknown"
}

// A LexiconEntry represents a word's sentiment information.
type LexiconEntry struct {
	Word     string  // Normalized (stemmed) form used for lookup
	Polarity float64 // Signed weight, clamped to ±Config.MaxPolarity
	Category Category
}

// A Token represents an individual word token of normalized review text.
type Token struct {
	Surface  string // The token as it appeared after normalization
	Norm     string // Stemmed form used for lexicon lookup
	Position int    // Index in the token sequence
	Sentence int    // Index of the sentence the token belongs to
}

// A LexiconHit is a sentiment word found in a token sequence, carrying the
// polarity after local negation and intensifier adjustments. Hits only live
// for the duration of one scoring call.
type LexiconHit struct {
	Position int
	Entry    LexiconEntry
	Polarity float64 // Effective polarity, sign-flipped and/or scaled
	Negated  bool
	Boosted  bool
}

// A ReviewScore is the immutable result of scoring one review.
type ReviewScore struct {
	Raw        float64 // Sum of effective hit polarities
	Normalized float64 // Raw smoothed by hit count, in [-1, 1]
	Label      Label
	Confidence float64 // 0-100, see Scorer
	HitCount   int
	PosHits    int
	NegHits    int
	TokenCount int
}

// A HistogramBucket is one ordered bucket of the normalized-score histogram.
type HistogramBucket struct {
	Low   float64 // Inclusive lower edge
	High  float64 // Exclusive upper edge (inclusive for the last bucket)
	Count int
}

// DatasetStats summarizes one batch run. It is rebuilt in full on every
// analysis call; nothing here is maintained incrementally.
type DatasetStats struct {
	Total     int
	Scored    int
	Unscored  int
	PerLabel  map[Label]int
	MeanScore float64
	Histogram []HistogramBucket

	// Accuracy over reviews that carry a label of their own.
	LabeledCount int
	Accuracy     float64

	// Failures reports each review that could not be scored, so aggregate
	// counts are never silently incomplete.
	Failures []BatchError
}

// A Review is the narrow read surface the pipeline needs from the review
// store. The store owns the records; the pipeline only reads the text and,
// when present, the assigned label.
type Review interface {
	Text() string
	Label() (Label, bool)
	CreatedAt() time.Time
}

// TextReview wraps a bare string as a Review with no label.
type TextReview string

func (t TextReview) Text() string         { return string(t) }
func (t TextReview) Label() (Label, bool) { return "", false }
func (t TextReview) CreatedAt() time.Time { return time.Time{} }
