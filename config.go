package reviewlex

import "runtime"

// Default tuning constants. All of them are caller-overridable through
// Config; they are kept as named constants so the defaults are documented in
// one place rather than scattered as magic numbers.
const (
	// DefaultNegationWindow is how many tokens an extractor looks back for a
	// negator before a sentiment word, never crossing a sentence boundary.
	DefaultNegationWindow = 3

	// DefaultIntensifierFactor scales a sentiment word's magnitude when an
	// intensifier precedes it within the lookback window.
	DefaultIntensifierFactor = 1.5

	// DefaultSmoothing is the additive constant in the score denominator
	// (raw / (hits + smoothing)) that keeps sparse-evidence reviews from
	// receiving extreme normalized scores.
	DefaultSmoothing = 1.0

	// DefaultPositiveThreshold and DefaultNegativeThreshold bound the
	// neutral band of the classifier.
	DefaultPositiveThreshold = 0.05
	DefaultNegativeThreshold = -0.05

	// DefaultMaxPolarity clamps lexicon weights so a single outlier word
	// cannot dominate aggregation. Matches the VADER lexicon's ±4 range.
	DefaultMaxPolarity = 4.0

	// DefaultHistogramBuckets is the bucket count of the [-1,1] score
	// histogram in DatasetStats.
	DefaultHistogramBuckets = 20
)

// Config carries every externally settable knob of the pipeline. The zero
// value means "use the defaults above".
type Config struct {
	NegationWindow    int
	IntensifierFactor float64
	Smoothing         float64
	PositiveThreshold float64
	NegativeThreshold float64
	MaxPolarity       float64
	HistogramBuckets  int

	// Workers bounds batch-scoring concurrency. Zero means one worker per
	// logical CPU.
	Workers int

	// StopWords replaces the default stop-word set when non-nil. Stop-word
	// removal never drops a word the lexicon knows, whatever the set says.
	StopWords map[string]struct{}

	// DisableStemming keeps tokens in their surface form. The same setting
	// governs lexicon loading, so lookups stay consistent either way.
	DisableStemming bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		NegationWindow:    DefaultNegationWindow,
		IntensifierFactor: DefaultIntensifierFactor,
		Smoothing:         DefaultSmoothing,
		PositiveThreshold: DefaultPositiveThreshold,
		NegativeThreshold: DefaultNegativeThreshold,
		MaxPolarity:       DefaultMaxPolarity,
		HistogramBuckets:  DefaultHistogramBuckets,
		Workers:           runtime.GOMAXPROCS(0),
	}
}

// withDefaults fills unset fields so a partially populated Config behaves
// like DefaultConfig for everything the caller did not touch.
func (c Config) withDefaults() Config {
	if c.NegationWindow <= 0 {
		c.NegationWindow = DefaultNegationWindow
	}
	if c.IntensifierFactor == 0 {
		c.IntensifierFactor = DefaultIntensifierFactor
	}
	if c.Smoothing == 0 {
		c.Smoothing = DefaultSmoothing
	}
	if c.PositiveThreshold == 0 {
		c.PositiveThreshold = DefaultPositiveThreshold
	}
	if c.NegativeThreshold == 0 {
		c.NegativeThreshold = DefaultNegativeThreshold
	}
	if c.MaxPolarity <= 0 {
		c.MaxPolarity = DefaultMaxPolarity
	}
	if c.HistogramBuckets <= 0 {
		c.HistogramBuckets = DefaultHistogramBuckets
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c
}
