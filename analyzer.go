package reviewlex

import (
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// An Analyzer is the caller-facing surface of the pipeline: it owns the
// normalizer, tokenizer, extractor, scorer, and classifier, plus the lexicon
// store the whole pipeline reads from. Scoring calls are stateless and safe
// to run concurrently; the only mutation anywhere is the store's atomic
// snapshot swap on reload.
type Analyzer struct {
	cfg        Config
	log        *logrus.Entry
	lexicons   *Store
	normalizer *Normalizer
	tokenizer  *Tokenizer
	extractor  *Extractor
	scorer     *Scorer
	classifier *Classifier
	reviews    ReviewStore
}

// New builds an Analyzer. A nil logger falls back to the standard logrus
// logger; a nil store leaves the store-backed operations unavailable until
// WithReviewStore is called.
func New(cfg Config, logger *logrus.Logger) (*Analyzer, error) {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	log := logger.WithField("component", "reviewlex")

	tokenizer, err := NewTokenizer(cfg)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		cfg:        cfg,
		log:        log,
		lexicons:   NewStore(cfg, log),
		normalizer: NewNormalizer(),
		tokenizer:  tokenizer,
		extractor:  NewExtractor(cfg),
		scorer:     NewScorer(cfg),
		classifier: NewClassifier(cfg),
	}, nil
}

// WithReviewStore attaches the external review store and returns the
// analyzer for chaining.
func (a *Analyzer) WithReviewStore(store ReviewStore) *Analyzer {
	a.reviews = store
	return a
}

// ReloadLexicon parses src and atomically swaps the active lexicon. A
// concurrent ScoreOne observes either the previous or the new lexicon in
// full, never a partially loaded one; on failure the previous lexicon stays
// active.
func (a *Analyzer) ReloadLexicon(src io.Reader) error {
	return a.lexicons.Load(src)
}

// ReloadLexiconString is a convenience wrapper over ReloadLexicon.
func (a *Analyzer) ReloadLexiconString(src string) error {
	return a.lexicons.LoadString(src)
}

// Lexicon returns the active lexicon snapshot, or nil before the first
// successful load.
func (a *Analyzer) Lexicon() *Lexicon {
	return a.lexicons.Snapshot()
}

// ScoreOne runs the full pipeline over a single review text.
func (a *Analyzer) ScoreOne(text string) (ReviewScore, error) {
	lex := a.lexicons.Snapshot()
	if lex == nil {
		return ReviewScore{}, ErrNoLexicon
	}
	return a.scoreText(text, lex)
}

// ScoreBatch scores every review and returns the per-review scores in input
// order (unscored reviews omitted) together with the dataset statistics.
func (a *Analyzer) ScoreBatch(ctx context.Context, reviews []Review) ([]ReviewScore, DatasetStats, error) {
	return NewBatchAnalyzer(a).Analyze(ctx, reviews)
}

// AnalyzeStore scores everything currently in the attached review store.
func (a *Analyzer) AnalyzeStore(ctx context.Context) (DatasetStats, error) {
	if a.reviews == nil {
		return DatasetStats{}, ErrNoReviewStore
	}
	reviews, err := a.reviews.AllReviews()
	if err != nil {
		return DatasetStats{}, err
	}
	_, stats, err := a.ScoreBatch(ctx, reviews)
	return stats, err
}

// AppendScored scores the text and appends it to the attached store with
// its predicted label, so a newly submitted review becomes part of the
// dataset without reprocessing anything already stored.
func (a *Analyzer) AppendScored(text string) (ReviewScore, error) {
	if a.reviews == nil {
		return ReviewScore{}, ErrNoReviewStore
	}
	score, err := a.ScoreOne(text)
	if err != nil {
		return ReviewScore{}, err
	}
	if err := a.reviews.AppendReview(text, score.Label); err != nil {
		return ReviewScore{}, err
	}
	return score, nil
}

// scoreReview adapts scoreText to the Review interface for batch use.
func (a *Analyzer) scoreReview(r Review, lex *Lexicon) (ReviewScore, error) {
	if r == nil {
		return ReviewScore{}, ErrInvalidReviewText
	}
	return a.scoreText(r.Text(), lex)
}

// scoreText is the pipeline: normalize, tokenize, extract, score, classify.
// Everything it allocates is local to the call, so any number of these may
// run at once against the same lexicon snapshot.
func (a *Analyzer) scoreText(text string, lex *Lexicon) (ReviewScore, error) {
	if strings.TrimSpace(text) == "" {
		return ReviewScore{}, ErrInvalidReviewText
	}

	normalized := a.normalizer.Normalize(text)
	tokens := a.tokenizer.Tokenize(normalized, lex)
	hits := a.extractor.Extract(tokens, lex)
	raw, norm, hitCount := a.scorer.Score(hits)
	label := a.classifier.Classify(norm)

	score := ReviewScore{
		Raw:        raw,
		Normalized: norm,
		Label:      label,
		Confidence: confidence(label, norm, hitCount),
		HitCount:   hitCount,
		TokenCount: len(tokens),
	}
	for _, h := range hits {
		if h.Polarity > 0 {
			score.PosHits++
		} else if h.Polarity < 0 {
			score.NegHits++
		}
	}
	return score, nil
}
