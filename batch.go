package reviewlex

import (
	"context"
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// A BatchAnalyzer runs the scoring pipeline over a review collection and
// folds the per-review results into dataset statistics. Statistics are
// rebuilt in full on every call; the store's contents can change between
// calls and incremental aggregates would silently go stale.
type BatchAnalyzer struct {
	a *Analyzer
}

// NewBatchAnalyzer wraps an Analyzer for batch use.
func NewBatchAnalyzer(a *Analyzer) *BatchAnalyzer {
	return &BatchAnalyzer{a: a}
}

type batchResult struct {
	score ReviewScore
	err   error
	done  bool
}

// Analyze scores every review once, concurrently, sharing only the
// immutable lexicon snapshot across workers. A review with invalid text is
// recorded in Failures and counted as unscored without disturbing the rest
// of the batch. Cancellation is checked once per review; on cancellation
// the partial aggregates are discarded, not returned.
func (b *BatchAnalyzer) Analyze(ctx context.Context, reviews []Review) ([]ReviewScore, DatasetStats, error) {
	lex := b.a.lexicons.Snapshot()
	if lex == nil {
		return nil, DatasetStats{}, ErrNoLexicon
	}
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]batchResult, len(reviews))
	jobs := make(chan int)

	workers := b.a.cfg.Workers
	if workers > len(reviews) {
		workers = len(reviews)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					return
				}
				score, err := b.a.scoreReview(reviews[idx], lex)
				results[idx] = batchResult{score: score, err: err, done: true}
			}
		}()
	}

feed:
	for i := range reviews {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, DatasetStats{}, err
	}

	return b.fold(reviews, results)
}

// fold turns per-review results into the ordered score slice and the
// dataset statistics.
func (b *BatchAnalyzer) fold(reviews []Review, results []batchResult) ([]ReviewScore, DatasetStats, error) {
	stats := DatasetStats{
		Total:    len(reviews),
		PerLabel: map[Label]int{Positive: 0, Negative: 0, Neutral: 0},
	}

	scores := make([]ReviewScore, 0, len(reviews))
	var normalized []float64
	correct := 0

	for i, res := range results {
		if !res.done || res.err != nil {
			err := res.err
			if err == nil {
				err = ErrInvalidReviewText
			}
			stats.Unscored++
			stats.Failures = append(stats.Failures, BatchError{Index: i, Err: err})
			b.a.log.WithField("review", i).WithError(err).Warn("batch: review left unscored")
			continue
		}

		scores = append(scores, res.score)
		normalized = append(normalized, res.score.Normalized)
		stats.PerLabel[res.score.Label]++
		stats.Scored++

		if actual, ok := reviews[i].Label(); ok {
			stats.LabeledCount++
			if actual == res.score.Label {
				correct++
			}
		}
	}

	if len(normalized) > 0 {
		stats.MeanScore = stat.Mean(normalized, nil)
	}
	if stats.LabeledCount > 0 {
		stats.Accuracy = float64(correct) / float64(stats.LabeledCount)
	}
	stats.Histogram = scoreHistogram(normalized, b.a.cfg.HistogramBuckets)

	return scores, stats, nil
}

// scoreHistogram buckets normalized scores over [-1, 1] into n ordered
// buckets. The top edge is widened by one ulp so a score of exactly 1.0
// lands in the last bucket.
func scoreHistogram(normalized []float64, n int) []HistogramBucket {
	edges := floats.Span(make([]float64, n+1), -1, 1)

	buckets := make([]HistogramBucket, n)
	for i := range buckets {
		buckets[i] = HistogramBucket{Low: edges[i], High: edges[i+1]}
	}
	if len(normalized) == 0 {
		return buckets
	}

	sorted := append([]float64(nil), normalized...)
	sort.Float64s(sorted)

	dividers := append([]float64(nil), edges...)
	dividers[n] = math.Nextafter(1, 2)
	counts := stat.Histogram(nil, dividers, sorted, nil)

	for i := range buckets {
		buckets[i].Count = int(counts[i])
	}
	return buckets
}
