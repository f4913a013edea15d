package reviewlex

import (
	"errors"
	"fmt"
)

// ErrEmptyLexicon is returned when a lexicon source yields zero usable
// entries. The previously loaded snapshot, if any, stays active.
var ErrEmptyLexicon = errors.New("lexicon contains no valid entries")

// ErrInvalidReviewText is returned when a review has no scoreable text. In
// batch context it is recorded per item instead of aborting the run.
var ErrInvalidReviewText = errors.New("review text is empty")

// ErrNoLexicon is returned when scoring is attempted before any lexicon has
// been loaded.
var ErrNoLexicon = errors.New("no lexicon loaded")

// ErrNoReviewStore is returned by store-backed operations when no
// ReviewStore has been attached.
var ErrNoReviewStore = errors.New("no review store attached")

// A FormatError describes a lexicon line that could not be parsed.
type FormatError struct {
	Line   int    // 1-based line number in the source
	Text   string // The offending line
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("lexicon line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// A BatchError records one review that could not be scored during a batch
// run. The rest of the batch is unaffected.
type BatchError struct {
	Index int // Position of the review in the input sequence
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("review %d: %v", e.Index, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
