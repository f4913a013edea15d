package reviewlex

import (
	"sync"
	"time"
)

// A ReviewStore is the external collaborator that owns review records. The
// pipeline only ever appends and iterates; it never opens files or
// databases itself.
type ReviewStore interface {
	// AppendReview adds a review. An empty label means "unlabeled".
	AppendReview(text string, label Label) error
	// AllReviews returns a snapshot of every stored review.
	AllReviews() ([]Review, error)
}

// A StoredReview is the record shape MemoryStore keeps. Rating follows the
// dataset convention of deriving a star rating from the label when none was
// given.
type StoredReview struct {
	ID      int
	Rating  int
	Body    string
	Class   Label
	AddedAt time.Time
}

func (r StoredReview) Text() string { return r.Body }

func (r StoredReview) Label() (Label, bool) {
	if r.Class == "" {
		return "", false
	}
	return r.Class, true
}

func (r StoredReview) CreatedAt() time.Time { return r.AddedAt }

// MemoryStore is an in-memory ReviewStore. It exists for tests and for
// callers that bring their own persistence elsewhere; the pipeline treats
// it through the interface like any other store.
type MemoryStore struct {
	mu      sync.Mutex
	reviews []StoredReview
	nextID  int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// AppendReview adds a review record, assigning the next ID and, when a label
// is present, the implied rating.
func (m *MemoryStore) AppendReview(text string, label Label) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec := StoredReview{
		ID:      m.nextID,
		Body:    text,
		Class:   label,
		AddedAt: time.Now(),
	}
	if label != "" {
		rec.Rating = label.ImpliedRating()
	}
	m.reviews = append(m.reviews, rec)
	m.nextID++
	return nil
}

// AllReviews returns the stored reviews in insertion order. The slice is a
// copy; callers cannot mutate the store through it.
func (m *MemoryStore) AllReviews() ([]Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Review, len(m.reviews))
	for i, r := range m.reviews {
		out[i] = r
	}
	return out, nil
}

// Len returns the number of stored reviews.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.reviews)
}
