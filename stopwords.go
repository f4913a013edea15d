package reviewlex

import (
	"strings"
	"sync"

	"github.com/bbalet/stopwords"
)

// The bbalet/stopwords library doesn't export its stop-word tables, so the
// default set is detected functionally: a candidate word is a stop word when
// the library filters it out of a one-word string. Negation words are then
// removed from the set because the extractor needs them, whatever the
// library thinks.

var (
	defaultStopOnce sync.Once
	defaultStopSet  map[string]struct{}
)

// stopWordCandidates is the list of common English words probed against the
// library. Anything not in this list is simply never treated as a default
// stop word.
var stopWordCandidates = []string{
	"a", "an", "and", "are", "as", "at", "be", "been", "by", "for", "from",
	"had", "has", "have", "he", "her", "his", "how", "i", "in", "is", "it",
	"its", "of", "on", "or", "she", "that", "the", "their", "them", "they",
	"this", "to", "was", "we", "were", "what", "when", "where", "which",
	"who", "will", "with", "would", "you", "your",
	"about", "after", "all", "also", "am", "any", "because", "before",
	"being", "between", "both", "but", "can", "could", "did", "do", "does",
	"down", "each", "even", "get", "go", "going", "got", "here", "him",
	"himself", "if", "into", "just", "like", "made", "make", "many", "may",
	"me", "might", "more", "most", "much", "must", "my", "now", "off",
	"only", "other", "our", "out", "over", "own", "said", "same", "see",
	"should", "since", "so", "some", "still", "such", "take", "than",
	"then", "there", "these", "those", "through", "too", "under", "up",
	"upon", "us", "use", "used", "using", "way", "well", "went", "while",
	"why", "yet",
}

// negationKeepList holds words that must survive stop-word removal even
// when the library classes them as stop words, because they flip the sign
// of sentiment words downstream.
var negationKeepList = []string{
	"no", "not", "nor", "never", "neither", "none", "nothing", "nobody",
	"nowhere",
}

// defaultStopWords returns the shared default stop-word set. Callers must
// not mutate it; Config.StopWords replaces it wholesale instead.
func defaultStopWords() map[string]struct{} {
	defaultStopOnce.Do(func() {
		set := make(map[string]struct{}, len(stopWordCandidates))
		for _, w := range stopWordCandidates {
			cleaned := strings.TrimSpace(stopwords.CleanString(w, "en", false))
			if cleaned == "" {
				set[w] = struct{}{}
			}
		}
		for _, w := range negationKeepList {
			delete(set, w)
		}
		defaultStopSet = set
	})
	return defaultStopSet
}
