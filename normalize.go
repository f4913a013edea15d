package reviewlex

import (
	"regexp"
	"strings"
	"unicode"
)

// A Normalizer prepares raw review text for tokenization. Normalize is total
// and deterministic: any input produces some output, and normalizing twice
// produces the same string as normalizing once.
type Normalizer struct {
	contractions *strings.Replacer
}

var (
	urlRE       = regexp.MustCompile(`(https?://|www\.)\S+`)
	emailRE     = regexp.MustCompile(`\S+@\S+`)
	clauseRE    = regexp.MustCompile(`[,;:]`)
	spaceMarkRE = regexp.MustCompile(`\s+([.!?])`)
	markRunRE   = regexp.MustCompile(`[.!?]{2,}`)
	markGlueRE  = regexp.MustCompile(`([.!?])(\S)`)
	spaceRE     = regexp.MustCompile(`\s+`)
)

// contractionTable expands the contracted negations and auxiliaries that
// would otherwise hide a "not" from the negation detector. The table is
// fixed; it is applied after lowercasing and before punctuation removal.
var contractionTable = []string{
	"don't", "do not",
	"doesn't", "does not",
	"didn't", "did not",
	"won't", "will not",
	"wouldn't", "would not",
	"shouldn't", "should not",
	"couldn't", "could not",
	"can't", "can not",
	"cannot", "can not",
	"isn't", "is not",
	"aren't", "are not",
	"wasn't", "was not",
	"weren't", "were not",
	"hasn't", "has not",
	"haven't", "have not",
	"hadn't", "had not",
	"ain't", "is not",
	"n't", " not",
	"it's", "it is",
	"i'm", "i am",
	"i've", "i have",
	"you're", "you are",
	"we're", "we are",
	"they're", "they are",
}

// NewNormalizer builds a Normalizer with the fixed contraction table.
func NewNormalizer() *Normalizer {
	return &Normalizer{contractions: strings.NewReplacer(contractionTable...)}
}

// Normalize lowercases text, removes URLs and e-mail addresses, expands
// contractions, folds clause punctuation into sentence marks, strips
// everything that is not a letter, space, or sentence mark, and collapses
// whitespace. Sentence marks survive as soft boundaries for the negation
// window; everything else about the punctuation is discarded.
func (n *Normalizer) Normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "’", "'")
	text = urlRE.ReplaceAllString(text, " ")
	text = emailRE.ReplaceAllString(text, " ")
	text = n.contractions.Replace(text)
	text = clauseRE.ReplaceAllString(text, ".")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(r)
		case r == '.' || r == '!' || r == '?':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			b.WriteRune(' ')
		}
	}
	text = b.String()

	// Settle sentence marks into a canonical "word. word" shape: glued to
	// the word before them, one mark per run, one space after.
	text = spaceMarkRE.ReplaceAllString(text, "$1")
	text = markRunRE.ReplaceAllStringFunc(text, func(run string) string {
		return run[:1]
	})
	text = markGlueRE.ReplaceAllString(text, "$1 $2")

	text = spaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
