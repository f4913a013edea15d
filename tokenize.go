package reviewlex

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A Tokenizer splits normalized text into word tokens, removes stop words,
// and stems what remains. The output is a materialized slice; nothing about
// it is lazy or restarted.
type Tokenizer struct {
	cfg  Config
	stop map[string]struct{}
	seg  *sentences.DefaultSentenceTokenizer
}

// NewTokenizer builds a tokenizer for the configuration. The sentence
// segmenter's trained data is embedded in its package, so the error path
// only fires when that data is broken.
func NewTokenizer(cfg Config) (*Tokenizer, error) {
	cfg = cfg.withDefaults()
	seg, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("building sentence segmenter: %w", err)
	}
	stop := cfg.StopWords
	if stop == nil {
		stop = defaultStopWords()
	}
	return &Tokenizer{cfg: cfg, stop: stop, seg: seg}, nil
}

// Tokenize splits normalized text into tokens. Each token carries the index
// of the sentence it came from, which is what keeps negation windows from
// leaking across sentence boundaries. A stop word is discarded unless the
// lexicon has a role for it (sentiment word, negator, or intensifier).
func (t *Tokenizer) Tokenize(normalized string, lex *Lexicon) []Token {
	if normalized == "" {
		return nil
	}

	var tokens []Token
	pos := 0
	for si, sent := range t.seg.Tokenize(normalized) {
		for _, field := range strings.Fields(sent.Text) {
			surface := strings.Trim(field, ".!?")
			if surface == "" {
				continue
			}
			norm := surface
			if !t.cfg.DisableStemming {
				norm = stemWord(surface)
			}
			if _, isStop := t.stop[surface]; isStop {
				if lex == nil || !lex.knows(norm) {
					continue
				}
			}
			tokens = append(tokens, Token{
				Surface:  surface,
				Norm:     norm,
				Position: pos,
				Sentence: si,
			})
			pos++
		}
	}
	return tokens
}

// stemWord reduces a word to its snowball (Porter2) stem. The same function
// runs over lexicon words at load time, which is the invariant that makes
// inflected review tokens match their lexicon base form.
func stemWord(word string) string {
	stemmed, err := snowball.Stem(word, "english", false)
	if err != nil || stemmed == "" {
		return word
	}
	return stemmed
}
