package reviewlex

// An Extractor turns a token sequence into lexicon hits, applying negation
// and intensifier context from the tokens before each sentiment word.
type Extractor struct {
	cfg Config
}

// NewExtractor builds an extractor with the given window configuration.
func NewExtractor(cfg Config) *Extractor {
	return &Extractor{cfg: cfg.withDefaults()}
}

// Extract scans tokens left to right and emits one hit per lexicon match.
// A token that is both a sentiment word and a negator or intensifier acts
// as a sentiment word only; when it appears inside another word's lookback
// window it contributes nothing there. Among several negators in range only
// the nearest one applies, and no window reaches across a sentence
// boundary.
func (e *Extractor) Extract(tokens []Token, lex *Lexicon) []LexiconHit {
	if lex == nil || len(tokens) == 0 {
		return nil
	}

	var hits []LexiconHit
	for i, tok := range tokens {
		entry, ok := lex.Lookup(tok.Norm)
		if !ok {
			continue
		}

		polarity := entry.Polarity
		negated := false
		boosted := false

		// Nearest negator wins; scan outward from the word.
		for j := i - 1; j >= 0 && i-j <= e.cfg.NegationWindow; j-- {
			if tokens[j].Sentence != tok.Sentence {
				break
			}
			if _, sentiment := lex.Lookup(tokens[j].Norm); sentiment {
				continue // sentiment role only, never negator
			}
			if lex.IsNegator(tokens[j].Norm) {
				polarity = -polarity
				negated = true
				break
			}
		}

		for j := i - 1; j >= 0 && i-j <= e.cfg.NegationWindow; j-- {
			if tokens[j].Sentence != tok.Sentence {
				break
			}
			if _, sentiment := lex.Lookup(tokens[j].Norm); sentiment {
				continue
			}
			if factor, ok := lex.Intensifier(tokens[j].Norm); ok {
				polarity *= factor
				boosted = true
				break
			}
		}

		hits = append(hits, LexiconHit{
			Position: tok.Position,
			Entry:    entry,
			Polarity: polarity,
			Negated:  negated,
			Boosted:  boosted,
		})
	}
	return hits
}
