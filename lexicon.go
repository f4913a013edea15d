package reviewlex

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// A Lexicon is one immutable word-polarity table. It is never mutated after
// construction, so any number of scoring goroutines may read it without
// locking; reloads build a fresh Lexicon and swap it in through Store.
type Lexicon struct {
	entries      map[string]LexiconEntry
	negators     map[string]struct{}
	intensifiers map[string]float64 // word -> boost factor
}

// Lookup returns the entry for a normalized word, if any. It is a pure query.
func (l *Lexicon) Lookup(norm string) (LexiconEntry, bool) {
	e, ok := l.entries[norm]
	return e, ok
}

// IsNegator reports whether the word flips the sign of a following
// sentiment word.
func (l *Lexicon) IsNegator(norm string) bool {
	_, ok := l.negators[norm]
	return ok
}

// Intensifier returns the boost factor for the word and whether the word is
// an intensifier at all.
func (l *Lexicon) Intensifier(norm string) (float64, bool) {
	f, ok := l.intensifiers[norm]
	return f, ok
}

// Size returns the number of sentiment entries (negators and intensifiers
// excluded).
func (l *Lexicon) Size() int { return len(l.entries) }

// knows reports whether the scorer has any use for the word. The tokenizer
// consults this so stop-word removal never discards a word scoring needs.
func (l *Lexicon) knows(norm string) bool {
	if _, ok := l.entries[norm]; ok {
		return true
	}
	if _, ok := l.negators[norm]; ok {
		return true
	}
	_, ok := l.intensifiers[norm]
	return ok
}

// ParseLexicon reads a plain-text lexicon: one entry per line, fields
// word, polarity[, category] separated by commas or tabs. Blank lines and
// lines starting with '#' are skipped. Malformed lines are skipped with a
// warning; the load only fails when nothing usable remains.
func ParseLexicon(r io.Reader, cfg Config, log *logrus.Entry) (*Lexicon, error) {
	cfg = cfg.withDefaults()
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	lex := &Lexicon{
		entries:      make(map[string]LexiconEntry),
		negators:     make(map[string]struct{}),
		intensifiers: make(map[string]float64),
	}

	var firstFormatErr *FormatError
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitLexiconLine(line)
		if len(fields) < 2 {
			ferr := &FormatError{Line: lineNo, Text: line, Reason: "want word,polarity[,category]"}
			if firstFormatErr == nil {
				firstFormatErr = ferr
			}
			log.WithField("line", lineNo).Warn("lexicon: skipping malformed line")
			continue
		}

		word := normalizeLexiconWord(fields[0], cfg)
		polarity, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			ferr := &FormatError{Line: lineNo, Text: line, Reason: "bad polarity"}
			if firstFormatErr == nil {
				firstFormatErr = ferr
			}
			log.WithField("line", lineNo).Warn("lexicon: skipping line with unparseable polarity")
			continue
		}
		if polarity > cfg.MaxPolarity {
			polarity = cfg.MaxPolarity
		} else if polarity < -cfg.MaxPolarity {
			polarity = -cfg.MaxPolarity
		}

		category := CategoryPositive
		if polarity < 0 {
			category = CategoryNegative
		}
		if len(fields) >= 3 {
			c, ok := parseCategory(fields[2])
			if !ok {
				log.WithFields(logrus.Fields{"line": lineNo, "tag": fields[2]}).
					Warn("lexicon: unknown category tag, line skipped")
				continue
			}
			category = c
		}

		switch category {
		case CategoryNegator:
			lex.negators[word] = struct{}{}
		case CategoryIntensifier:
			factor := cfg.IntensifierFactor
			if polarity > 0 {
				factor = polarity
			}
			lex.intensifiers[word] = factor
		default:
			if _, dup := lex.entries[word]; dup {
				log.WithFields(logrus.Fields{"line": lineNo, "word": word}).
					Warn("lexicon: duplicate word, last entry wins")
			}
			lex.entries[word] = LexiconEntry{Word: word, Polarity: polarity, Category: category}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lexicon: %w", err)
	}

	if len(lex.entries)+len(lex.negators)+len(lex.intensifiers) == 0 {
		if firstFormatErr != nil {
			return nil, firstFormatErr
		}
		return nil, ErrEmptyLexicon
	}

	log.WithFields(logrus.Fields{
		"words":        len(lex.entries),
		"negators":     len(lex.negators),
		"intensifiers": len(lex.intensifiers),
	}).Debug("lexicon loaded")

	return lex, nil
}

func splitLexiconLine(line string) []string {
	raw := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == '\t'
	})
	fields := raw[:0]
	for _, f := range raw {
		f = strings.TrimSpace(f)
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// normalizeLexiconWord applies the same lowercasing and stemming the
// tokenizer applies to review tokens. Keeping the two in lockstep is what
// lets inflected forms in reviews match their lexicon base form.
func normalizeLexiconWord(word string, cfg Config) string {
	word = strings.ToLower(word)
	if cfg.DisableStemming {
		return word
	}
	return stemWord(word)
}

func parseCategory(tag string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "positive", "pos":
		return CategoryPositive, true
	case "negative", "neg":
		return CategoryNegative, true
	case "intensifier", "booster":
		return CategoryIntensifier, true
	case "negator", "negation":
		return CategoryNegator, true
	}
	return 0, false
}

// A Store holds the currently active Lexicon behind a generation pointer.
// Load builds the replacement table off to the side and publishes it with a
// single atomic swap, so a concurrent scorer sees either the old table or
// the new one, never a half-loaded mix.
type Store struct {
	cfg Config
	log *logrus.Entry
	cur atomic.Pointer[Lexicon]
}

// NewStore creates an empty store. A nil logger falls back to the standard
// logrus logger.
func NewStore(cfg Config, log *logrus.Entry) *Store {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Store{cfg: cfg.withDefaults(), log: log}
}

// Load parses src and, on success, swaps the active lexicon. On failure the
// previous lexicon (if any) stays active.
func (s *Store) Load(src io.Reader) error {
	lex, err := ParseLexicon(src, s.cfg, s.log)
	if err != nil {
		return err
	}
	s.cur.Store(lex)
	return nil
}

// LoadString is a convenience wrapper over Load.
func (s *Store) LoadString(src string) error {
	return s.Load(strings.NewReader(src))
}

// Snapshot returns the active lexicon, or nil when nothing has been loaded.
func (s *Store) Snapshot() *Lexicon {
	return s.cur.Load()
}
