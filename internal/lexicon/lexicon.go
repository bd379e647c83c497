// Package lexicon defines the lexical knowledge base capability used for
// synonym and hypernym expansion, plus an in-memory implementation that can
// be loaded from a TOML file.
package lexicon

import (
	"errors"
	"fmt"

	wmerrors "github.com/standardbeagle/wordmodel/internal/errors"
)

// POS is a part of speech
type POS string

const (
	Verb      POS = "verb"
	Adjective POS = "adjective"
	Adverb    POS = "adverb"
	Noun      POS = "noun"
)

// ExpansionOrder is the order in which parts of speech are queried
var ExpansionOrder = []POS{Verb, Adjective, Adverb, Noun}

// Valid reports whether p is a known part of speech
func (p POS) Valid() bool {
	switch p {
	case Verb, Adjective, Adverb, Noun:
		return true
	}
	return false
}

// Synset is a set of synonymous lemmas sharing one sense
type Synset struct {
	ID        string   `toml:"id"`
	POS       POS      `toml:"pos"`
	Words     []string `toml:"words"`
	Hypernyms []string `toml:"hypernyms"`
}

// IndexEntry lists the senses of one lemma for one part of speech, most
// common sense first
type IndexEntry struct {
	Lemma  string
	POS    POS
	Senses []*Synset
}

// Lexicon is a lexical knowledge base.
// Lookup returns a nil entry and nil error when the word is unknown.
type Lexicon interface {
	Lookup(pos POS, word string) (*IndexEntry, error)
	DirectHypernyms(sense *Synset) ([]*Synset, error)
}

// Opener acquires a Lexicon, typically by reading it from disk
type Opener func() (Lexicon, error)

// Status is the outcome of one expansion
type Status int

const (
	StatusNotFound Status = iota
	StatusFound
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusFailed:
		return "failed"
	default:
		return "not_found"
	}
}

// Result is the explicit outcome of expanding one (word, POS) pair
type Result struct {
	Status    Status
	Hypernyms []string // lemmas of the first direct hypernym of the first sense
	Synonyms  []string // lemmas of the first sense
	Err       error    // set when Status is StatusFailed
}

var errMalformedSense = errors.New("malformed sense data")

// Expand queries lex for the first sense of word and its first direct
// hypernym. Failures are returned in the result, never as a panic.
func Expand(lex Lexicon, pos POS, word string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = failed("lookup", pos, word, fmt.Errorf("panic: %v", r))
		}
	}()

	entry, err := lex.Lookup(pos, word)
	if err != nil {
		return failed("lookup", pos, word, err)
	}
	if entry == nil || len(entry.Senses) == 0 {
		return Result{Status: StatusNotFound}
	}

	sense := entry.Senses[0]
	if sense == nil {
		return failed("senses", pos, word, errMalformedSense)
	}

	result = Result{Status: StatusFound, Synonyms: sense.Words}

	hypernyms, err := lex.DirectHypernyms(sense)
	if err != nil {
		return failed("hypernyms", pos, word, err)
	}
	if len(hypernyms) > 0 && hypernyms[0] != nil {
		result.Hypernyms = hypernyms[0].Words
	}
	return result
}

func failed(op string, pos POS, word string, err error) Result {
	return Result{
		Status: StatusFailed,
		Err:    wmerrors.NewLookupError(op, string(pos), word, err),
	}
}
