package wordmodel

import (
	"errors"

	"github.com/standardbeagle/wordmodel/internal/debug"
	wmerrors "github.com/standardbeagle/wordmodel/internal/errors"
	"github.com/standardbeagle/wordmodel/internal/lexicon"
	"github.com/standardbeagle/wordmodel/internal/semantic"
)

// LexiconStats counts lexicon expansions performed by BagOfWordNet
type LexiconStats struct {
	Lookups    int
	Found      int
	NotFound   int
	Failed     int
	OpenFailed bool
}

// BagOfWordNet keeps every word of a sentence and adds the stemmed synonyms
// and hypernyms found in a lexicon. For each word and each part of speech,
// the words of the first sense's first direct hypernym are added, followed by
// the words of the first sense itself.
//
// Lookup failures never fail extraction: they are logged, counted in Stats
// and the word is left unexpanded.
type BagOfWordNet struct {
	stemmed
	open   lexicon.Opener
	lex    lexicon.Lexicon
	opened bool
	stats  LexiconStats
}

// NewBagOfWordNet creates the extractor. The lexicon is opened on first use
// and kept for the lifetime of the extractor.
func NewBagOfWordNet(tokenizer semantic.Tokenizer, stemmer semantic.Stemmer, open lexicon.Opener) (*BagOfWordNet, error) {
	if err := requireStemmer(ModelWordNet, stemmer); err != nil {
		return nil, err
	}
	if open == nil {
		return nil, wmerrors.NewConfigError("lexicon", "",
			errors.New("model wordnet requires a lexicon"))
	}
	return &BagOfWordNet{
		stemmed: stemmed{tokenizer: tokenizer, stemmer: stemmer},
		open:    open,
	}, nil
}

func (w *BagOfWordNet) Name() string { return ModelWordNet }

// Stats returns the expansion counters
func (w *BagOfWordNet) Stats() LexiconStats {
	return w.stats
}

func (w *BagOfWordNet) lexicon() lexicon.Lexicon {
	if w.opened {
		return w.lex
	}
	w.opened = true

	lex, err := w.open()
	if err != nil {
		w.stats.OpenFailed = true
		debug.LogLexicon("failed to open lexicon, expansion disabled: %v", err)
		return nil
	}
	w.lex = lex
	return lex
}

func (w *BagOfWordNet) Features(sentence string) []string {
	words := w.tokenizer.Words(sentence)
	features := make([]string, 0, len(words))
	if len(words) == 0 {
		return features
	}

	lex := w.lexicon()
	for _, word := range words {
		features = append(features, word)
		if lex == nil {
			continue
		}
		for _, pos := range lexicon.ExpansionOrder {
			features = w.expand(features, lex, pos, word)
		}
	}
	return features
}

func (w *BagOfWordNet) expand(features []string, lex lexicon.Lexicon, pos lexicon.POS, word string) []string {
	w.stats.Lookups++
	result := lexicon.Expand(lex, pos, word)

	switch result.Status {
	case lexicon.StatusFound:
		w.stats.Found++
		for _, lemma := range result.Hypernyms {
			features = append(features, w.tokenizer.StemWordsUnprepared(lemma, w.stemmer)...)
		}
		for _, lemma := range result.Synonyms {
			features = append(features, w.tokenizer.StemWordsUnprepared(lemma, w.stemmer)...)
		}
	case lexicon.StatusFailed:
		w.stats.Failed++
		debug.LogLexicon("%v", result.Err)
	default:
		w.stats.NotFound++
	}
	return features
}
