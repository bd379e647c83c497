package wordmodel

import (
	"fmt"
	"strings"

	wmerrors "github.com/standardbeagle/wordmodel/internal/errors"
	"github.com/standardbeagle/wordmodel/internal/lexicon"
	"github.com/standardbeagle/wordmodel/internal/semantic"
)

// Model names accepted by New
const (
	ModelBagOfWords             = "bag-of-words"
	ModelBagOfUnstemmedWords    = "bag-of-unstemmed-words"
	ModelNGram                  = "ngram"
	ModelMultiGram              = "multigram"
	ModelBigram                 = "bigram"
	ModelSkipgram               = "skipgram"
	ModelBigramWithoutStopwords = "bigram-without-stopwords"
	ModelPhraseTrigram          = "phrase-trigram"
	ModelWordNet                = "wordnet"
)

// DefaultN is the n-gram size used when none is configured
const DefaultN = 3

// Models lists every model name
var Models = []string{
	ModelBagOfWords,
	ModelBagOfUnstemmedWords,
	ModelNGram,
	ModelMultiGram,
	ModelBigram,
	ModelSkipgram,
	ModelBigramWithoutStopwords,
	ModelPhraseTrigram,
	ModelWordNet,
}

// Options selects and parameterizes a model
type Options struct {
	Model   string
	Stemmer semantic.Stemmer

	// Tokenizer defaults to semantic.DefaultTokenizer
	Tokenizer *semantic.Tokenizer

	// N is the n-gram size for ngram and multigram, DefaultN when zero
	N int
	// Window is the skip-gram window, DefaultWindow when zero
	Window int

	// Stopwords replaces semantic.DefaultStopwords when non-nil
	Stopwords []string

	// Lexicon opens the lexicon used by the wordnet model
	Lexicon lexicon.Opener
}

// New builds a pipeline for the named model. Configuration errors, such as a
// missing stemmer, are reported here rather than on first use.
func New(opts Options) (*Pipeline, error) {
	tokenizer := semantic.DefaultTokenizer
	if opts.Tokenizer != nil {
		tokenizer = *opts.Tokenizer
	}
	n := opts.N
	if n == 0 {
		n = DefaultN
	}
	window := opts.Window
	if window == 0 {
		window = DefaultWindow
	}
	stopwords := semantic.NewStopwordCache(opts.Stopwords)

	var (
		extractor Extractor
		err       error
	)
	switch opts.Model {
	case ModelBagOfWords:
		extractor, err = NewBagOfWords(tokenizer, opts.Stemmer)
	case ModelBagOfUnstemmedWords:
		extractor = NewBagOfUnstemmedWords(tokenizer)
	case ModelNGram:
		extractor, err = NewNGram(tokenizer, opts.Stemmer, n)
	case ModelMultiGram:
		extractor, err = NewMultiGram(tokenizer, opts.Stemmer, n)
	case ModelBigram:
		extractor, err = NewBigram(tokenizer, opts.Stemmer)
	case ModelSkipgram:
		extractor, err = NewSkipgram(tokenizer, opts.Stemmer, window)
	case ModelBigramWithoutStopwords:
		extractor, err = NewBigramWithoutStopwords(tokenizer, opts.Stemmer, stopwords)
	case ModelPhraseTrigram:
		extractor, err = NewPhraseTrigram(tokenizer, opts.Stemmer, stopwords)
	case ModelWordNet:
		extractor, err = NewBagOfWordNet(tokenizer, opts.Stemmer, opts.Lexicon)
	default:
		return nil, wmerrors.NewConfigError("model", opts.Model,
			fmt.Errorf("unknown model: %q (must be one of %s)", opts.Model, strings.Join(Models, ", ")))
	}
	if err != nil {
		return nil, err
	}

	pipeline := NewPipeline(extractor)
	pipeline.tokenizer = tokenizer
	pipeline.stopwords = stopwords
	return pipeline, nil
}
