package config

import (
	"github.com/standardbeagle/wordmodel/internal/lexicon"
	"github.com/standardbeagle/wordmodel/internal/semantic"
	"github.com/standardbeagle/wordmodel/internal/wordmodel"
)

// StopwordList returns the built-in stopwords plus the configured extras, or
// nil when there are no extras
func (c *Config) StopwordList() []string {
	if len(c.Stopwords.Extra) == 0 {
		return nil
	}
	words := make([]string, 0, len(semantic.DefaultStopwords)+len(c.Stopwords.Extra))
	words = append(words, semantic.DefaultStopwords...)
	return append(words, c.Stopwords.Extra...)
}

// NewStemmer builds the stemmer chain: the algorithm, optionally iterated,
// optionally cached, optionally filtering stopwords, optionally recording
// words for inversion
func (c *Config) NewStemmer() (semantic.Stemmer, error) {
	stemmer, err := semantic.NewStemmer(c.Stemmer.Algorithm, c.Stemmer.MinLength, c.Stemmer.Exclusions)
	if err != nil {
		return nil, err
	}
	if c.Stemmer.Iterated {
		stemmer = semantic.Iterated(stemmer)
	}
	if c.Stemmer.CacheSize > 0 {
		stemmer = semantic.Cached(stemmer, c.Stemmer.CacheSize)
	}
	if c.Stemmer.RemoveStopwords {
		stopwords := c.StopwordList()
		if stopwords == nil {
			stopwords = semantic.DefaultStopwords
		}
		stemmer = semantic.StopwordFilter(stemmer, stopwords)
	}
	if c.Stemmer.Invertible {
		stemmer = semantic.NewInvertibleStemmer(stemmer)
	}
	return stemmer, nil
}

// Options converts the configuration into pipeline options
func (c *Config) Options() (wordmodel.Options, error) {
	stemmer, err := c.NewStemmer()
	if err != nil {
		return wordmodel.Options{}, err
	}

	tokenizer := semantic.Tokenizer{
		MinLength:       c.Tokenizer.MinTokenLength,
		PrepareAcronyms: c.Tokenizer.PrepareAcronyms,
	}
	opts := wordmodel.Options{
		Model:     c.Model,
		Stemmer:   stemmer,
		Tokenizer: &tokenizer,
		N:         c.NGram,
		Window:    c.Window,
		Stopwords: c.StopwordList(),
	}
	if c.Lexicon.Path != "" {
		opts.Lexicon = lexicon.OpenTOML(c.Lexicon.Path)
	}
	return opts, nil
}

// NewPipeline builds the configured pipeline
func (c *Config) NewPipeline() (*wordmodel.Pipeline, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return wordmodel.New(opts)
}
