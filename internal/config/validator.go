package config

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	wmerrors "github.com/standardbeagle/wordmodel/internal/errors"
	"github.com/standardbeagle/wordmodel/internal/semantic"
	"github.com/standardbeagle/wordmodel/internal/wordmodel"
)

var algorithms = []string{
	semantic.AlgorithmPorter2,
	semantic.AlgorithmPorter,
	semantic.AlgorithmSnowball,
	semantic.AlgorithmNone,
}

// Validator validates configuration and sets smart defaults
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults checks every section and reports all violations at
// once, as a ConfigError wrapping a MultiError
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	var errs []error
	errs = append(errs, v.validateModel(cfg)...)
	errs = append(errs, v.validateTokenizer(&cfg.Tokenizer)...)
	errs = append(errs, v.validateStemmer(&cfg.Stemmer)...)
	errs = append(errs, v.validateCorpus(&cfg.Corpus)...)

	if err := wmerrors.NewMultiError(errs).ErrorOrNil(); err != nil {
		return wmerrors.NewConfigError("config", "", err)
	}

	v.setSmartDefaults(cfg)
	return nil
}

func (v *Validator) validateModel(cfg *Config) []error {
	var errs []error
	if !slices.Contains(wordmodel.Models, cfg.Model) {
		errs = append(errs, wmerrors.NewConfigError("model", cfg.Model,
			fmt.Errorf("unknown model (must be one of %s)", strings.Join(wordmodel.Models, ", "))))
	}
	if cfg.NGram < 1 {
		errs = append(errs, wmerrors.NewConfigError("ngram", fmt.Sprint(cfg.NGram),
			errors.New("ngram must be at least 1")))
	}
	if cfg.Window < 1 {
		errs = append(errs, wmerrors.NewConfigError("window", fmt.Sprint(cfg.Window),
			errors.New("window must be at least 1")))
	}
	if cfg.Model == wordmodel.ModelWordNet && cfg.Lexicon.Path == "" {
		errs = append(errs, wmerrors.NewConfigError("lexicon.path", "",
			errors.New("the wordnet model requires a lexicon path")))
	}
	return errs
}

func (v *Validator) validateTokenizer(tokenizer *Tokenizer) []error {
	if tokenizer.MinTokenLength < 1 {
		return []error{wmerrors.NewConfigError("tokenizer.min_token_length", fmt.Sprint(tokenizer.MinTokenLength),
			errors.New("min_token_length must be at least 1"))}
	}
	return nil
}

func (v *Validator) validateStemmer(stemmer *Stemmer) []error {
	var errs []error
	if !slices.Contains(algorithms, stemmer.Algorithm) {
		errs = append(errs, wmerrors.NewConfigError("stemmer.algorithm", stemmer.Algorithm,
			fmt.Errorf("unknown algorithm (must be one of %s)", strings.Join(algorithms, ", "))))
	}
	if stemmer.MinLength < 0 {
		errs = append(errs, wmerrors.NewConfigError("stemmer.min_length", fmt.Sprint(stemmer.MinLength),
			errors.New("min_length cannot be negative")))
	}
	if stemmer.CacheSize < 0 {
		errs = append(errs, wmerrors.NewConfigError("stemmer.cache_size", fmt.Sprint(stemmer.CacheSize),
			errors.New("cache_size cannot be negative")))
	}
	return errs
}

func (v *Validator) validateCorpus(corpus *Corpus) []error {
	var errs []error
	if corpus.Workers < 0 {
		errs = append(errs, wmerrors.NewConfigError("corpus.workers", fmt.Sprint(corpus.Workers),
			errors.New("workers cannot be negative")))
	}
	if corpus.MaxFileSizeKB < 0 {
		errs = append(errs, wmerrors.NewConfigError("corpus.max_file_size_kb", fmt.Sprint(corpus.MaxFileSizeKB),
			errors.New("max_file_size_kb cannot be negative")))
	}
	for _, pattern := range append(slices.Clone(corpus.Patterns), corpus.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, wmerrors.NewConfigError("corpus.patterns", pattern,
				errors.New("invalid glob pattern")))
		}
	}
	return errs
}

// setSmartDefaults applies defaults based on system capabilities
func (v *Validator) setSmartDefaults(cfg *Config) {
	// Leave one core for the rest of the system
	if cfg.Corpus.Workers == 0 {
		cfg.Corpus.Workers = max(1, runtime.NumCPU()-1)
	}
	if len(cfg.Corpus.Patterns) == 0 {
		cfg.Corpus.Patterns = []string{DefaultCorpusPattern}
	}
	if cfg.Stemmer.Exclusions == nil {
		cfg.Stemmer.Exclusions = map[string]bool{}
	}
}

// ValidateConfig is a convenience function for quick validation
func ValidateConfig(cfg *Config) error {
	return NewValidator().ValidateAndSetDefaults(cfg)
}
