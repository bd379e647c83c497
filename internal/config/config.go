package config

import (
	"os"
	"path/filepath"

	"github.com/standardbeagle/wordmodel/internal/semantic"
)

// FileName is the configuration file looked up in the home and project directories
const FileName = ".wordmodel.kdl"

// Defaults used when the configuration file does not set a value
const (
	DefaultModel          = "bag-of-words"
	DefaultNGram          = 3
	DefaultWindow         = 5
	DefaultMinTokenLength = 1
	DefaultAlgorithm      = "porter2"
	DefaultCorpusPattern  = "**/*.txt"
)

type Config struct {
	Version   int
	Model     string // Extractor model name, see wordmodel.Models
	NGram     int    // N for the ngram and multigram models
	Window    int    // Skip-gram window
	Tokenizer Tokenizer
	Stemmer   Stemmer
	Stopwords Stopwords
	Lexicon   Lexicon
	Corpus    Corpus
}

type Tokenizer struct {
	MinTokenLength  int  // Minimum word length before stemming is attempted
	PrepareAcronyms bool // Keep runs of capitals together as one word
}

type Stemmer struct {
	Algorithm       string // porter2, porter, snowball or none
	Iterated        bool   // Re-apply the algorithm until the stem stops changing
	Invertible      bool   // Record words per stem so features can be mapped back
	RemoveStopwords bool   // Drop stopwords before feature extraction
	MinLength       int    // Words shorter than this are not stemmed
	CacheSize       int    // Words whose stems are memoized, 0 disables the cache
	Exclusions      map[string]bool
}

type Stopwords struct {
	Extra []string // Added to the built-in stopword list
}

type Lexicon struct {
	Path string // TOML lexicon used by the wordnet model
}

type Corpus struct {
	Workers  int      // Concurrent file readers, 0 = auto-detect
	Patterns []string // Doublestar patterns of files to load
	Exclude  []string // Doublestar patterns of files to skip

	MaxFileSizeKB int64 // Larger files are skipped, 0 = corpus default
}

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{
		Version: 1,
		Model:   DefaultModel,
		NGram:   DefaultNGram,
		Window:  DefaultWindow,
		Tokenizer: Tokenizer{
			MinTokenLength:  DefaultMinTokenLength,
			PrepareAcronyms: true,
		},
		Stemmer: Stemmer{
			Algorithm:  DefaultAlgorithm,
			CacheSize:  semantic.DefaultStemCacheSize,
			Exclusions: map[string]bool{},
		},
		Corpus: Corpus{
			Patterns: []string{DefaultCorpusPattern},
		},
	}
}

// Load reads the configuration file at path. An empty path searches the
// current directory; see LoadWithRoot.
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadWithRoot("")
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return Default(), nil
	}
	return cfg, nil
}

// LoadWithRoot merges ~/.wordmodel.kdl with rootDir/.wordmodel.kdl, the
// project file taking precedence. Missing files yield the defaults.
func LoadWithRoot(rootDir string) (*Config, error) {
	searchDir := "."
	if rootDir != "" {
		searchDir = rootDir
	}

	var baseConfig *Config
	if homeDir, err := os.UserHomeDir(); err == nil {
		if globalCfg, err := LoadKDL(homeDir); err == nil && globalCfg != nil {
			baseConfig = globalCfg
		}
	}

	projectConfig, err := LoadKDL(searchDir)
	if err != nil {
		return nil, err
	}

	switch {
	case baseConfig != nil && projectConfig != nil:
		return mergeConfigs(baseConfig, projectConfig), nil
	case projectConfig != nil:
		return projectConfig, nil
	case baseConfig != nil:
		return baseConfig, nil
	}
	return Default(), nil
}

// LoadKDL loads dir/.wordmodel.kdl, returning nil if there is none
func LoadKDL(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return LoadFile(path)
}

// mergeConfigs overlays project on base. Stopwords and corpus exclusions from
// both files are kept.
func mergeConfigs(base, project *Config) *Config {
	merged := *project
	merged.Stopwords.Extra = union(base.Stopwords.Extra, project.Stopwords.Extra)
	merged.Corpus.Exclude = union(base.Corpus.Exclude, project.Corpus.Exclude)
	if merged.Lexicon.Path == "" {
		merged.Lexicon.Path = base.Lexicon.Path
	}
	return &merged
}

func union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}
