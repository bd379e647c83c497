package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKDL_Defaults(t *testing.T) {
	cfg, err := parseKDL("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, 3, cfg.NGram)
	assert.Equal(t, 5, cfg.Window)
	assert.Equal(t, 1, cfg.Tokenizer.MinTokenLength)
	assert.True(t, cfg.Tokenizer.PrepareAcronyms)
	assert.Equal(t, "porter2", cfg.Stemmer.Algorithm)
	assert.False(t, cfg.Stemmer.Invertible)
	assert.Equal(t, []string{"**/*.txt"}, cfg.Corpus.Patterns)
}

func TestParseKDL_FullConfig(t *testing.T) {
	kdlContent := `
model "phrase-trigram"
ngram 4
window 2
tokenizer {
    min_token_length 2
    prepare_acronyms false
}
stemmer {
    algorithm "snowball"
    iterated true
    invertible true
    remove_stopwords true
    min_length 3
    cache_size 128
    exclusions "API" "http"
}
stopwords {
    extra "foo" "bar"
}
lexicon {
    path "/data/lexicon.toml"
}
corpus {
    workers 8
    patterns "**/*.md" "**/*.txt"
    exclude "**/vendor/**"
    max_file_size_kb 256
}
`
	cfg, err := parseKDL(kdlContent)
	require.NoError(t, err)

	assert.Equal(t, "phrase-trigram", cfg.Model)
	assert.Equal(t, 4, cfg.NGram)
	assert.Equal(t, 2, cfg.Window)
	assert.Equal(t, 2, cfg.Tokenizer.MinTokenLength)
	assert.False(t, cfg.Tokenizer.PrepareAcronyms)

	assert.Equal(t, "snowball", cfg.Stemmer.Algorithm)
	assert.True(t, cfg.Stemmer.Iterated)
	assert.True(t, cfg.Stemmer.Invertible)
	assert.True(t, cfg.Stemmer.RemoveStopwords)
	assert.Equal(t, 3, cfg.Stemmer.MinLength)
	assert.Equal(t, 128, cfg.Stemmer.CacheSize)
	assert.Equal(t, map[string]bool{"api": true, "http": true}, cfg.Stemmer.Exclusions)

	assert.Equal(t, []string{"foo", "bar"}, cfg.Stopwords.Extra)
	assert.Equal(t, "/data/lexicon.toml", cfg.Lexicon.Path)

	assert.Equal(t, 8, cfg.Corpus.Workers)
	assert.Equal(t, []string{"**/*.md", "**/*.txt"}, cfg.Corpus.Patterns)
	assert.Equal(t, []string{"**/vendor/**"}, cfg.Corpus.Exclude)
	assert.Equal(t, int64(256), cfg.Corpus.MaxFileSizeKB)
}

func TestParseKDL_BlockExclusions(t *testing.T) {
	kdlContent := `
stemmer {
    exclusions {
        "grpc"
        "json"
    }
}
`
	cfg, err := parseKDL(kdlContent)
	require.NoError(t, err)
	assert.True(t, cfg.Stemmer.Exclusions["grpc"])
	assert.True(t, cfg.Stemmer.Exclusions["json"])
}

func TestParseKDL_WrongTypesIgnored(t *testing.T) {
	kdlContent := `
ngram "three"
stemmer {
    iterated "yes"
}
`
	cfg, err := parseKDL(kdlContent)
	require.NoError(t, err)
	assert.Equal(t, DefaultNGram, cfg.NGram)
	assert.False(t, cfg.Stemmer.Iterated)
}

func TestParseKDL_Invalid(t *testing.T) {
	_, err := parseKDL(`model "unterminated`)
	assert.Error(t, err)
}

func TestLoadFile_RelativeLexicon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("lexicon {\n    path \"data/lexicon.toml\"\n}\n"), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "lexicon.toml"), cfg.Lexicon.Path)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.kdl"))
	assert.Error(t, err)
}
