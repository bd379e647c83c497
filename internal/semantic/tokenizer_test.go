package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		// Simple camelCase
		{"getUserName", []string{"get", "user", "name"}},
		{"helloWorld", []string{"hello", "world"}},

		// Acronyms stay together
		{"HTTPServer", []string{"http", "server"}},
		{"getHTTPServerName", []string{"get", "http", "server", "name"}},
		{"parseXMLFile", []string{"parse", "xml", "file"}},
		{"ABC", []string{"abc"}},

		// Hungarian notation and separators
		{"szName", []string{"sz", "name"}},
		{"m_count", []string{"m", "count"}},
		{"hello_world-foo.bar", []string{"hello", "world", "foo", "bar"}},
		{"  spaced   out  ", []string{"spaced", "out"}},

		// Digits are kept inside words
		{"base64Encode", []string{"base64", "encode"}},

		// Edge cases
		{"", []string{}},
		{"!!!", []string{}},
		{"A", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, DefaultTokenizer.Words(tt.input))
		})
	}
}

func TestWordsWithoutAcronymPreparation(t *testing.T) {
	tokenizer := Tokenizer{MinLength: 1}
	assert.Equal(t, []string{"h", "t", "t", "p", "server"}, tokenizer.Words("HTTPServer"))
}

func TestPrepareAcronyms(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTPServer", "httpServer"},
		{"getHTTP", "getHttp"},
		{"XMLHttpRequest", "xmlHttpRequest"},
		{"A", "a"},
		{"a B c", "a b c"},

		// No isolated capitals, no change
		{"helloWorld", "helloWorld"},
		{"Hello", "Hello"},
		{"lower case only", "lower case only"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrepareAcronyms(tt.input))
		})
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "period and capital",
			input:    "First sentence. Second sentence.",
			expected: []string{"First sentence", "Second sentence."},
		},
		{
			name:     "newlines",
			input:    "line one\nline two",
			expected: []string{"line one", "line two"},
		},
		{
			name:     "digit starts a sentence",
			input:    "version 1. 2 items",
			expected: []string{"version 1", "2 items"},
		},
		{
			name:     "lowercase continuation",
			input:    "see e.g. the manual",
			expected: []string{"see e.g. the manual"},
		},
		{
			name:     "open bracket merges",
			input:    "Call foo(a. B) now. Done",
			expected: []string{"Call foo(a B) now", "Done"},
		},
		{
			name:     "blank lines skipped",
			input:    "one\n\n\ntwo",
			expected: []string{"one", "two"},
		},
		{
			name:     "empty",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DefaultTokenizer.Sentences(tt.input))
		})
	}
}

func TestStemWords(t *testing.T) {
	stemmer, err := NewStemmer(AlgorithmPorter2, 0, nil)
	if err != nil {
		t.Fatalf("NewStemmer failed: %v", err)
	}

	got := DefaultTokenizer.StemWords("runningTests quickly", stemmer)
	assert.Equal(t, []string{"run", "test", "quick"}, got)
}

func TestStemWordsMinLength(t *testing.T) {
	tokenizer := Tokenizer{MinLength: 2, PrepareAcronyms: true}
	assert.Equal(t, []string{"big", "cat"}, tokenizer.StemWords("a big cat", NoStemmer{}))
}

func TestStemWordsDropsAbsentStems(t *testing.T) {
	stemmer := StopwordFilter(NoStemmer{}, []string{"the"})
	assert.Equal(t, []string{"cat", "sat"}, DefaultTokenizer.StemWords("The cat sat", stemmer))
}

func TestStemWordsUnprepared(t *testing.T) {
	assert.Equal(t, []string{"h", "t", "t", "p", "server"},
		DefaultTokenizer.StemWordsUnprepared("HTTPServer", NoStemmer{}))
	assert.Equal(t, []string{"domestic", "dog"},
		DefaultTokenizer.StemWordsUnprepared("domestic_dog", NoStemmer{}))
}

func TestMergeWords(t *testing.T) {
	assert.Equal(t, "quick brown fox", MergeWords([]string{"quick", "brown", "fox"}))
	assert.Equal(t, "", MergeWords(nil))
}
