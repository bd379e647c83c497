package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wmerrors "github.com/standardbeagle/wordmodel/internal/errors"
)

const sampleTOML = `
[[synset]]
id = "n.dog.1"
pos = "noun"
words = ["dog", "domestic_dog"]
hypernyms = ["n.canine.1"]

[[synset]]
id = "n.canine.1"
pos = "noun"
words = ["canine", "canid"]

[[synset]]
id = "n.dog.2"
pos = "noun"
words = ["dog", "frump"]

[[synset]]
id = "v.dog.1"
pos = "verb"
words = ["chase", "dog", "tail"]
hypernyms = ["v.pursue.1"]

[[synset]]
id = "v.pursue.1"
pos = "verb"
words = ["pursue", "follow"]
`

func TestParseTOML(t *testing.T) {
	lex, err := ParseTOML([]byte(sampleTOML))
	require.NoError(t, err)
	assert.Equal(t, 5, lex.Len())

	entry, err := lex.Lookup(Noun, "Dog")
	require.NoError(t, err)
	require.NotNil(t, entry)
	require.Len(t, entry.Senses, 2)
	assert.Equal(t, "n.dog.1", entry.Senses[0].ID, "file order is sense order")

	hypernyms, err := lex.DirectHypernyms(entry.Senses[0])
	require.NoError(t, err)
	require.Len(t, hypernyms, 1)
	assert.Equal(t, []string{"canine", "canid"}, hypernyms[0].Words)
}

func TestLookupUnknownWord(t *testing.T) {
	lex, err := ParseTOML([]byte(sampleTOML))
	require.NoError(t, err)

	entry, err := lex.Lookup(Adverb, "dog")
	assert.NoError(t, err)
	assert.Nil(t, entry)
}

func TestNewMemoryValidation(t *testing.T) {
	tests := []struct {
		name    string
		synsets []Synset
	}{
		{"missing id", []Synset{{POS: Noun, Words: []string{"dog"}}}},
		{"bad pos", []Synset{{ID: "x", POS: "pronoun"}}},
		{"duplicate id", []Synset{{ID: "x", POS: Noun}, {ID: "x", POS: Verb}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMemory(tt.synsets)
			assert.Error(t, err)
		})
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTOML), 0644))

	lex, err := OpenTOML(path)()
	require.NoError(t, err)

	entry, err := lex.Lookup(Verb, "chase")
	require.NoError(t, err)
	require.NotNil(t, entry)

	_, err = LoadTOML(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = ParseTOML([]byte("[[synset]\nid = "))
	assert.Error(t, err)
}

func TestExpand(t *testing.T) {
	lex, err := ParseTOML([]byte(sampleTOML))
	require.NoError(t, err)

	result := Expand(lex, Noun, "dog")
	assert.Equal(t, StatusFound, result.Status)
	assert.Equal(t, []string{"dog", "domestic_dog"}, result.Synonyms)
	assert.Equal(t, []string{"canine", "canid"}, result.Hypernyms)

	result = Expand(lex, Adjective, "dog")
	assert.Equal(t, StatusNotFound, result.Status)
	assert.NoError(t, result.Err)
}

func TestExpandDanglingHypernym(t *testing.T) {
	lex, err := NewMemory([]Synset{
		{ID: "n.cat.1", POS: Noun, Words: []string{"cat"}, Hypernyms: []string{"n.missing.1"}},
	})
	require.NoError(t, err)

	result := Expand(lex, Noun, "cat")
	assert.Equal(t, StatusFailed, result.Status)

	var lookupErr *wmerrors.LookupError
	require.True(t, errors.As(result.Err, &lookupErr))
	assert.Equal(t, "hypernyms", lookupErr.Operation)
	assert.Equal(t, "cat", lookupErr.Word)
}

type brokenLexicon struct {
	lookupErr error
	panics    bool
	nilSense  bool
}

func (b brokenLexicon) Lookup(pos POS, word string) (*IndexEntry, error) {
	if b.panics {
		panic("corrupt index")
	}
	if b.lookupErr != nil {
		return nil, b.lookupErr
	}
	if b.nilSense {
		return &IndexEntry{Lemma: word, POS: pos, Senses: []*Synset{nil}}, nil
	}
	return nil, nil
}

func (b brokenLexicon) DirectHypernyms(*Synset) ([]*Synset, error) {
	return nil, nil
}

func TestExpandFailures(t *testing.T) {
	tests := []struct {
		name string
		lex  Lexicon
	}{
		{"lookup error", brokenLexicon{lookupErr: errors.New("disk gone")}},
		{"panic", brokenLexicon{panics: true}},
		{"nil sense", brokenLexicon{nilSense: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Expand(tt.lex, Verb, "run")
			assert.Equal(t, StatusFailed, result.Status)
			assert.Error(t, result.Err)
			assert.Empty(t, result.Synonyms)
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "found", StatusFound.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "not_found", StatusNotFound.String())
}
