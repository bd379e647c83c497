package lexicon

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Memory is an in-process Lexicon. Sense order follows insertion order.
type Memory struct {
	synsets map[string]*Synset
	index   map[POS]map[string][]*Synset
}

// tomlFile is the on-disk layout:
//
//	[[synset]]
//	id = "n.dog.1"
//	pos = "noun"
//	words = ["dog", "domestic_dog"]
//	hypernyms = ["n.canine.1"]
type tomlFile struct {
	Synsets []Synset `toml:"synset"`
}

// NewMemory indexes synsets by lemma and part of speech
func NewMemory(synsets []Synset) (*Memory, error) {
	m := &Memory{
		synsets: make(map[string]*Synset, len(synsets)),
		index:   make(map[POS]map[string][]*Synset),
	}

	for i := range synsets {
		synset := synsets[i]
		if synset.ID == "" {
			return nil, fmt.Errorf("synset %d has no id", i)
		}
		if !synset.POS.Valid() {
			return nil, fmt.Errorf("synset %s has invalid pos %q", synset.ID, synset.POS)
		}
		if _, dup := m.synsets[synset.ID]; dup {
			return nil, fmt.Errorf("duplicate synset id %s", synset.ID)
		}

		stored := &synset
		m.synsets[synset.ID] = stored

		byLemma := m.index[synset.POS]
		if byLemma == nil {
			byLemma = make(map[string][]*Synset)
			m.index[synset.POS] = byLemma
		}
		for _, word := range synset.Words {
			key := normalizeLemma(word)
			byLemma[key] = append(byLemma[key], stored)
		}
	}

	return m, nil
}

// ParseTOML builds a Memory lexicon from TOML content
func ParseTOML(data []byte) (*Memory, error) {
	var file tomlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	return NewMemory(file.Synsets)
}

// LoadTOML reads a Memory lexicon from a TOML file
func LoadTOML(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon %s: %w", path, err)
	}
	return ParseTOML(data)
}

// OpenTOML returns an Opener that loads the TOML lexicon at path
func OpenTOML(path string) Opener {
	return func() (Lexicon, error) {
		return LoadTOML(path)
	}
}

// Lookup implements Lexicon
func (m *Memory) Lookup(pos POS, word string) (*IndexEntry, error) {
	senses := m.index[pos][normalizeLemma(word)]
	if len(senses) == 0 {
		return nil, nil
	}
	return &IndexEntry{Lemma: word, POS: pos, Senses: senses}, nil
}

// DirectHypernyms implements Lexicon.
// A hypernym id with no matching synset is reported as an error.
func (m *Memory) DirectHypernyms(sense *Synset) ([]*Synset, error) {
	if sense == nil {
		return nil, errMalformedSense
	}
	hypernyms := make([]*Synset, 0, len(sense.Hypernyms))
	for _, id := range sense.Hypernyms {
		synset, ok := m.synsets[id]
		if !ok {
			return nil, fmt.Errorf("synset %s references unknown hypernym %s", sense.ID, id)
		}
		hypernyms = append(hypernyms, synset)
	}
	return hypernyms, nil
}

// Len returns the number of synsets
func (m *Memory) Len() int {
	return len(m.synsets)
}

func normalizeLemma(word string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(word)), " ", "_")
}
