package semantic

// InvertibleStemmer wraps a base Stemmer and records which words produced each
// stem, so that stems can be converted back to a likely original word.
//
// Not safe for concurrent use: every Stem call mutates the inverse dictionary.
type InvertibleStemmer struct {
	base    Stemmer
	inverse map[string]*interpretations
}

// interpretations keeps word counts for one stem in first-seen order
type interpretations struct {
	order  []string
	counts map[string]int
}

// NewInvertibleStemmer wraps base
func NewInvertibleStemmer(base Stemmer) *InvertibleStemmer {
	return &InvertibleStemmer{
		base:    base,
		inverse: make(map[string]*interpretations),
	}
}

// Name returns the name of the base stemmer; recording does not change stems
func (s *InvertibleStemmer) Name() string {
	return s.base.Name()
}

// Underlying returns the wrapped stemmer
func (s *InvertibleStemmer) Underlying() Stemmer {
	return s.base
}

// Stem stems word with the base stemmer and records the stem-word pair
func (s *InvertibleStemmer) Stem(word string) (string, bool) {
	stem, ok := s.base.Stem(word)
	if ok {
		s.register(word, stem)
	}
	return stem, ok
}

func (s *InvertibleStemmer) register(word, stem string) {
	entry, ok := s.inverse[stem]
	if !ok {
		entry = &interpretations{counts: make(map[string]int)}
		s.inverse[stem] = entry
	}
	if _, seen := entry.counts[word]; !seen {
		entry.order = append(entry.order, word)
	}
	entry.counts[word]++
}

// Frequencies returns a copy of the word occurrence counts recorded for stem,
// or nil if the stem was never produced
func (s *InvertibleStemmer) Frequencies(stem string) map[string]int {
	entry, ok := s.inverse[stem]
	if !ok {
		return nil
	}
	counts := make(map[string]int, len(entry.counts))
	for word, count := range entry.counts {
		counts[word] = count
	}
	return counts
}

// BestInterpretation returns the word seen most often for stem.
// Ties go to the word seen first. ok is false for stems never produced.
func (s *InvertibleStemmer) BestInterpretation(stem string) (word string, ok bool) {
	entry, found := s.inverse[stem]
	if !found {
		return "", false
	}
	best := 0
	for _, candidate := range entry.order {
		if count := entry.counts[candidate]; count > best {
			best = count
			word = candidate
		}
	}
	return word, true
}

// BestInterpretations maps BestInterpretation over stems, keeping order and
// length. Unknown stems map to the empty string.
func (s *InvertibleStemmer) BestInterpretations(stems []string) []string {
	words := make([]string, len(stems))
	for i, stem := range stems {
		words[i], _ = s.BestInterpretation(stem)
	}
	return words
}

// Reset forgets every recorded stem-word pair
func (s *InvertibleStemmer) Reset() {
	s.inverse = make(map[string]*interpretations)
}
