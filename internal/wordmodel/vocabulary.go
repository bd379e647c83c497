package wordmodel

// Vocabulary assigns integer ids to feature keys in first-seen order,
// starting at 0. Ids are never reused or removed until Reset.
type Vocabulary struct {
	ids  map[string]int
	keys []string
}

// NewVocabulary creates an empty vocabulary
func NewVocabulary() *Vocabulary {
	return &Vocabulary{ids: make(map[string]int)}
}

// Lookup returns the id of key without assigning one
func (v *Vocabulary) Lookup(key string) (int, bool) {
	id, ok := v.ids[key]
	return id, ok
}

// Assign returns the id of key, allocating the next id if key is new
func (v *Vocabulary) Assign(key string) int {
	if id, ok := v.ids[key]; ok {
		return id
	}
	id := len(v.keys)
	v.ids[key] = id
	v.keys = append(v.keys, key)
	return id
}

// Key returns the feature key with the given id
func (v *Vocabulary) Key(id int) (string, bool) {
	if id < 0 || id >= len(v.keys) {
		return "", false
	}
	return v.keys[id], true
}

// Len returns the number of assigned ids
func (v *Vocabulary) Len() int {
	return len(v.keys)
}

// Keys returns every key in id order
func (v *Vocabulary) Keys() []string {
	keys := make([]string, len(v.keys))
	copy(keys, v.keys)
	return keys
}

// Reset forgets every key
func (v *Vocabulary) Reset() {
	v.ids = make(map[string]int)
	v.keys = nil
}
