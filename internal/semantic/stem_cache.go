package semantic

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultStemCacheSize is the number of words a cached stemmer remembers
const DefaultStemCacheSize = 4096

// CachedStemmer memoizes the stems of the most recently used words.
// Safe for concurrent use when the base stemmer is.
type CachedStemmer struct {
	base  Stemmer
	cache *lru.Cache[string, stemEntry]

	hits   atomic.Int64
	misses atomic.Int64
}

type stemEntry struct {
	stem string
	ok   bool
}

// Cached wraps base with an LRU cache holding up to maxSize words.
// A non-positive maxSize selects DefaultStemCacheSize.
func Cached(base Stemmer, maxSize int) *CachedStemmer {
	if maxSize <= 0 {
		maxSize = DefaultStemCacheSize
	}
	// New only fails for a non-positive size
	cache, _ := lru.New[string, stemEntry](maxSize)
	return &CachedStemmer{base: base, cache: cache}
}

// Name returns the name of the base stemmer
func (c *CachedStemmer) Name() string {
	return c.base.Name()
}

// Underlying returns the wrapped stemmer
func (c *CachedStemmer) Underlying() Stemmer {
	return c.base
}

// Stem returns the cached stem of word, stemming it with the base stemmer on
// a miss
func (c *CachedStemmer) Stem(word string) (string, bool) {
	if entry, ok := c.cache.Get(word); ok {
		c.hits.Add(1)
		return entry.stem, entry.ok
	}
	c.misses.Add(1)

	stem, ok := c.base.Stem(word)
	c.cache.Add(word, stemEntry{stem: stem, ok: ok})
	return stem, ok
}

// Len returns the number of cached words
func (c *CachedStemmer) Len() int {
	return c.cache.Len()
}

// Stats returns the cache hit and miss counts
func (c *CachedStemmer) Stats() (hits, misses int) {
	return int(c.hits.Load()), int(c.misses.Load())
}
