// Package semantic provides the text normalization primitives used to build
// feature vectors: tokenization, stemming and edit distance.
//
// # Tokenization
//
// Tokenizer splits text into sentences and sentences into lowercase words.
// Besides whitespace, words are split on camelCase and Hungarian notation,
// while runs of capitals are kept together as acronyms:
//
//	semantic.DefaultTokenizer.Words("getHTTPServerName")
//	// [get http server name]
//
// # Stemming
//
// Stemmer is the capability every stemming algorithm implements. NewStemmer
// selects a library algorithm (Porter2, Porter, Snowball) by name; Iterated
// re-applies any stemmer until a fixed point; StopwordFilter drops stopwords
// by reporting no stem for them; Cached memoizes recent stems in an LRU.
//
// InvertibleStemmer wraps any Stemmer and records which words produced each
// stem, so that a stem can later be mapped back to its most frequent word:
//
//	stemmer := semantic.NewInvertibleStemmer(base)
//	stemmer.Stem("running")
//	stemmer.Stem("run")
//	stemmer.Stem("running")
//	word, _ := stemmer.BestInterpretation("run") // "running"
//
// # Edit Distance
//
// Distance and Similarity compare characters; SequenceDistance and
// SequenceSimilarity compare whole tokens case-insensitively.
//
// InvertibleStemmer and StopwordCache are not safe for concurrent use and are
// meant to be owned by one pipeline.
package semantic
