package corpus

import (
	"sort"

	"github.com/standardbeagle/wordmodel/internal/debug"
	"github.com/standardbeagle/wordmodel/internal/wordmodel"
)

// Pair is the similarity of two documents
type Pair struct {
	A, B  string
	Score float64
}

// Score vectorizes every document with pipeline and returns the cosine
// similarity of each pair, best first. Ties are ordered by path.
func Score(pipeline *wordmodel.Pipeline, docs []*Document) []Pair {
	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vectors[i] = pipeline.TextVector(doc.Text)
	}
	debug.LogCorpus("vectorized %d documents into %d features", len(docs), pipeline.Len())

	pairs := make([]Pair, 0, len(docs)*(len(docs)-1)/2)
	for i := range docs {
		for j := i + 1; j < len(docs); j++ {
			pairs = append(pairs, Pair{
				A:     docs[i].Path,
				B:     docs[j].Path,
				Score: wordmodel.Cosine(vectors[i], vectors[j]),
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Score != pairs[j].Score {
			return pairs[i].Score > pairs[j].Score
		}
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}
