package wordmodel

import (
	"gonum.org/v1/gonum/floats"
)

// Cosine returns the cosine similarity of two feature vectors. Vectors built
// at different times may differ in length; the shorter one is treated as
// having trailing zeros. A zero vector on either side gives 0.
func Cosine(a, b []float64) float64 {
	n := max(len(a), len(b))
	a, b = pad(a, n), pad(b, n)

	normA, normB := floats.Norm(a, 2), floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(a, b) / (normA * normB)
}

func pad(v []float64, n int) []float64 {
	if len(v) == n {
		return v
	}
	padded := make([]float64, n)
	copy(padded, v)
	return padded
}
