package domain

import "math"

// CosineSimilarity computes the cosine similarity between two vectors:
// dot(a,b) / (‖a‖·‖b‖). The result is in [-1, 1], where 1 means
// identical direction.
//
// Vectors of mismatched dimensionality score 0; callers are expected
// to pass vectors from the same embedding model. A zero-norm vector
// also yields 0 rather than NaN, so degenerate inputs fall below any
// positive threshold instead of poisoning the ranking.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		av := float64(a[i])
		bv := float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
