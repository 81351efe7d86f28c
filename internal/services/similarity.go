package services

import (
	"context"
	"math"
)

// SimilarityScorer computes a semantic similarity percentage in [0, 100]
// between two text blobs. Implementations must return exactly 0 when either
// input is empty or whitespace-only, without touching any backing model.
type SimilarityScorer interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
	Name() string
}

// round2 rounds to 2 decimal places; every reported score goes through it.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func cosine32(a, b []float32) float64 {
	var dot, na, nb float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// clampPercent keeps a similarity percentage inside [0, 100]; embedding
// cosines can come back marginally negative or above 1 from float error.
func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
