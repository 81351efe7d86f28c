package services

import (
	"context"
	"fmt"
	"strings"
)

const DefaultMaxEmbedChars = 5000

// EmbeddingSimilarity scores two documents by embedding each into a
// fixed-width semantic vector with a pretrained model and taking the cosine
// of the two vectors. Inputs are truncated to a maximum length before
// embedding to bound latency.
type EmbeddingSimilarity struct {
	gemini   GeminiService
	maxChars int
}

func NewEmbeddingSimilarity(gemini GeminiService, maxChars int) *EmbeddingSimilarity {
	if maxChars <= 0 {
		maxChars = DefaultMaxEmbedChars
	}
	return &EmbeddingSimilarity{gemini: gemini, maxChars: maxChars}
}

func (e *EmbeddingSimilarity) Name() string { return "embedding" }

func (e *EmbeddingSimilarity) Similarity(ctx context.Context, a, b string) (float64, error) {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0, nil
	}

	vecA, err := e.gemini.GenerateEmbedding(ctx, truncate(a, e.maxChars))
	if err != nil {
		return 0, fmt.Errorf("failed to embed first document: %w", err)
	}
	vecB, err := e.gemini.GenerateEmbedding(ctx, truncate(b, e.maxChars))
	if err != nil {
		return 0, fmt.Errorf("failed to embed second document: %w", err)
	}

	return round2(clampPercent(cosine32(vecA, vecB) * 100)), nil
}

func truncate(text string, maxChars int) string {
	if len(text) <= maxChars {
		return text
	}
	return text[:maxChars]
}
