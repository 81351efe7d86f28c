package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingScorer records how many times the underlying strategy was invoked.
type countingScorer struct {
	calls int
	score float64
	err   error
}

func (c *countingScorer) Name() string { return "counting" }

func (c *countingScorer) Similarity(_ context.Context, a, b string) (float64, error) {
	c.calls++
	return c.score, c.err
}

func TestCachedSimilarity_MemoizesRepeatedPairs(t *testing.T) {
	inner := &countingScorer{score: 42.5}
	cached := NewCachedSimilarity(inner, 10)

	for i := 0; i < 5; i++ {
		score, err := cached.Similarity(context.Background(), "resume", "description")
		require.NoError(t, err)
		assert.Equal(t, 42.5, score)
	}

	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, 1, cached.Len())
}

func TestCachedSimilarity_KeyIsOrderSensitive(t *testing.T) {
	inner := &countingScorer{score: 10}
	cached := NewCachedSimilarity(inner, 10)

	_, err := cached.Similarity(context.Background(), "a", "b")
	require.NoError(t, err)
	_, err = cached.Similarity(context.Background(), "b", "a")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestCachedSimilarity_EvictsLeastRecentlyUsed(t *testing.T) {
	inner := &countingScorer{score: 1}
	cached := NewCachedSimilarity(inner, 2)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := cached.Similarity(ctx, fmt.Sprintf("resume-%d", i), "job")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, cached.Len())

	// resume-0 was evicted; asking again recomputes.
	_, err := cached.Similarity(ctx, "resume-0", "job")
	require.NoError(t, err)
	assert.Equal(t, 4, inner.calls)
}

func TestCachedSimilarity_ErrorsAreNotCached(t *testing.T) {
	inner := &countingScorer{err: fmt.Errorf("backend down")}
	cached := NewCachedSimilarity(inner, 10)

	_, err := cached.Similarity(context.Background(), "a", "b")
	require.Error(t, err)
	assert.Equal(t, 0, cached.Len())

	inner.err = nil
	inner.score = 7
	score, err := cached.Similarity(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 7.0, score)
}

func TestCachedSimilarity_Reset(t *testing.T) {
	inner := &countingScorer{score: 3}
	cached := NewCachedSimilarity(inner, 10)

	_, err := cached.Similarity(context.Background(), "a", "b")
	require.NoError(t, err)
	require.Equal(t, 1, cached.Len())

	cached.Reset()
	assert.Equal(t, 0, cached.Len())

	_, err = cached.Similarity(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}
