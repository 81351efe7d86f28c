package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTFIDFSimilarity_IdenticalDocuments(t *testing.T) {
	s := NewTFIDFSimilarity()

	score, err := s.Similarity(context.Background(), "Python developer with SQL", "Python developer with SQL")
	require.NoError(t, err)
	assert.Equal(t, 100.0, score)
}

func TestTFIDFSimilarity_NormalizationInvariant(t *testing.T) {
	s := NewTFIDFSimilarity()

	score, err := s.Similarity(context.Background(), "PYTHON Developer, SQL!", "python developer sql")
	require.NoError(t, err)
	assert.Equal(t, 100.0, score)
}

func TestTFIDFSimilarity_DisjointVocabulary(t *testing.T) {
	s := NewTFIDFSimilarity()

	score, err := s.Similarity(context.Background(), "apples oranges bananas", "kubernetes docker terraform")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestTFIDFSimilarity_PartialOverlap(t *testing.T) {
	s := NewTFIDFSimilarity()

	score, err := s.Similarity(
		context.Background(),
		"I have 3 years of Python and SQL experience",
		"Looking for a Python developer with database skills",
	)
	require.NoError(t, err)
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 100.0)
}

func TestTFIDFSimilarity_EmptyInputs(t *testing.T) {
	s := NewTFIDFSimilarity()

	for _, pair := range [][2]string{
		{"", "job description"},
		{"resume text", ""},
		{"   ", "job description"},
		{"", ""},
	} {
		score, err := s.Similarity(context.Background(), pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	}
}

func TestTFIDFSimilarity_StopwordsOnlyIsDegenerate(t *testing.T) {
	s := NewTFIDFSimilarity()

	// Every term is a stopword, so the vector space is empty; the score must
	// degrade to 0 instead of erroring.
	score, err := s.Similarity(context.Background(), "the and of", "with or from")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestTFIDFSimilarity_ScoreRange(t *testing.T) {
	s := NewTFIDFSimilarity()

	score, err := s.Similarity(context.Background(), "go go go python", "python sql sql sql sql")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}
