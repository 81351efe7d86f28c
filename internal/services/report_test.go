package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillmatch/internal/models"
)

func TestBuildReport_StableColumns(t *testing.T) {
	result := models.MatchResult{
		OverallScore:      72.5,
		SkillMatchScore:   66.67,
		ContextMatchScore: 81.25,
		MatchedSkills:     []string{"Python", "SQL"},
		MissingSkills:     []string{"Java"},
		TotalRequired:     3,
		MatchedCount:      2,
	}
	recs := []string{"Learn Java", "Keep practicing"}
	analyzedAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	data, err := BuildReport("Java Developer", result, recs, analyzedAt)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{
		"Analysis Date",
		"Target Job Role",
		"Overall Match Score",
		"Skill Match Score",
		"Context Match Score",
		"Matched Skills",
		"Missing Skills",
		"Recommendations",
	}, records[0])

	assert.Equal(t, []string{
		"2025-03-14 09:30:00",
		"Java Developer",
		"72.50%",
		"66.67%",
		"81.25%",
		"Python, SQL",
		"Java",
		"Learn Java | Keep practicing",
	}, records[1])
}

func TestBuildReport_ZeroResult(t *testing.T) {
	data, err := BuildReport("Data Analyst", models.ZeroMatchResult([]string{"SQL"}), nil, time.Now())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "0.00%", records[1][2])
	assert.Equal(t, "", records[1][5])
	assert.Equal(t, "SQL", records[1][6])
	assert.Equal(t, "", records[1][7])
}
