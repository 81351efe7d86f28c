package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"skillmatch/internal/models"
)

// reportHeader is the stable column set of the exported analysis report.
// Downstream consumers key off these exact names; do not reorder or rename.
var reportHeader = []string{
	"Analysis Date",
	"Target Job Role",
	"Overall Match Score",
	"Skill Match Score",
	"Context Match Score",
	"Matched Skills",
	"Missing Skills",
	"Recommendations",
}

// BuildReport renders one analysis as a single-record CSV report. Scores are
// formatted as percentage strings, skills comma-joined and recommendations
// pipe-joined.
func BuildReport(jobTitle string, result models.MatchResult, recommendations []string, analyzedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	record := []string{
		analyzedAt.Format("2006-01-02 15:04:05"),
		jobTitle,
		formatPercent(result.OverallScore),
		formatPercent(result.SkillMatchScore),
		formatPercent(result.ContextMatchScore),
		strings.Join(result.MatchedSkills, ", "),
		strings.Join(result.MissingSkills, ", "),
		strings.Join(recommendations, " | "),
	}

	if err := w.Write(reportHeader); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}
	if err := w.Write(record); err != nil {
		return nil, fmt.Errorf("failed to write report record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush report: %w", err)
	}

	return buf.Bytes(), nil
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
