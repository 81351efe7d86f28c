package models

// MatchResult is the outcome of scoring one resume against one job posting.
// All scores are percentages in [0, 100], rounded to 2 decimals. Matched and
// missing skills partition the job's required skill list, preserving its
// order; matched ∪ missing == required and the two never overlap.
type MatchResult struct {
	OverallScore      float64  `json:"overall_score"`
	SkillMatchScore   float64  `json:"skill_match_score"`
	ContextMatchScore float64  `json:"context_match_score"`
	MatchedSkills     []string `json:"matched_skills"`
	MissingSkills     []string `json:"missing_skills"`
	TotalRequired     int      `json:"total_required"`
	MatchedCount      int      `json:"matched_count"`
}

// ZeroMatchResult returns a fully-populated zero-score result for inputs
// that carry no signal (empty resume, empty skill list). Missing skills are
// set to the full required list so the caller still sees what the job asks
// for.
func ZeroMatchResult(required []string) MatchResult {
	if required == nil {
		required = []string{}
	}
	return MatchResult{
		MatchedSkills: []string{},
		MissingSkills: required,
		TotalRequired: len(required),
	}
}
