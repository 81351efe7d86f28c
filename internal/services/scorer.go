package services

import (
	"context"
	"log"
	"strings"

	"skillmatch/internal/models"
)

const (
	DefaultSkillWeight   = 0.6
	DefaultContextWeight = 0.4
)

// MatchScorer blends the skill-match percentage and the semantic-similarity
// percentage into one overall score. Skill-keyword presence is the stronger
// eligibility signal, so it carries the larger weight; the context score
// corrects for skills phrased differently in the resume than in the
// canonical label.
type MatchScorer struct {
	extractor     *SkillExtractor
	similarity    SimilarityScorer
	skillWeight   float64
	contextWeight float64
}

func NewMatchScorer(
	extractor *SkillExtractor,
	similarity SimilarityScorer,
	skillWeight, contextWeight float64,
) *MatchScorer {
	if skillWeight <= 0 || contextWeight < 0 || skillWeight+contextWeight > 1.0001 {
		skillWeight = DefaultSkillWeight
		contextWeight = DefaultContextWeight
	}
	return &MatchScorer{
		extractor:     extractor,
		similarity:    similarity,
		skillWeight:   skillWeight,
		contextWeight: contextWeight,
	}
}

// Match scores one resume against one job. It never fails for data-quality
// reasons: empty inputs yield a zeroed result and a similarity failure zeroes
// only the context component, preserving the skill-match partial result.
func (s *MatchScorer) Match(ctx context.Context, resumeText, jobSkillsCSV, jobDescription string) models.MatchResult {
	required := dedupeSkills(ParseSkillList(jobSkillsCSV))

	if strings.TrimSpace(resumeText) == "" || len(required) == 0 {
		return models.ZeroMatchResult(required)
	}

	matched := s.extractor.ExtractMatchingSkills(resumeText, jobSkillsCSV)

	matchedSet := make(map[string]bool, len(matched))
	for _, m := range matched {
		matchedSet[strings.ToLower(m)] = true
	}
	missing := make([]string, 0, len(required))
	for _, r := range required {
		if !matchedSet[strings.ToLower(r)] {
			missing = append(missing, r)
		}
	}

	skillScore := round2(100 * float64(len(matched)) / float64(len(required)))

	// Context basis falls back to the skill list when no description exists,
	// so the context component still carries signal for sparse catalogs.
	basis := jobDescription
	if strings.TrimSpace(basis) == "" {
		basis = strings.Join(required, " ")
	}
	contextScore, err := s.similarity.Similarity(ctx, resumeText, basis)
	if err != nil {
		log.Printf("⚠️  Context similarity failed, keeping skill match only: %v", err)
		contextScore = 0
	}
	contextScore = round2(contextScore)

	return models.MatchResult{
		OverallScore:      round2(s.skillWeight*skillScore + s.contextWeight*contextScore),
		SkillMatchScore:   skillScore,
		ContextMatchScore: contextScore,
		MatchedSkills:     matched,
		MissingSkills:     missing,
		TotalRequired:     len(required),
		MatchedCount:      len(matched),
	}
}

// dedupeSkills removes duplicate labels case-insensitively, keeping the
// first occurrence.
func dedupeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
