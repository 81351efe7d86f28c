package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSkillList_TrimsAndDropsEmpties(t *testing.T) {
	got := ParseSkillList("Python,,SQL,")
	assert.Equal(t, []string{"Python", "SQL"}, got)
}

func TestParseSkillList_PreservesCasingAndOrder(t *testing.T) {
	got := ParseSkillList(" PostgreSQL , Docker, AWS ")
	assert.Equal(t, []string{"PostgreSQL", "Docker", "AWS"}, got)
}

func TestParseSkillList_Empty(t *testing.T) {
	assert.Empty(t, ParseSkillList(""))
	assert.Empty(t, ParseSkillList(" , , "))
}

func TestExtractMatchingSkills_WordBoundaryMatch(t *testing.T) {
	e := NewSkillExtractor(DefaultFuzzyThreshold)

	got := e.ExtractMatchingSkills(
		"I have 3 years of Python and SQL experience",
		"Python, SQL, Java",
	)
	assert.Equal(t, []string{"Python", "SQL"}, got)
}

func TestExtractMatchingSkills_SubstringMatch(t *testing.T) {
	e := NewSkillExtractor(DefaultFuzzyThreshold)

	// "Java" appears inside "JavaScript"; plain containment counts.
	got := e.ExtractMatchingSkills("Built apps with JavaScript", "Java")
	assert.Equal(t, []string{"Java"}, got)
}

func TestExtractMatchingSkills_FuzzyFallback(t *testing.T) {
	e := NewSkillExtractor(DefaultFuzzyThreshold)

	// "kuberntes" is one edit away from "kubernetes" (ratio 0.9).
	got := e.ExtractMatchingSkills("Deployed services on kuberntes clusters", "Kubernetes")
	assert.Equal(t, []string{"Kubernetes"}, got)
}

func TestExtractMatchingSkills_FuzzyRespectsThreshold(t *testing.T) {
	strict := NewSkillExtractor(0.95)

	got := strict.ExtractMatchingSkills("Deployed services on kuberntes clusters", "Kubernetes")
	assert.Empty(t, got)
}

func TestExtractMatchingSkills_NoFalsePositiveOnShortWords(t *testing.T) {
	e := NewSkillExtractor(DefaultFuzzyThreshold)

	got := e.ExtractMatchingSkills("I have worked on many teams", "Java")
	assert.Empty(t, got)
}

func TestExtractMatchingSkills_EmptyInputs(t *testing.T) {
	e := NewSkillExtractor(DefaultFuzzyThreshold)

	assert.Empty(t, e.ExtractMatchingSkills("", "Python, SQL"))
	assert.Empty(t, e.ExtractMatchingSkills("Python developer", ""))
}

func TestExtractMatchingSkills_DedupesRequiredList(t *testing.T) {
	e := NewSkillExtractor(DefaultFuzzyThreshold)

	got := e.ExtractMatchingSkills("Python everywhere", "Python, python, Python")
	assert.Equal(t, []string{"Python"}, got)
}

func TestExtractVocabularySkills_RecognizesKnownTerms(t *testing.T) {
	e := NewSkillExtractor(DefaultFuzzyThreshold)

	got := e.ExtractVocabularySkills("Experienced in Python, Docker and machine learning on AWS.")
	assert.Equal(t, []string{"Python", "AWS", "Docker", "Machine Learning"}, got)
}

func TestExtractVocabularySkills_SymbolTerms(t *testing.T) {
	e := NewSkillExtractor(DefaultFuzzyThreshold)

	got := e.ExtractVocabularySkills("Modern C++ and C# development, CI/CD pipelines")
	assert.Equal(t, []string{"C++", "C#", "CI/CD"}, got)
}

func TestExtractVocabularySkills_VocabularyOrderAndDedup(t *testing.T) {
	e := NewSkillExtractor(DefaultFuzzyThreshold)

	// SQL appears before Python in the text but after it in the vocabulary.
	got := e.ExtractVocabularySkills("sql sql sql then python")
	assert.Equal(t, []string{"Python", "SQL"}, got)
}

func TestExtractVocabularySkills_EmptyInput(t *testing.T) {
	e := NewSkillExtractor(DefaultFuzzyThreshold)

	assert.Empty(t, e.ExtractVocabularySkills(""))
	assert.Empty(t, e.ExtractVocabularySkills("   "))
}

func TestSimilarityRatio(t *testing.T) {
	assert.Equal(t, 1.0, similarityRatio("python", "python"))
	assert.InDelta(t, 0.9, similarityRatio("kubernetes", "kuberntes"), 0.001)
	assert.Equal(t, 0.0, similarityRatio("python", ""))
	assert.Less(t, similarityRatio("java", "have"), 0.8)
}
