package services

import (
	"regexp"
	"strings"
)

const DefaultFuzzyThreshold = 0.8

// minimum word length considered by the fuzzy fallback; anything shorter
// produces too many accidental matches
const fuzzyMinWordLen = 3

type SkillExtractor struct {
	fuzzyThreshold float64
}

func NewSkillExtractor(fuzzyThreshold float64) *SkillExtractor {
	if fuzzyThreshold <= 0 || fuzzyThreshold > 1 {
		fuzzyThreshold = DefaultFuzzyThreshold
	}
	return &SkillExtractor{fuzzyThreshold: fuzzyThreshold}
}

// ParseSkillList splits a comma-separated skills field into trimmed,
// non-empty skill labels, preserving order and original casing.
func ParseSkillList(skillsCSV string) []string {
	parts := strings.Split(skillsCSV, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// ExtractMatchingSkills returns the required skills that appear in the
// resume text, in required-list order and with their display casing. A skill
// counts as present on the first of three checks that succeeds: word-boundary
// match, substring containment, or a fuzzy pass comparing the skill against
// each resume word with a similarity ratio above the configured threshold.
func (e *SkillExtractor) ExtractMatchingSkills(resumeText, jobSkillsCSV string) []string {
	required := ParseSkillList(jobSkillsCSV)
	if strings.TrimSpace(resumeText) == "" || len(required) == 0 {
		return []string{}
	}

	resumeLower := strings.ToLower(resumeText)
	words := fuzzyWords(resumeLower)

	matched := make([]string, 0, len(required))
	seen := make(map[string]bool, len(required))
	for _, skill := range required {
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		if e.skillPresent(resumeLower, words, key) {
			matched = append(matched, skill)
			seen[key] = true
		}
	}
	return matched
}

func (e *SkillExtractor) skillPresent(resumeLower string, words []string, skillLower string) bool {
	if wordBoundaryPattern(skillLower).MatchString(resumeLower) {
		return true
	}
	if strings.Contains(resumeLower, skillLower) {
		return true
	}
	for _, w := range words {
		if similarityRatio(skillLower, w) > e.fuzzyThreshold {
			return true
		}
	}
	return false
}

// fuzzyWords tokenizes on whitespace and keeps words long enough for the
// fuzzy pass.
func fuzzyWords(textLower string) []string {
	fields := strings.Fields(textLower)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= fuzzyMinWordLen {
			words = append(words, f)
		}
	}
	return words
}

// wordBoundaryPattern builds a whole-token pattern for a skill label. \b is
// not used directly because labels like "c++" and "c#" end in non-word
// characters where \b asserts the wrong way around.
func wordBoundaryPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(^|[^a-z0-9])` + regexp.QuoteMeta(term) + `([^a-z0-9]|$)`)
}

// similarityRatio is a Levenshtein-based ratio in [0, 1]: 1 for identical
// strings, 0 for completely different ones.
func similarityRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0
	}
	longest := la
	if lb > longest {
		longest = lb
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

func levenshtein(a, b string) int {
	la, lb := len(a), len(b)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// vocabularyEntry pairs a matching pattern with the canonical display form of
// a known technology term.
type vocabularyEntry struct {
	pattern *regexp.Regexp
	display string
}

func vocabEntry(term, display string) vocabularyEntry {
	return vocabularyEntry{pattern: wordBoundaryPattern(term), display: display}
}

// skillVocabulary is the fixed catalog of technology terms recognized
// without an explicit skill list. Iteration order is the output order.
var skillVocabulary = []vocabularyEntry{
	vocabEntry("python", "Python"),
	vocabEntry("java", "Java"),
	vocabEntry("javascript", "JavaScript"),
	vocabEntry("typescript", "TypeScript"),
	vocabEntry("golang", "Go"),
	vocabEntry("rust", "Rust"),
	vocabEntry("c++", "C++"),
	vocabEntry("c#", "C#"),
	vocabEntry("php", "PHP"),
	vocabEntry("ruby", "Ruby"),
	vocabEntry("swift", "Swift"),
	vocabEntry("kotlin", "Kotlin"),
	vocabEntry("scala", "Scala"),
	vocabEntry("sql", "SQL"),
	vocabEntry("nosql", "NoSQL"),
	vocabEntry("html", "HTML"),
	vocabEntry("css", "CSS"),
	vocabEntry("react", "React"),
	vocabEntry("angular", "Angular"),
	vocabEntry("vue", "Vue"),
	vocabEntry("node", "Node.js"),
	vocabEntry("django", "Django"),
	vocabEntry("flask", "Flask"),
	vocabEntry("spring", "Spring"),
	vocabEntry("laravel", "Laravel"),
	vocabEntry("rails", "Rails"),
	vocabEntry("graphql", "GraphQL"),
	vocabEntry("rest", "REST"),
	vocabEntry("microservices", "Microservices"),
	vocabEntry("aws", "AWS"),
	vocabEntry("azure", "Azure"),
	vocabEntry("gcp", "GCP"),
	vocabEntry("docker", "Docker"),
	vocabEntry("kubernetes", "Kubernetes"),
	vocabEntry("terraform", "Terraform"),
	vocabEntry("jenkins", "Jenkins"),
	vocabEntry("ci/cd", "CI/CD"),
	vocabEntry("devops", "DevOps"),
	vocabEntry("git", "Git"),
	vocabEntry("linux", "Linux"),
	vocabEntry("bash", "Bash"),
	vocabEntry("mongodb", "MongoDB"),
	vocabEntry("postgresql", "PostgreSQL"),
	vocabEntry("mysql", "MySQL"),
	vocabEntry("redis", "Redis"),
	vocabEntry("kafka", "Kafka"),
	vocabEntry("rabbitmq", "RabbitMQ"),
	vocabEntry("elasticsearch", "Elasticsearch"),
	vocabEntry("spark", "Spark"),
	vocabEntry("hadoop", "Hadoop"),
	vocabEntry("pandas", "Pandas"),
	vocabEntry("numpy", "NumPy"),
	vocabEntry("tensorflow", "TensorFlow"),
	vocabEntry("pytorch", "PyTorch"),
	vocabEntry("scikit-learn", "Scikit-Learn"),
	vocabEntry("machine learning", "Machine Learning"),
	vocabEntry("deep learning", "Deep Learning"),
	vocabEntry("nlp", "NLP"),
	vocabEntry("computer vision", "Computer Vision"),
	vocabEntry("data analysis", "Data Analysis"),
	vocabEntry("data visualization", "Data Visualization"),
	vocabEntry("tableau", "Tableau"),
	vocabEntry("power bi", "Power BI"),
	vocabEntry("excel", "Excel"),
	vocabEntry("selenium", "Selenium"),
	vocabEntry("agile", "Agile"),
	vocabEntry("scrum", "Scrum"),
	vocabEntry("jira", "Jira"),
	vocabEntry("blockchain", "Blockchain"),
	vocabEntry("cybersecurity", "Cybersecurity"),
}

// ExtractVocabularySkills matches free text against the fixed skill
// vocabulary and returns the recognized terms, deduplicated, in vocabulary
// order.
func (e *SkillExtractor) ExtractVocabularySkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	textLower := strings.ToLower(text)

	found := make([]string, 0, 8)
	for _, entry := range skillVocabulary {
		if entry.pattern.MatchString(textLower) {
			found = append(found, entry.display)
		}
	}
	return found
}
