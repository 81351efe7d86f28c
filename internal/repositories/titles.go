package repositories

import (
	"regexp"
	"strings"
	"unicode"
)

// specialCaps are tokens that keep a fixed capitalization instead of plain
// title-casing.
var specialCaps = map[string]string{
	"ai": "AI", "ml": "ML", "ui": "UI", "ux": "UX", "qa": "QA",
	"devops": "DevOps", "nlp": "NLP", "sql": "SQL", "aws": "AWS",
	"gcp": "GCP", "ios": "iOS", "hr": "HR", "seo": "SEO", "sdet": "SDET",
}

// mergedTitles maps squashed catalog titles ("datascientist") to their
// canonical display form. Keyed by the title with every non-alphanumeric
// character removed and lowercased.
var mergedTitles = map[string]string{
	"datascientist":           "Data Scientist",
	"dataanalyst":             "Data Analyst",
	"dataengineer":            "Data Engineer",
	"machinelearningengineer": "Machine Learning Engineer",
	"javadeveloper":           "Java Developer",
	"pythondeveloper":         "Python Developer",
	"fullstackdeveloper":      "Full Stack Developer",
	"frontenddeveloper":       "Front End Developer",
	"backenddeveloper":        "Back End Developer",
	"uiuxdesigner":            "UI/UX Designer",
	"productmanager":          "Product Manager",
	"projectmanager":          "Project Manager",
	"businessanalyst":         "Business Analyst",
	"cybersecurityanalyst":    "Cybersecurity Analyst",
	"qaengineer":              "QA Engineer",
	"devopsengineer":          "DevOps Engineer",
	"cloudengineer":           "Cloud Engineer",
	"androiddeveloper":        "Android Developer",
	"iosdeveloper":            "iOS Developer",
	"webdeveloper":            "Web Developer",
	"networkengineer":         "Network Engineer",
	"softwaretester":          "Software Tester",
	"blockchaindeveloper":     "Blockchain Developer",
	"bigdataengineer":         "Big Data Engineer",
	"nlpengineer":             "NLP Engineer",
	"databaseadministrator":   "Database Administrator",
	"uiux":                    "UI/UX Designer",
}

var nonAlnumTitleRegex = regexp.MustCompile(`[^A-Za-z0-9]`)

// PrettifyRole turns raw catalog job titles ("dataScientist", "qa_engineer",
// "backend-developer") into a human display form ("Data Scientist",
// "QA Engineer", "Back End Developer").
func PrettifyRole(role string) string {
	raw := strings.TrimSpace(role)
	if raw == "" {
		return ""
	}

	s := splitCamelCase(raw)
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.TrimSpace(s)

	key := strings.ToLower(nonAlnumTitleRegex.ReplaceAllString(s, ""))
	if display, ok := mergedTitles[key]; ok {
		return display
	}

	tokens := strings.Fields(strings.ToLower(s))
	pretty := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		pretty = append(pretty, capToken(tok))
	}

	out := strings.Join(pretty, " ")
	out = strings.ReplaceAll(out, "Fullstack", "Full Stack")
	out = strings.ReplaceAll(out, "Frontend", "Front End")
	out = strings.ReplaceAll(out, "Backend", "Back End")
	return out
}

// splitCamelCase inserts a space at every lower-to-upper transition.
func splitCamelCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func capToken(tok string) string {
	if tok == "" {
		return tok
	}
	if strings.Contains(tok, "/") {
		parts := strings.Split(tok, "/")
		for i, p := range parts {
			parts[i] = capToken(p)
		}
		return strings.Join(parts, "/")
	}
	if special, ok := specialCaps[tok]; ok {
		return special
	}
	return strings.ToUpper(tok[:1]) + tok[1:]
}
