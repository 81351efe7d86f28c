package services

import (
	"fmt"
	"strings"
)

// maxRecommendations caps the suggestion list returned per analysis.
const maxRecommendations = 5

// skillResource maps a skill keyword to a canned learning-resource
// suggestion. The slice is ordered constant data; lookup is a
// case-insensitive substring match in either direction.
type skillResource struct {
	keyword  string
	resource string
}

var skillResources = []skillResource{
	{"python", "Work through the Python track on Codecademy or the official Python tutorial, then build a small automation project."},
	{"java", "Complete a Java fundamentals course (e.g. MOOC.fi Java Programming) and practice with small console projects."},
	{"javascript", "Finish the JavaScript path on freeCodeCamp and rebuild one of your existing pages with vanilla JS."},
	{"typescript", "Read the TypeScript Handbook and migrate one of your JavaScript projects to TypeScript."},
	{"sql", "Practice SQL querying on SQLZoo or LeetCode's database problems; focus on joins and aggregations."},
	{"react", "Build a small single-page app with the official React tutorial, then add routing and state management."},
	{"angular", "Follow the Tour of Heroes tutorial in the Angular docs and ship a small CRUD app."},
	{"node", "Build a REST API with Node.js and Express, covering routing, middleware and error handling."},
	{"django", "Work through the official Django tutorial and deploy the polls app to a free hosting tier."},
	{"aws", "Study for the AWS Cloud Practitioner certification and deploy a small app with S3, Lambda and API Gateway."},
	{"azure", "Take the Microsoft Learn AZ-900 path and deploy a sample app to Azure App Service."},
	{"gcp", "Complete the Google Cloud Skills Boost introductory quests and deploy a service to Cloud Run."},
	{"docker", "Containerize one of your projects with Docker and write a docker-compose file for its services."},
	{"kubernetes", "Run a local cluster with minikube or kind and deploy a multi-service app with manifests."},
	{"machine learning", "Take Andrew Ng's Machine Learning Specialization and reproduce one end-to-end project on Kaggle."},
	{"deep learning", "Work through the fast.ai Practical Deep Learning course and train a model on your own dataset."},
	{"data analysis", "Practice exploratory data analysis with pandas on a public dataset and publish a notebook."},
	{"tableau", "Complete a Tableau Public starter course and publish two dashboards from open datasets."},
	{"power bi", "Follow the Microsoft Learn Power BI path and rebuild an Excel report as an interactive dashboard."},
	{"excel", "Master lookups, pivot tables and conditional formulas with a hands-on Excel course."},
	{"git", "Learn branching and rebasing with the Pro Git book and contribute a patch to an open-source repo."},
	{"linux", "Work through a Linux command-line course and manage a small VPS or home server."},
	{"communication", "Join a local Toastmasters club or practice structured written updates on your current projects."},
	{"leadership", "Read 'The Manager's Path' and volunteer to run a small project or mentoring session."},
}

// roleSuggestion pairs job-title keywords with one generic piece of advice
// for that role category.
type roleSuggestion struct {
	keywords []string
	advice   string
}

var roleSuggestions = []roleSuggestion{
	{
		keywords: []string{"data", "analyst", "scientist"},
		advice:   "Strengthen your analytics portfolio: publish a few end-to-end data analysis projects with clear business takeaways.",
	},
	{
		keywords: []string{"developer", "engineer", "programmer"},
		advice:   "Keep a steady coding practice: solve algorithm problems weekly and maintain an active GitHub with real projects.",
	},
	{
		keywords: []string{"manager", "lead"},
		advice:   "Build leadership evidence: document situations where you drove a team decision, resolved conflict or mentored others.",
	},
}

// Recommender turns a missing-skill list into at most five human-readable
// improvement suggestions. Same inputs always produce the same ordered
// output.
type Recommender struct{}

func NewRecommender() *Recommender {
	return &Recommender{}
}

// Recommend maps the first five missing skills to canned learning resources
// and, when fewer than five skill suggestions were produced, appends at most
// one role-category suggestion keyed off the job title.
func (r *Recommender) Recommend(missingSkills []string, jobTitle string) []string {
	if len(missingSkills) == 0 {
		return []string{}
	}

	recs := make([]string, 0, maxRecommendations)

	for _, skill := range missingSkills {
		if len(recs) >= maxRecommendations {
			break
		}
		recs = append(recs, resourceFor(skill))
	}

	if len(recs) < maxRecommendations {
		if advice, ok := adviceForRole(jobTitle); ok {
			recs = append(recs, advice)
		}
	}

	return recs
}

func resourceFor(skill string) string {
	skillLower := strings.ToLower(strings.TrimSpace(skill))
	for _, sr := range skillResources {
		if strings.Contains(skillLower, sr.keyword) || strings.Contains(sr.keyword, skillLower) {
			return sr.resource
		}
	}
	return fmt.Sprintf("Search online courses and tutorials covering %s and add a practice project to your resume.", strings.TrimSpace(skill))
}

func adviceForRole(jobTitle string) (string, bool) {
	titleLower := strings.ToLower(jobTitle)
	for _, rs := range roleSuggestions {
		for _, kw := range rs.keywords {
			if strings.Contains(titleLower, kw) {
				return rs.advice, true
			}
		}
	}
	return "", false
}
