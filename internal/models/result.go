package models

type UploadResponse struct {
	ID             string   `json:"id"`
	Filename       string   `json:"filename"`
	OriginalName   string   `json:"original_name"`
	Characters     int      `json:"characters"`
	DetectedSkills []string `json:"detected_skills"`
}

type MatchRequest struct {
	DocumentID string `json:"document_id"`
	ResumeText string `json:"resume_text"`
	JobTitle   string `json:"job_title"`
}

type MatchResponse struct {
	JobTitle        string      `json:"job_title"`
	Result          MatchResult `json:"result"`
	Recommendations []string    `json:"recommendations"`
}

type JobListResponse struct {
	Jobs  []string `json:"jobs"`
	Count int      `json:"count"`
}

type RoleSuggestion struct {
	JobTitle string  `json:"job_title"`
	Score    float64 `json:"score"`
}

type SuggestResponse struct {
	DocumentID  string           `json:"document_id"`
	Suggestions []RoleSuggestion `json:"suggestions"`
}
