package models

// JobPosting is one row of the job catalog. Title and Description are
// guaranteed non-empty by the catalog loader; rows violating that are
// dropped at load time.
type JobPosting struct {
	Title        string `json:"job_title"`
	DisplayTitle string `json:"display_title"`
	Skills       string `json:"skills"`
	Description  string `json:"job_description"`
}
