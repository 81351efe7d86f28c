package repositories

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"skillmatch/internal/models"
)

// JobRepository serves the job catalog loaded from a CSV dataset. The loaded
// table is an immutable snapshot: Reload parses a fresh slice and swaps the
// pointer, so analyses already holding the old snapshot keep a consistent
// view and no reader ever observes a half-updated catalog.
type JobRepository interface {
	All() []models.JobPosting
	FindByTitle(displayTitle string) (*models.JobPosting, error)
	Titles() []string
	Reload() error
}

var ErrJobNotFound = fmt.Errorf("job not found")

var requiredColumns = []string{"job_title", "skills", "job_description"}

type jobRepository struct {
	path string

	mu       sync.RWMutex
	snapshot []models.JobPosting
}

// NewJobRepository loads the catalog once; a malformed dataset (missing
// file, missing column) fails here, at startup, never per request.
func NewJobRepository(path string) (JobRepository, error) {
	repo := &jobRepository{path: path}
	if err := repo.Reload(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *jobRepository) Reload() error {
	jobs, err := loadCatalog(r.path)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.snapshot = jobs
	r.mu.Unlock()
	return nil
}

// All returns the current snapshot. Callers may hold it across a full
// analysis; it is never mutated after load.
func (r *jobRepository) All() []models.JobPosting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

// FindByTitle matches case-insensitively against both display and raw
// titles.
func (r *jobRepository) FindByTitle(title string) (*models.JobPosting, error) {
	want := strings.ToLower(strings.TrimSpace(title))
	for _, job := range r.All() {
		if strings.ToLower(job.DisplayTitle) == want || strings.ToLower(job.Title) == want {
			j := job
			return &j, nil
		}
	}
	return nil, ErrJobNotFound
}

// Titles returns the sorted unique display titles for role selection.
func (r *jobRepository) Titles() []string {
	seen := make(map[string]bool)
	titles := make([]string, 0)
	for _, job := range r.All() {
		if !seen[job.DisplayTitle] {
			seen[job.DisplayTitle] = true
			titles = append(titles, job.DisplayTitle)
		}
	}
	sort.Strings(titles)
	return titles
}

func loadCatalog(path string) ([]models.JobPosting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open job catalog: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse job catalog CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("job catalog is empty: %s", path)
	}

	colIndex, err := mapColumns(records[0])
	if err != nil {
		return nil, err
	}

	jobs := make([]models.JobPosting, 0, len(records)-1)
	for _, row := range records[1:] {
		job, ok := rowToJob(row, colIndex)
		if !ok {
			// Rows violating the non-empty contract are dropped here so the
			// scoring core can assume well-formed postings.
			continue
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

func mapColumns(header []string) (map[string]int, error) {
	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("job catalog is missing required column %q", col)
		}
	}
	return colIndex, nil
}

func rowToJob(row []string, colIndex map[string]int) (models.JobPosting, bool) {
	field := func(col string) string {
		idx := colIndex[col]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	title := field("job_title")
	skills := field("skills")
	description := field("job_description")
	if title == "" || skills == "" || description == "" {
		return models.JobPosting{}, false
	}

	return models.JobPosting{
		Title:        title,
		DisplayTitle: PrettifyRole(title),
		Skills:       skills,
		Description:  description,
	}, true
}
