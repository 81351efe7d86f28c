package handlers

import (
	"github.com/gofiber/fiber/v2"

	"skillmatch/internal/models"
	"skillmatch/internal/repositories"
)

type JobsHandler struct {
	jobRepo repositories.JobRepository
}

func NewJobsHandler(jobRepo repositories.JobRepository) *JobsHandler {
	return &JobsHandler{jobRepo: jobRepo}
}

// HandleListJobs handles GET /jobs.
func (h *JobsHandler) HandleListJobs(c *fiber.Ctx) error {
	titles := h.jobRepo.Titles()
	return c.JSON(models.JobListResponse{
		Jobs:  titles,
		Count: len(titles),
	})
}
