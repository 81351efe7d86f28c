package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skillmatch/internal/models"
	"skillmatch/internal/repositories"
	"skillmatch/internal/services"
)

type MatchHandler struct {
	jobRepo     repositories.JobRepository
	docRepo     repositories.DocumentRepository
	scorer      *services.MatchScorer
	recommender *services.Recommender
}

func NewMatchHandler(
	jobRepo repositories.JobRepository,
	docRepo repositories.DocumentRepository,
	scorer *services.MatchScorer,
	recommender *services.Recommender,
) *MatchHandler {
	return &MatchHandler{
		jobRepo:     jobRepo,
		docRepo:     docRepo,
		scorer:      scorer,
		recommender: recommender,
	}
}

// HandleMatch handles POST /match. Empty resume text is not an error: the
// analysis degrades to a fully-populated zero-score result.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	resp, status, errMsg := h.analyze(c)
	if errMsg != "" {
		return c.Status(status).JSON(fiber.Map{"error": errMsg})
	}
	return c.JSON(resp)
}

// HandleMatchReport handles POST /match/report: the same analysis rendered
// as a downloadable CSV report.
func (h *MatchHandler) HandleMatchReport(c *fiber.Ctx) error {
	resp, status, errMsg := h.analyze(c)
	if errMsg != "" {
		return c.Status(status).JSON(fiber.Map{"error": errMsg})
	}

	report, err := services.BuildReport(resp.JobTitle, resp.Result, resp.Recommendations, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to build report",
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="skillmatch_report.csv"`)
	return c.Send(report)
}

func (h *MatchHandler) analyze(c *fiber.Ctx) (*models.MatchResponse, int, string) {
	var req models.MatchRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.StatusBadRequest, "Invalid request payload"
	}

	if req.JobTitle == "" {
		return nil, fiber.StatusBadRequest, "job_title is required"
	}

	resumeText := req.ResumeText
	if req.DocumentID != "" {
		docID, err := uuid.Parse(req.DocumentID)
		if err != nil {
			return nil, fiber.StatusBadRequest, "Invalid document_id format"
		}
		doc, err := h.docRepo.FindByID(docID)
		if err != nil {
			return nil, fiber.StatusNotFound, "Resume document not found"
		}
		resumeText = doc.Text
	}

	job, err := h.jobRepo.FindByTitle(req.JobTitle)
	if err != nil {
		return nil, fiber.StatusNotFound, "Unknown job role. See /api/v1/jobs for valid roles."
	}

	result := h.scorer.Match(c.Context(), resumeText, job.Skills, job.Description)
	recommendations := h.recommender.Recommend(result.MissingSkills, job.DisplayTitle)

	return &models.MatchResponse{
		JobTitle:        job.DisplayTitle,
		Result:          result,
		Recommendations: recommendations,
	}, fiber.StatusOK, ""
}
