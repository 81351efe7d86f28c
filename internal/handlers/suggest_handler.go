package handlers

import (
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skillmatch/internal/models"
	"skillmatch/internal/repositories"
	"skillmatch/internal/services"
)

const maxSuggestedRoles = 5

// SuggestHandler ranks catalog roles against an uploaded resume using the
// vector index. Both backends are optional; without them the endpoint
// reports unavailable instead of failing the whole service.
type SuggestHandler struct {
	docRepo       repositories.DocumentRepository
	geminiService services.GeminiService
	qdrantService services.QdrantService
	maxEmbedChars int
}

func NewSuggestHandler(
	docRepo repositories.DocumentRepository,
	geminiService services.GeminiService,
	qdrantService services.QdrantService,
	maxEmbedChars int,
) *SuggestHandler {
	return &SuggestHandler{
		docRepo:       docRepo,
		geminiService: geminiService,
		qdrantService: qdrantService,
		maxEmbedChars: maxEmbedChars,
	}
}

// HandleSuggest handles GET /suggest/:document_id.
func (h *SuggestHandler) HandleSuggest(c *fiber.Ctx) error {
	if h.geminiService == nil || h.qdrantService == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Role suggestion requires the embedding backend and vector index",
		})
	}

	docID, err := uuid.Parse(c.Params("document_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID format",
		})
	}

	doc, err := h.docRepo.FindByID(docID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume document not found",
		})
	}

	text := doc.Text
	if len(text) > h.maxEmbedChars {
		text = text[:h.maxEmbedChars]
	}

	embedding, err := h.geminiService.GenerateEmbedding(c.Context(), text)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "failed to embed resume",
		})
	}

	matches, err := h.qdrantService.SuggestRoles(c.Context(), embedding, maxSuggestedRoles)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "failed to query role suggestions",
		})
	}

	suggestions := make([]models.RoleSuggestion, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, models.RoleSuggestion{
			JobTitle: m.JobTitle,
			Score:    math.Round(float64(m.Score)*10000) / 100,
		})
	}

	return c.JSON(models.SuggestResponse{
		DocumentID:  doc.ID.String(),
		Suggestions: suggestions,
	})
}
