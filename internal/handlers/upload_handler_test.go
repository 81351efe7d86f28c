package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillmatch/internal/models"
	"skillmatch/internal/repositories"
	"skillmatch/internal/services"
)

func newUploadApp(t *testing.T) (*fiber.App, repositories.DocumentRepository) {
	t.Helper()

	docRepo := repositories.NewDocumentRepository()
	storage := services.NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	handler := NewUploadHandler(
		docRepo,
		storage,
		services.NewResumeParserService(),
		services.NewSkillExtractor(services.DefaultFuzzyThreshold),
		1<<20,
	)

	app := fiber.New()
	app.Post("/api/v1/upload", handler.HandleUpload)
	return app, docRepo
}

func postResume(t *testing.T, app *fiber.App, filename, content string) *models.UploadResponse {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/upload", &buf)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out models.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return &out
}

func TestHandleUpload_TextResume(t *testing.T) {
	app, docRepo := newUploadApp(t)

	content := "Senior engineer with Python, Docker and AWS experience."
	out := postResume(t, app, "resume.txt", content)

	assert.Equal(t, "resume.txt", out.OriginalName)
	assert.Equal(t, len(content), out.Characters)
	assert.Equal(t, []string{"Python", "AWS", "Docker"}, out.DetectedSkills)

	id, err := uuid.Parse(out.ID)
	require.NoError(t, err)
	doc, err := docRepo.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, content, doc.Text)
}

func TestHandleUpload_MissingFile(t *testing.T) {
	app, _ := newUploadApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/upload", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleUpload_RejectsUnsupportedExtension(t *testing.T) {
	app, _ := newUploadApp(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", "resume.exe")
	require.NoError(t, err)
	_, err = part.Write([]byte("not a resume"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/upload", &buf)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleUpload_RejectsEmptyTextFile(t *testing.T) {
	app, _ := newUploadApp(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", "resume.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("   \n  "))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/upload", &buf)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
