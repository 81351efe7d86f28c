package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ResumeParserService extracts plain text from an uploaded resume file.
// Supported formats: PDF, DOCX and plain text. An unreadable or empty file
// is an error here, at the boundary, so the scoring core never sees it.
type ResumeParserService interface {
	ExtractText(filePath string) (string, error)
}

type resumeParserService struct{}

func NewResumeParserService() ResumeParserService {
	return &resumeParserService{}
}

func (p *resumeParserService) ExtractText(filePath string) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		text, err = extractPDFText(filePath)
	case ".docx":
		text, err = extractDocxText(filePath)
	case ".txt":
		text, err = extractPlainText(filePath)
	default:
		return "", fmt.Errorf("unsupported resume format: %s", filepath.Ext(filePath))
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in %s", filepath.Base(filePath))
	}
	return text, nil
}

func extractPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

var xmlTagRegex = regexp.MustCompile(`<[^>]+>`)

func extractDocxText(filePath string) (string, error) {
	d, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer d.Close()

	// GetContent returns the raw document XML; strip markup before scoring.
	content := d.Editable().GetContent()
	return xmlTagRegex.ReplaceAllString(content, " "), nil
}

func extractPlainText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	// Best-effort decode: drop invalid UTF-8 rather than failing the upload.
	return strings.ToValidUTF8(string(data), ""), nil
}
