package models

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded resume. The extracted text is kept alongside the
// stored file so a single upload can be matched against many roles without
// re-parsing.
type Document struct {
	ID               uuid.UUID `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFileName string    `json:"original_filename"`
	FilePath         string    `json:"file_path"`
	Text             string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
}
