package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"skillmatch/internal/models"
)

// DocumentRepository is an in-memory registry of uploaded resumes. Documents
// live for the lifetime of the process only; there is no durable store, and
// one upload can back any number of match analyses.
type DocumentRepository interface {
	Create(document *models.Document) error
	FindByID(id uuid.UUID) (*models.Document, error)
	Delete(id uuid.UUID) error
}

type documentRepository struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]models.Document
}

func NewDocumentRepository() DocumentRepository {
	return &documentRepository{
		docs: make(map[uuid.UUID]models.Document),
	}
}

// Create implements DocumentRepository.
func (d *documentRepository) Create(document *models.Document) error {
	if document == nil || document.ID == uuid.Nil {
		return fmt.Errorf("document must have an ID")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.docs[document.ID] = *document
	return nil
}

// FindByID implements DocumentRepository.
func (d *documentRepository) FindByID(id uuid.UUID) (*models.Document, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	doc, ok := d.docs[id]
	if !ok {
		return nil, fmt.Errorf("document not found: %s", id)
	}
	return &doc, nil
}

// Delete implements DocumentRepository.
func (d *documentRepository) Delete(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.docs[id]; !ok {
		return fmt.Errorf("document not found: %s", id)
	}
	delete(d.docs, id)
	return nil
}
