package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nikov/simplenote-backend/internal/domain"
	"github.com/nikov/simplenote-backend/internal/repository"
	"gorm.io/gorm"
)

// DocumentService owns every document operation. The userID parameter on
// each method comes from the identity middleware, never from client-supplied
// fields; it is the sole scope for reads and writes.
type DocumentService struct {
	docs repository.DocumentRepository
}

func NewDocumentService(docs repository.DocumentRepository) *DocumentService {
	return &DocumentService{docs: docs}
}

type CreateDocumentInput struct {
	ID      string
	Title   string
	Content json.RawMessage
}

type UpdateDocumentInput struct {
	Title   string
	Content json.RawMessage
}

// List returns the caller's live documents, most recently updated first.
func (s *DocumentService) List(ctx context.Context, userID string) ([]*domain.Document, error) {
	return s.docs.ListByOwner(ctx, userID)
}

func (s *DocumentService) Get(ctx context.Context, userID, id string) (*domain.Document, error) {
	doc, err := s.docs.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) Create(ctx context.Context, userID string, input CreateDocumentInput) (*domain.Document, error) {
	now := time.Now().UTC()
	doc := &domain.Document{
		ID:        input.ID,
		UserID:    userID,
		Title:     input.Title,
		Content:   domain.EncodeContent(input.Content),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.docs.Create(ctx, doc); err != nil {
		// Document IDs are globally unique, so a clash with any tenant's
		// document is a conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDocumentExists
		}
		return nil, err
	}
	return doc, nil
}

// Update rewrites title and content and refreshes updated_at; created_at is
// immutable. Last writer wins when the same document is updated concurrently.
func (s *DocumentService) Update(ctx context.Context, userID, id string, input UpdateDocumentInput) (*domain.Document, error) {
	doc := &domain.Document{
		ID:        id,
		UserID:    userID,
		Title:     input.Title,
		Content:   domain.EncodeContent(input.Content),
		UpdatedAt: time.Now().UTC(),
	}

	rows, err := s.docs.Update(ctx, doc)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrDocumentNotFound
	}

	return s.Get(ctx, userID, id)
}

// Delete soft-deletes the document. Deleting an already-deleted document
// reports not-found, since deleted documents are invisible.
func (s *DocumentService) Delete(ctx context.Context, userID, id string) error {
	rows, err := s.docs.SoftDelete(ctx, userID, id, time.Now().UTC())
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}
