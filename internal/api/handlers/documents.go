package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nikov/simplenote-backend/internal/api/middleware"
	"github.com/nikov/simplenote-backend/internal/domain"
	"github.com/nikov/simplenote-backend/internal/service"
	"github.com/nikov/simplenote-backend/pkg/logger"
)

type DocumentHandler struct {
	documentService *service.DocumentService
}

func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

type CreateDocumentRequest struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Content json.RawMessage `json:"content"`
}

type UpdateDocumentRequest struct {
	Title   string          `json:"title"`
	Content json.RawMessage `json:"content"`
}

type DocumentResponse struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Title     string         `json:"title"`
	Content   domain.Content `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	IsDeleted bool           `json:"is_deleted"`
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	docs, err := h.documentService.List(r.Context(), userID)
	if err != nil {
		logger.Sugar.Errorf("failed to list documents for user %s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, toDocumentResponses(docs))
}

func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	doc, err := h.documentService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			respondError(w, http.StatusNotFound, "Document not found")
			return
		}
		logger.Sugar.Errorf("failed to get document: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, toDocumentResponse(doc))
}

func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ID == "" || req.Title == "" {
		respondError(w, http.StatusBadRequest, "ID and title are required")
		return
	}

	doc, err := h.documentService.Create(r.Context(), userID, service.CreateDocumentInput{
		ID:      req.ID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDocumentExists) {
			respondError(w, http.StatusConflict, "Document already exists")
			return
		}
		logger.Sugar.Errorf("failed to create document: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, toDocumentResponse(doc))
}

func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Content must be present; an empty document is `content: {}`, not a
	// missing field. A literal null counts as missing.
	if req.Title == "" || contentAbsent(req.Content) {
		respondError(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	doc, err := h.documentService.Update(r.Context(), userID, chi.URLParam(r, "id"), service.UpdateDocumentInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			respondError(w, http.StatusNotFound, "Document not found")
			return
		}
		logger.Sugar.Errorf("failed to update document: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, toDocumentResponse(doc))
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	err := h.documentService.Delete(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			respondError(w, http.StatusNotFound, "Document not found")
			return
		}
		logger.Sugar.Errorf("failed to delete document: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Document deleted successfully"})
}

func contentAbsent(raw json.RawMessage) bool {
	return raw == nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func toDocumentResponse(doc *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:        doc.ID,
		UserID:    doc.UserID,
		Title:     doc.Title,
		Content:   domain.DecodeContent(doc.Content),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
		IsDeleted: doc.IsDeleted,
	}
}

func toDocumentResponses(docs []*domain.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toDocumentResponse(doc))
	}
	return out
}
