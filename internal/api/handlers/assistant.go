package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nikov/simplenote-backend/internal/service"
)

// AssistantHandler serves the placeholder AI and speech endpoints. They sit
// behind the identity middleware like every document route, append an audit
// row and return canned output until the real integrations exist.
type AssistantHandler struct {
	assistantService *service.AssistantService
}

func NewAssistantHandler(assistantService *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

type SummarizeRequest struct {
	DocumentID   string `json:"documentId"`
	SelectedText string `json:"selectedText"`
}

type RewriteRequest struct {
	DocumentID   string `json:"documentId"`
	SelectedText string `json:"selectedText"`
	Style        string `json:"style"`
}

type TranscribeRequest struct {
	DocumentID string `json:"documentId"`
	AudioData  string `json:"audioData"`
}

func (h *AssistantHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	summary := h.assistantService.Summarize(r.Context(), req.DocumentID, req.SelectedText)
	respondJSON(w, http.StatusOK, map[string]string{
		"summary": summary,
		"message": "This endpoint is ready for AI integration",
	})
}

func (h *AssistantHandler) Rewrite(w http.ResponseWriter, r *http.Request) {
	var req RewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rewritten := h.assistantService.Rewrite(r.Context(), req.DocumentID, req.SelectedText, req.Style)
	respondJSON(w, http.StatusOK, map[string]string{
		"rewrittenText": rewritten,
		"message":       "This endpoint is ready for AI integration",
	})
}

func (h *AssistantHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req TranscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transcript := h.assistantService.Transcribe(r.Context(), req.DocumentID)
	respondJSON(w, http.StatusOK, map[string]string{
		"transcript": transcript,
		"message":    "This endpoint is ready for speech recognition integration",
	})
}
