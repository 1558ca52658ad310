package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nikov/simplenote-backend/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Sugar.Errorf("failed to encode response: %v", err)
	}
}

// respondError writes the uniform error envelope. Internal causes are logged
// by the caller, never leaked into message.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
