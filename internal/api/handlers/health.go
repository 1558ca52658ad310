package handlers

import (
	"net/http"

	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check reports liveness plus database reachability. It stays 200 even when
// the database is down so load balancers can tell the two states apart from
// the body.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	if err := h.db.WithContext(r.Context()).Exec("SELECT 1").Error; err != nil {
		database = "disconnected"
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": database,
	})
}
