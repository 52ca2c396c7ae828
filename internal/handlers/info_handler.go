package handlers

import (
	"log/slog"
	"net/http"

	"github.com/larosas-pizzeria/ordering-api/internal/models"
)

// InfoHandler serves restaurant details
type InfoHandler struct {
	log *slog.Logger
}

// NewInfoHandler creates a new info handler
func NewInfoHandler(log *slog.Logger) *InfoHandler {
	return &InfoHandler{log: log}
}

// Get handles GET /api/info
func (h *InfoHandler) Get(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, models.Restaurant, h.log)
}
