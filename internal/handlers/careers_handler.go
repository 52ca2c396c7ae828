package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/larosas-pizzeria/ordering-api/internal/models"
	"github.com/larosas-pizzeria/ordering-api/internal/service"
)

// CareersHandler handles job applications
type CareersHandler struct {
	service *service.CareersService
	log     *slog.Logger
}

// NewCareersHandler creates a new careers handler
func NewCareersHandler(service *service.CareersService, log *slog.Logger) *CareersHandler {
	return &CareersHandler{
		service: service,
		log:     log,
	}
}

// Apply handles POST /api/careers/apply
func (h *CareersHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var app models.JobApplication
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	accepted, err := h.service.Apply(r.Context(), app)
	if err != nil {
		if errors.Is(err, service.ErrIncompleteApplication) {
			WriteError(w, http.StatusBadRequest, "Name, phone, email and position are required", h.log)
			return
		}
		h.log.Error("failed to store application", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("application received", "application_id", accepted.ID, "position", accepted.Position)
	WriteJSON(w, http.StatusCreated, accepted, h.log)
}

// List handles GET /api/careers/applications (back office, API-key gated)
func (h *CareersHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.service.Applications(r.Context())
	if err != nil {
		h.log.Error("failed to list applications", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, apps, h.log)
}
