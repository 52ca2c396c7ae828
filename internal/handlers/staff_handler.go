package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/larosas-pizzeria/ordering-api/internal/repository"
	"github.com/larosas-pizzeria/ordering-api/internal/service"
)

// StaffHandler handles the employee time-clock portal
type StaffHandler struct {
	service *service.StaffService
	log     *slog.Logger
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(service *service.StaffService, log *slog.Logger) *StaffHandler {
	return &StaffHandler{
		service: service,
		log:     log,
	}
}

// LoginRequest is the body for POST /api/staff/login
type LoginRequest struct {
	PIN string `json:"pin"`
}

// Login handles POST /api/staff/login
// An invalid PIN is rejected outright; the response never hints at which
// PINs exist.
func (h *StaffHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	emp, err := h.service.Login(r.Context(), req.PIN)
	if err != nil {
		h.log.Warn("staff login rejected")
		WriteError(w, http.StatusUnauthorized, "Invalid PIN", h.log)
		return
	}

	h.log.Info("staff login", "employee_id", emp.ID)
	WriteJSON(w, http.StatusOK, emp, h.log)
}

// ToggleClock handles POST /api/staff/{employeeId}/clock
func (h *StaffHandler) ToggleClock(w http.ResponseWriter, r *http.Request) {
	emp, err := h.service.ToggleClock(r.Context(), chi.URLParam(r, "employeeId"))
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			WriteError(w, http.StatusNotFound, "Employee not found", h.log)
			return
		}
		h.log.Error("failed to toggle clock", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("clock toggled", "employee_id", emp.ID, "clocked_in", emp.IsClockedIn)
	WriteJSON(w, http.StatusOK, emp, h.log)
}

// Schedule handles GET /api/staff/{employeeId}/schedule
func (h *StaffHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.service.Schedule(r.Context(), chi.URLParam(r, "employeeId"))
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			WriteError(w, http.StatusNotFound, "Employee not found", h.log)
			return
		}
		h.log.Error("failed to load schedule", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, shifts, h.log)
}
