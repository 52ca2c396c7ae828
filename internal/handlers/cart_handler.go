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

// SessionHeader carries the ordering-session id on cart and checkout
// requests
const SessionHeader = "X-Session-ID"

// CartHandler handles cart HTTP requests
type CartHandler struct {
	service *service.CheckoutService
	log     *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *service.CheckoutService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

func sessionID(r *http.Request) string {
	return r.Header.Get(SessionHeader)
}

// writeCartError maps cart/session errors to HTTP statuses
func writeCartError(w http.ResponseWriter, err error, log *slog.Logger) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		WriteError(w, http.StatusNotFound, "Session not found", log)
	case errors.Is(err, repository.ErrItemNotFound):
		WriteError(w, http.StatusNotFound, "Menu item not found", log)
	case errors.Is(err, service.ErrUnknownVariant):
		WriteError(w, http.StatusBadRequest, "Unknown price variant", log)
	default:
		WriteError(w, http.StatusInternalServerError, "Internal server error", log)
	}
}

// CreateSession handles POST /api/cart/session
func (h *CartHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.service.CreateSession()
	h.log.Info("session created", "session_id", sess.ID)
	WriteJSON(w, http.StatusCreated, map[string]string{"sessionId": sess.ID}, h.log)
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.View(sessionID(r))
	if err != nil {
		writeCartError(w, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, view, h.log)
}

// AddItemRequest is the body for POST /api/cart/items
type AddItemRequest struct {
	ItemID       string `json:"itemId"`
	VariantLabel string `json:"variantLabel,omitempty"`
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if req.ItemID == "" {
		WriteError(w, http.StatusBadRequest, "itemId is required", h.log)
		return
	}

	view, err := h.service.AddItem(r.Context(), sessionID(r), req.ItemID, req.VariantLabel)
	if err != nil {
		writeCartError(w, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, view, h.log)
}

// UpdateQuantityRequest is the body for PATCH /api/cart/items/{cartId}
type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}

// UpdateQuantity handles PATCH /api/cart/items/{cartId}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	view, err := h.service.UpdateQuantity(sessionID(r), chi.URLParam(r, "cartId"), req.Delta)
	if err != nil {
		writeCartError(w, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, view, h.log)
}

// RemoveItem handles DELETE /api/cart/items/{cartId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.RemoveItem(sessionID(r), chi.URLParam(r, "cartId"))
	if err != nil {
		writeCartError(w, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, view, h.log)
}
