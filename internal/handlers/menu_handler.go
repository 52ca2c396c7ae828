package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/larosas-pizzeria/ordering-api/internal/menu"
	"github.com/larosas-pizzeria/ordering-api/internal/models"
	"github.com/larosas-pizzeria/ordering-api/internal/service"
)

// MenuHandler handles catalog browsing HTTP requests
type MenuHandler struct {
	service *service.MenuService
	log     *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service *service.MenuService, log *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log,
	}
}

// ListItems handles GET /api/menu
// Query params: section (Regular|Catering), category, q (search text),
// vegetarian, spicy, and repeated variant=itemId:Label selections.
// A non-empty q bypasses the category filter.
func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := menu.Filter{
		Section:    models.SectionRegular,
		Category:   menu.CategoryAll,
		Query:      q.Get("q"),
		Vegetarian: q.Get("vegetarian") == "true",
		Spicy:      q.Get("spicy") == "true",
	}
	if section := q.Get("section"); section != "" {
		f.Section = models.MenuSection(section)
	}
	if category := q.Get("category"); category != "" {
		f.Category = models.Category(category)
	}

	selected := make(map[string]string)
	for _, sel := range q["variant"] {
		itemID, label, ok := strings.Cut(sel, ":")
		if !ok {
			WriteError(w, http.StatusBadRequest, "Invalid variant selection, expected itemId:Label", h.log)
			return
		}
		selected[itemID] = label
	}

	items, err := h.service.Browse(r.Context(), f, selected)
	if err != nil {
		h.log.Error("failed to browse menu", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, items, h.log)
}

// ListCategories handles GET /api/menu/categories
// Returns the category choices for a section: All first, then the distinct
// categories present among that section's items.
func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	section := models.SectionRegular
	if s := r.URL.Query().Get("section"); s != "" {
		section = models.MenuSection(s)
	}

	categories, err := h.service.Categories(r.Context(), section)
	if err != nil {
		h.log.Error("failed to list categories", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, categories, h.log)
}
