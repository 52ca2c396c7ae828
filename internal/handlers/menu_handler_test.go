package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/larosas-pizzeria/ordering-api/internal/menu"
	"github.com/larosas-pizzeria/ordering-api/internal/models"
	"github.com/larosas-pizzeria/ordering-api/internal/repository"
	"github.com/larosas-pizzeria/ordering-api/internal/service"
	"github.com/larosas-pizzeria/ordering-api/pkg/logger"
)

func newMenuRouter() *chi.Mux {
	svc := service.NewMenuService(repository.NewInMemoryMenuRepository())
	h := NewMenuHandler(svc, logger.New("error"))

	r := chi.NewRouter()
	r.Get("/api/menu", h.ListItems)
	r.Get("/api/menu/categories", h.ListCategories)
	return r
}

func TestListItems(t *testing.T) {
	router := newMenuRouter()

	tests := []struct {
		name      string
		url       string
		status    int
		check     func(t *testing.T, items []menu.PricedItem)
	}{
		{
			name:   "defaults to the regular section",
			url:    "/api/menu",
			status: http.StatusOK,
			check: func(t *testing.T, items []menu.PricedItem) {
				if len(items) == 0 {
					t.Fatal("no items returned")
				}
				for _, it := range items {
					if it.Item.Section != models.SectionRegular {
						t.Errorf("item %s from section %s", it.Item.ID, it.Item.Section)
					}
				}
			},
		},
		{
			name:   "category filter",
			url:    "/api/menu?category=Pizza",
			status: http.StatusOK,
			check: func(t *testing.T, items []menu.PricedItem) {
				if len(items) == 0 {
					t.Fatal("no pizza returned")
				}
				for _, it := range items {
					if it.Item.Category != models.CategoryPizza {
						t.Errorf("item %s has category %s", it.Item.ID, it.Item.Category)
					}
				}
			},
		},
		{
			name:   "search bypasses category",
			url:    "/api/menu?category=Pizza&q=calamari",
			status: http.StatusOK,
			check: func(t *testing.T, items []menu.PricedItem) {
				if len(items) == 0 {
					t.Fatal("search returned nothing")
				}
				for _, it := range items {
					if it.Item.Category == models.CategoryPizza {
						t.Errorf("item %s should not match calamari", it.Item.ID)
					}
				}
			},
		},
		{
			name:   "explicit variant selection changes the price",
			url:    "/api/menu?category=Pizza&variant=piz3:Pie",
			status: http.StatusOK,
			check: func(t *testing.T, items []menu.PricedItem) {
				for _, it := range items {
					if it.Item.ID == "piz3" {
						if it.Variant == nil || it.Variant.Label != "Pie" {
							t.Errorf("piz3 variant = %v, want Pie", it.Variant)
						}
						return
					}
				}
				t.Fatal("piz3 not in results")
			},
		},
		{
			name:   "catering section",
			url:    "/api/menu?section=Catering",
			status: http.StatusOK,
			check: func(t *testing.T, items []menu.PricedItem) {
				if len(items) == 0 {
					t.Fatal("no catering items")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}

			var items []menu.PricedItem
			if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
				t.Fatalf("decode: %v", err)
			}
			tt.check(t, items)
		})
	}
}

func TestListItemsRejectsMalformedVariant(t *testing.T) {
	router := newMenuRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/menu?variant=piz3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestListCategories(t *testing.T) {
	router := newMenuRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/menu/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var categories []models.Category
	if err := json.NewDecoder(w.Body).Decode(&categories); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(categories) < 2 {
		t.Fatalf("categories = %v", categories)
	}
	if categories[0] != menu.CategoryAll {
		t.Errorf("first category = %s, want All", categories[0])
	}
}
