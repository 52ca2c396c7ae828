package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/larosas-pizzeria/ordering-api/internal/config"
	"github.com/larosas-pizzeria/ordering-api/internal/middleware"
	"github.com/larosas-pizzeria/ordering-api/internal/models"
	"github.com/larosas-pizzeria/ordering-api/internal/repository"
	"github.com/larosas-pizzeria/ordering-api/internal/service"
	"github.com/larosas-pizzeria/ordering-api/pkg/logger"
)

func newCareersRouter() *chi.Mux {
	svc := service.NewCareersService(repository.NewInMemoryApplicationRepository())
	h := NewCareersHandler(svc, logger.New("error"))
	auth := config.AuthConfig{APIKeys: []string{"backoffice"}}

	r := chi.NewRouter()
	r.Post("/api/careers/apply", h.Apply)
	r.With(middleware.APIKeyAuth(auth)).Get("/api/careers/applications", h.List)
	return r
}

func TestCareersApplyEndpoint(t *testing.T) {
	router := newCareersRouter()

	body := `{"fullName":"Sal Esposito","phone":"516-555-0123","email":"sal@example.com","position":"Delivery Driver"}`
	req := httptest.NewRequest(http.MethodPost, "/api/careers/apply", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var app models.JobApplication
	if err := json.NewDecoder(w.Body).Decode(&app); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if app.ID == "" {
		t.Error("application id not assigned")
	}
}

func TestCareersApplyRejectsIncomplete(t *testing.T) {
	router := newCareersRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/careers/apply", strings.NewReader(`{"fullName":"Sal"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCareersListRequiresAPIKey(t *testing.T) {
	router := newCareersRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/careers/applications", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status without key = %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/careers/applications", nil)
	req.Header.Set("api_key", "backoffice")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status with key = %d, want 200", w.Code)
	}

	var apps []models.JobApplication
	if err := json.NewDecoder(w.Body).Decode(&apps); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(apps) != 0 {
		t.Errorf("applications = %d, want 0", len(apps))
	}
}
