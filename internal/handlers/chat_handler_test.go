package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/larosas-pizzeria/ordering-api/internal/assistant"
	"github.com/larosas-pizzeria/ordering-api/internal/models"
	"github.com/larosas-pizzeria/ordering-api/pkg/logger"
)

func TestChatEndpoint(t *testing.T) {
	// No API key configured: Send degrades to the offline fallback, which is
	// still a 200 with a reply.
	client := assistant.New("https://api.example.com/v1", "", "test-model", nil, models.Restaurant, time.Second, logger.New("error"))
	h := NewChatHandler(client, logger.New("error"))

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"message gets a reply", `{"message":"Do you deliver?"}`, http.StatusOK},
		{"empty message", `{"message":"  "}`, http.StatusBadRequest},
		{"bad json", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.Send(w, req)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}

			if tt.status == http.StatusOK {
				var resp ChatResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if resp.Reply == "" {
					t.Error("empty reply")
				}
			}
		})
	}
}
