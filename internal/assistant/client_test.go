package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/larosas-pizzeria/ordering-api/internal/models"
	"github.com/larosas-pizzeria/ordering-api/pkg/logger"
	"github.com/shopspring/decimal"
)

func testInfo() models.RestaurantInfo {
	return models.Restaurant
}

func testMenu() []models.MenuItem {
	return []models.MenuItem{
		{
			Name:        "Grandma Pie",
			Description: "Thin square, garlic, fresh basil.",
			Category:    models.CategoryPizza,
			Section:     models.SectionRegular,
			Variants: []models.PriceVariant{
				{Label: "Slice", Price: decimal.NewFromFloat(3.90)},
				{Label: "Pie", Price: decimal.NewFromFloat(24.30)},
			},
		},
		{
			Name:        "Penne alla Vodka",
			Description: "Penne in a creamy vodka sauce.",
			Price:       decimal.NewFromFloat(15.95),
			Category:    models.CategoryPasta,
			Section:     models.SectionRegular,
		},
	}
}

func TestSystemPrompt(t *testing.T) {
	prompt := SystemPrompt(testMenu(), testInfo())

	for _, want := range []string{
		"Luigi",
		"Grandma Pie",
		"Slice: $3.9",
		"Penne alla Vodka",
		testInfo().Phone,
		testInfo().Address,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestSendWithoutAPIKey(t *testing.T) {
	c := New("https://api.example.com/v1", "", "test-model", testMenu(), testInfo(), time.Second, logger.New("error"))

	reply := c.Send(context.Background(), "What's good here?")

	if !strings.Contains(reply, "cleaning the oven") {
		t.Errorf("reply = %q, want the offline fallback", reply)
	}
	if !strings.Contains(reply, testInfo().Phone) {
		t.Errorf("reply = %q, want the shop phone number", reply)
	}
}

func TestSendSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("authorization = %s", auth)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("messages = %+v", req.Messages)
		}
		if req.Messages[1].Content != "Do you have vodka sauce?" {
			t.Errorf("user message = %q", req.Messages[1].Content)
		}

		json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{
				{Message: chatMessage{Role: "assistant", Content: "Fuhgeddaboudit, best penne alla vodka in town!"}},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL, "test-key", "test-model", testMenu(), testInfo(), time.Second, logger.New("error"))

	reply := c.Send(context.Background(), "Do you have vodka sauce?")
	if reply != "Fuhgeddaboudit, best penne alla vodka in town!" {
		t.Errorf("reply = %q", reply)
	}
}

func TestSendDegradesOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "upstream error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "empty choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(chatResponse{})
			},
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			c := New(server.URL, "test-key", "test-model", testMenu(), testInfo(), time.Second, logger.New("error"))

			reply := c.Send(context.Background(), "hello")
			if reply != "It's loud in here! Could you repeat that?" {
				t.Errorf("reply = %q, want the noisy-kitchen fallback", reply)
			}
		})
	}
}
