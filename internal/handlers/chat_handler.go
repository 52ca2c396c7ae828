package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/larosas-pizzeria/ordering-api/internal/assistant"
)

// ChatRequest represents a message to the virtual assistant
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse represents the assistant's reply
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatHandler handles assistant conversations
type ChatHandler struct {
	client *assistant.Client
	log    *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(client *assistant.Client, log *slog.Logger) *ChatHandler {
	return &ChatHandler{
		client: client,
		log:    log,
	}
}

// Send handles POST /api/chat
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		WriteError(w, http.StatusBadRequest, "Message is required", h.log)
		return
	}

	// Send never fails; upstream problems come back as an in-character reply.
	reply := h.client.Send(r.Context(), req.Message)

	WriteJSON(w, http.StatusOK, ChatResponse{Reply: reply}, h.log)
}
