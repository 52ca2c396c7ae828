package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/larosas-pizzeria/ordering-api/internal/models"
)

// Client talks to the external chat-completion service that backs the site
// assistant. It never surfaces transport errors to the caller: any failure
// degrades to a fixed apology pointing at the restaurant phone line.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	system  string
	phone   string
	client  *http.Client
	log     *slog.Logger
}

// New creates an assistant client. The system prompt is seeded with the
// restaurant metadata and the full menu so the model can answer price and
// availability questions without tools.
func New(baseURL, apiKey, model string, catalog []models.MenuItem, info models.RestaurantInfo, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		system:  SystemPrompt(catalog, info),
		phone:   info.Phone,
		client: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SystemPrompt renders the assistant's persona and menu context
func SystemPrompt(items []models.MenuItem, info models.RestaurantInfo) string {
	var menu strings.Builder
	for _, it := range items {
		var priceStr string
		if len(it.Variants) > 0 {
			parts := make([]string, 0, len(it.Variants))
			for _, variant := range it.Variants {
				parts = append(parts, fmt.Sprintf("%s: $%s", variant.Label, variant.Price))
			}
			priceStr = strings.Join(parts, ", ")
		} else {
			priceStr = "$" + it.Price.String()
		}
		fmt.Fprintf(&menu, "%s (%s): %s [Category: %s, Section: %s]\n",
			it.Name, priceStr, it.Description, it.Category, it.Section)
	}

	return fmt.Sprintf(`You are Luigi, a long-time waiter at %s in West Hempstead, NY.
You are part of the family. You speak with a friendly, distinct New York/Italian warmth.
Your goal is to help customers order efficiently and answer questions to reduce phone traffic to %s.

Here is our Restaurant Info:
Address: %s
Hours: %s
Phone: %s

Here is our Menu:
%s
Guidelines:
1. Use phrases like "Welcome to the family," "Best slice in West Hempstead," or "Fuhgeddaboudit" (sparingly).
2. If a customer asks for a reservation or a complex order, encourage them to order online first, or call %s if strictly necessary.
3. If asked about the area, mention we are proud to serve the West Hempstead community.
4. Keep answers concise. We are a busy NY pizzaria!
`, info.Name, info.Phone, info.Address, info.Hours, info.Phone, menu.String(), info.Phone)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Send asks the assistant for a reply to one customer message. It always
// returns text: a missing API key or any transport/API error yields the
// fallback copy instead of an error.
func (c *Client) Send(ctx context.Context, message string) string {
	if c.apiKey == "" {
		return fmt.Sprintf("Ey, sorry! I'm cleaning the oven and can't hear you. Call the shop at %s!", c.phone)
	}

	reply, err := c.complete(ctx, message)
	if err != nil {
		c.log.Warn("assistant request failed", "error", err)
		return "It's loud in here! Could you repeat that?"
	}
	return reply
}

func (c *Client) complete(ctx context.Context, message string) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: c.system},
			{Role: "user", Content: message},
		},
		Temperature: 0.7,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty completion")
	}
	return parsed.Choices[0].Message.Content, nil
}
