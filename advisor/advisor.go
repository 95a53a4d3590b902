// Package advisor asks a text-generation model for a hit-or-stand hint.
// Advice is cosmetic: it carries no game-state authority, and callers must
// keep playing normally when it fails.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"blackjack/game"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("advisor is not configured")

// Client calls the Gemini generateContent REST API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New creates an advisor client. An empty API key yields a client whose
// Recommend always fails with ErrDisabled.
func New(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// request/response shapes for the generateContent endpoint, reduced to the
// fields this client touches.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Recommend asks the model for a brief Hit/Stand recommendation for the
// current hand.
func (c *Client) Recommend(ctx context.Context, playerCards []game.Card, dealerUpCard game.Card, playerTotal int) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(playerCards, dealerUpCard, playerTotal)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("recommendation request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("model returned status %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("model returned status %d", resp.StatusCode)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}

	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}

func buildPrompt(playerCards []game.Card, dealerUpCard game.Card, playerTotal int) string {
	cards := make([]string, len(playerCards))
	for i, c := range playerCards {
		cards[i] = c.String()
	}

	var b strings.Builder
	b.WriteString("You are a professional blackjack strategy advisor. Given the current game state, provide a brief recommendation (Hit or Stand) with a short explanation.\n\n")
	b.WriteString("Current situation:\n")
	fmt.Fprintf(&b, "- Your cards: %s\n", strings.Join(cards, ", "))
	fmt.Fprintf(&b, "- Your total: %d\n", playerTotal)
	fmt.Fprintf(&b, "- Dealer's up card: %s\n\n", dealerUpCard)
	b.WriteString("Respond in this exact format:\n")
	b.WriteString("\"Recommendation: [Hit/Stand]. [Brief 1-sentence explanation based on basic strategy.]\"\n\n")
	b.WriteString("Keep the response under 50 words.")
	return b.String()
}
