package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const apiBaseURL = "https://api.telegram.org"

// Client sends messages through the Telegram Bot API. Token and chat id are
// injected at construction time.
type Client interface {
	SendMessage(ctx context.Context, text string) error
}

type client struct {
	token      string
	chatID     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(token, chatID string) Client {
	return &client{
		token:      token,
		chatID:     chatID,
		baseURL:    apiBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL points the client at a different API host, used by tests.
func NewClientWithBaseURL(token, chatID, baseURL string) Client {
	return &client{
		token:      token,
		chatID:     chatID,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendMessagePayload struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

func (c *client) SendMessage(ctx context.Context, text string) error {

	if c.token == "" || c.chatID == "" {
		return fmt.Errorf("telegram client is not configured")
	}

	payload, err := json.Marshal(sendMessagePayload{ChatID: c.chatID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal telegram payload: %w", err)
	}

	apiURL := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create telegram request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("telegram error %s: %s", resp.Status, string(respBody))
	}

	return nil
}
