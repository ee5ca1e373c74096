package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"slotcal/internal/event"
)

// Defaults for the live gateway. The base URL and model mirror the
// OpenRouter chat-completions setup this system was built against.
const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "openai/gpt-4o-mini"

	defaultTimeout = 30 * time.Second
)

// systemPrompt pins the model to the JSON contract Parse expects.
const systemPrompt = `Extract event info and return ONLY valid JSON. ` +
	`Format must be: {"name":..., "start_time": "YYYY-MM-DD HH:MM", "participants": [...]}`

// Client calls an OpenAI-compatible chat-completions endpoint to extract
// event data from free text.
//
// The call is a plain blocking HTTP request honoring ctx cancellation. A
// failed or canceled call has no side effects anywhere - the client holds
// no state beyond its configuration.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL (e.g. a local proxy).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithModel overrides the model identifier.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client (tests, custom
// transports).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a live extraction client. The API key is required.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("extraction API key not set")
	}

	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
		model:      DefaultModel,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// chatRequest and chatResponse cover the slice of the chat-completions
// schema this client touches.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Extract asks the model to pull structured event data out of text.
// The reply is validated through Parse; any transport or validation
// failure returns an error and no event.
func (c *Client) Extract(ctx context.Context, text string) (event.Event, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return event.Event{}, fmt.Errorf("extract: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return event.Event{}, fmt.Errorf("extract: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return event.Event{}, fmt.Errorf("extract: gateway request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a bounded amount of the body for the log line.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		slog.Warn("extraction gateway returned non-success status",
			"status", resp.StatusCode,
			"body", string(snippet),
		)
		return event.Event{}, fmt.Errorf("extract: gateway status %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return event.Event{}, &ParseError{Reason: "gateway response is not valid JSON", Err: err}
	}
	if len(cr.Choices) == 0 {
		return event.Event{}, &ParseError{Reason: "gateway response has no choices"}
	}

	ev, err := Parse(cr.Choices[0].Message.Content)
	if err != nil {
		return event.Event{}, err
	}

	slog.Debug("event extracted",
		"id", ev.ID(),
		"name", ev.Name(),
		"start", ev.Start().Format(event.TimeLayout),
	)

	return ev, nil
}
