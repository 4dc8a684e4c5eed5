package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	anthropicEndpoint = "https://api.anthropic.com/v1/messages"
	anthropicVersion  = "2023-06-01"
	maxTokens         = 1024

	// Returned to the caller when the provider responds without any text
	// content block
	noContentFallback = "I apologize, but I was unable to generate a response. Could you please try again?"
)

// anthropicRequest is the request body for the Anthropic Messages API
type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse is the subset of the Messages API response the adapter
// consumes
type anthropicResponse struct {
	ID      string             `json:"id"`
	Type    string             `json:"type"`
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
	Model   string             `json:"model"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// AnthropicProvider calls the Anthropic Messages API over HTTP
type AnthropicProvider struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewAnthropicProvider creates a provider for the given API key and model.
// An empty model selects the default.
func NewAnthropicProvider(apiKey, model string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic api key cannot be empty")
	}
	if model == "" {
		model = DefaultModel
	}

	return &AnthropicProvider{
		apiKey:     apiKey,
		model:      model,
		endpoint:   anthropicEndpoint,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

// Model returns the configured model identifier
func (p *AnthropicProvider) Model() string {
	return p.model
}

// Complete sends the system instruction and turns to the Messages API and
// returns the first text content block of the response
func (p *AnthropicProvider) Complete(ctx context.Context, system string, turns []Turn) (string, error) {
	messages := make([]anthropicMessage, len(turns))
	for i, turn := range turns {
		messages[i] = anthropicMessage{Role: turn.Role, Content: turn.Content}
	}

	reqBody := anthropicRequest{
		Model:     p.model,
		MaxTokens: maxTokens,
		System:    system,
		Messages:  messages,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", &Error{Provider: "anthropic", Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &Error{Provider: "anthropic", Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", &Error{Provider: "anthropic", Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Provider: "anthropic", Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &Error{Provider: "anthropic", Err: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))}
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &Error{Provider: "anthropic", Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	for _, block := range parsed.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}

	return noContentFallback, nil
}
