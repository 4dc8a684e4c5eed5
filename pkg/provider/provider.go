// Package provider abstracts the LLM completion service behind a narrow
// contract: submit a system instruction and ordered turns, receive text.
// The interview engine never inspects provider-specific response shapes.
package provider

import "context"

// Turn is a single message in the conversation sent to the provider
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// CompletionProvider is the contract consumed by the interview engine. It
// returns the complete generated text for one call; no streaming.
type CompletionProvider interface {
	// Complete sends the system instruction and ordered turns, returning
	// the generated reply text
	Complete(ctx context.Context, system string, turns []Turn) (string, error)

	// Model returns the model identifier this provider is configured with
	Model() string
}

// Error wraps a failed or unusable completion call so boundary layers can
// distinguish provider failures from their own
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return "completion provider " + e.Provider + " failed: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ModelInfo describes one selectable model for the models endpoint
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Models lists the models selectable when starting an interview
var Models = []ModelInfo{
	{
		ID:          "claude-sonnet-4-20250514",
		Name:        "Claude Sonnet 4",
		Description: "Balanced performance and speed (Recommended)",
	},
	{
		ID:          "claude-opus-4-20250514",
		Name:        "Claude Opus 4",
		Description: "Highest quality, deeper understanding",
	},
	{
		ID:          "claude-3-5-haiku-20241022",
		Name:        "Claude Haiku 3.5",
		Description: "Fastest, most economical",
	},
}

// DefaultModel is used when no model is requested
const DefaultModel = "claude-sonnet-4-20250514"
