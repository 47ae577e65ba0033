// Package oracle talks to the hosted language models that write exercise
// content. Nothing in the progression engine depends on it; callers must
// treat every failure as recoverable.
package oracle

import (
	"context"
	"encoding/json"
)

// Oracle answers a prompt with structured JSON.
type Oracle interface {
	// Ask sends the prompt and returns the reply. When the prompt carries a
	// Schema the reply Content is JSON validated against it.
	Ask(ctx context.Context, p Prompt) (*Reply, error)

	// ModelID returns the model identifier this oracle is configured to use.
	ModelID() string
}

// Prompt describes what to send to the model.
type Prompt struct {
	System   string
	Messages []Message

	// Schema is the JSON Schema the reply must conform to. When nil the
	// reply Content is the raw text.
	Schema *Schema

	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means provider
	// default.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected in a reply.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "exercise".
	Name        string
	Description string
	Definition  map[string]any
}

// Reply holds the model's output.
type Reply struct {
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
