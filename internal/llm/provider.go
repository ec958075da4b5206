package llm

import (
	"context"
	"encoding/json"
)

// Provider is the text-generation collaborator. Every study flow reaches the
// model through this interface.
type Provider interface {
	// Generate sends one request and returns the model's reply. When the
	// request carries a Schema, the reply Content is JSON conforming to it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role for the call.
	System string

	// Messages is the conversation. Study flows always send a single user
	// message holding the rendered prompt.
	Messages []Message

	// Schema is the declared output shape. Providers use their native
	// structured-output mode when it is set.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// UserRequest builds a single-turn Request from a system prompt and a
// rendered user prompt.
func UserRequest(system, prompt string, schema *Schema) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
		Schema:   schema,
	}
}

// Message is one turn of the conversation.
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

// Schema is a named JSON Schema describing a flow's output shape.
type Schema struct {
	// Name identifies the schema, e.g. "daily-study-plan". Used as the
	// OpenAI schema name and as the validator cache key.
	Name string

	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any
}

// Response holds the model's reply.
type Response struct {
	// Content is the validated JSON object when the request had a Schema,
	// otherwise the raw text.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage reports token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
