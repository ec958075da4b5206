package llm

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// MockResponse is one canned reply for MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider. Queued responses are returned
// in FIFO order; once the queue is empty it either fails with
// ErrProviderUnavailable or, when Echo is set, fabricates a reply that
// satisfies the request schema. Every request is recorded.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []Request

	// Echo makes an empty queue produce schema-shaped placeholder output
	// instead of failing. Used by the "mock" provider setting.
	Echo bool
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)

	if len(m.responses) == 0 {
		if !m.Echo {
			return nil, &ErrProviderUnavailable{}
		}
		content, err := json.Marshal(placeholder(req.Schema))
		if err != nil {
			return nil, err
		}
		return &Response{Content: content, Model: "mock", StopReason: "end"}, nil
	}

	next := m.responses[0]
	m.responses = m.responses[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	if err := ValidateResponse(req.Schema, next.Content); err != nil {
		return nil, err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// Calls returns a copy of the recorded requests.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// placeholder builds an object with every string property of schema set to
// a fixed sentence naming the property.
func placeholder(schema *Schema) map[string]any {
	out := map[string]any{}
	if schema == nil {
		return out
	}
	props, _ := schema.Definition["properties"].(map[string]any)
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out[name] = "Mock " + name + "."
	}
	return out
}
