package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one queued answer for the mock provider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider answers from a fixed queue and remembers every request it
// saw, which is all the service tests need.
type MockProvider struct {
	mu    sync.Mutex
	queue []MockResponse

	// Calls holds every request passed to Generate, oldest first.
	Calls []Request
}

// NewMockProvider queues the given responses in order.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// Generate pops the next queued response. An exhausted queue acts like an
// unreachable backend.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.queue) == 0 {
		return nil, &ErrProviderUnavailable{}
	}

	next := m.queue[0]
	m.queue = m.queue[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// AddResponse queues one more response.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// CallCount reports how many Generate calls were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
