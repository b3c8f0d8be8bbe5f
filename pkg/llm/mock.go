package llm

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Text string
	Err  error
}

// MockProvider is a deterministic LLMProvider for tests and offline runs.
// It returns canned responses in FIFO order and records every prompt.
// Once the queue is drained it fails with ErrProviderUnavailable.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Prompts   []string
}

var _ LLMProvider = &MockProvider{}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Chat(_ context.Context, history []Message, _ ...Option) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(history) > 0 {
		m.Prompts = append(m.Prompts, history[len(history)-1].Content)
	}

	if len(m.responses) == 0 {
		return "", &ErrProviderUnavailable{}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]
	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Text, nil
}

func (m *MockProvider) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	return m.Chat(ctx, []Message{{Role: RoleUser, Content: prompt}}, opts...)
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
