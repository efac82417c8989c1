package mocks

import (
	"sync"

	"catalog-service/internal/notify"
)

// MockDispatcher records dispatched messages for assertions
type MockDispatcher struct {
	mu       sync.Mutex
	Messages []notify.Message
}

func (m *MockDispatcher) Dispatch(msg notify.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, msg)
}

func (m *MockDispatcher) Dispatched() []notify.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]notify.Message, len(m.Messages))
	copy(out, m.Messages)
	return out
}
