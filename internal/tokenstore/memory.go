package tokenstore

import (
	"context"
	"sync"
)

// Memory keeps the token in process memory. It is the default store and
// resets on restart, like an uncleared app session.
type Memory struct {
	mu    sync.Mutex
	token string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *Memory) Set(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
