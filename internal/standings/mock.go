package standings

import (
	"context"
	"sync"
)

// MockService is a mock implementation of the standings Service for testing.
type MockService struct {
	mu sync.Mutex

	StandingsFunc  func(ctx context.Context) ([]Standing, error)
	StandingsCalls int
}

// NewMock creates a new mock instance.
func NewMock() *MockService {
	return &MockService{}
}

func (m *MockService) Standings(ctx context.Context) ([]Standing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StandingsCalls++
	if m.StandingsFunc != nil {
		return m.StandingsFunc(ctx)
	}
	return []Standing{}, nil
}

// Calls returns how many times Standings was invoked.
func (m *MockService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.StandingsCalls
}
