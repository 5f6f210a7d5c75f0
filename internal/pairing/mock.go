package pairing

import (
	"context"
	"sync"
)

// MockService is a mock implementation of the pairing Service for testing.
type MockService struct {
	mu sync.Mutex

	PairingsFunc  func(ctx context.Context) (Round, error)
	PairingsCalls int
}

// NewMock creates a new mock instance.
func NewMock() *MockService {
	return &MockService{}
}

func (m *MockService) Pairings(ctx context.Context) (Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PairingsCalls++
	if m.PairingsFunc != nil {
		return m.PairingsFunc(ctx)
	}
	return Round{Pairings: []Pairing{}}, nil
}
