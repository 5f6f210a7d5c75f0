package roster

import (
	"context"
	"sync"
)

// MockService is a mock implementation of the roster Service for testing.
// It is safe for concurrent use.
type MockService struct {
	mu sync.Mutex

	RegisterFunc func(ctx context.Context, name string) (Player, error)
	GetFunc      func(ctx context.Context, id int64) (Player, error)
	ListFunc     func(ctx context.Context) ([]Player, error)
	CountFunc    func(ctx context.Context) (int, error)
	ClearFunc    func(ctx context.Context) error

	RegisterCalls []string
	GetCalls      []int64
	ClearCalls    int
}

// NewMock creates a new mock instance.
func NewMock() *MockService {
	return &MockService{}
}

func (m *MockService) Register(ctx context.Context, name string) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RegisterCalls = append(m.RegisterCalls, name)
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name)
	}
	return Player{ID: int64(len(m.RegisterCalls)), Name: name}, nil
}

func (m *MockService) Get(ctx context.Context, id int64) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = append(m.GetCalls, id)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return Player{}, ErrPlayerNotFound
}

func (m *MockService) List(ctx context.Context) ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []Player{}, nil
}

func (m *MockService) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockService) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	return nil
}
