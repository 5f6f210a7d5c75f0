package match

import (
	"context"
	"sync"
	"time"
)

// RecordCall captures the arguments of a Record invocation.
type RecordCall struct {
	WinnerID int64
	LoserID  int64
}

// MockService is a mock implementation of the match Service for testing.
type MockService struct {
	mu sync.Mutex

	RecordFunc func(ctx context.Context, winnerID, loserID int64) (Result, error)
	ListFunc   func(ctx context.Context) ([]Match, error)
	ClearFunc  func(ctx context.Context) error

	RecordCalls []RecordCall
	ClearCalls  int
}

// NewMock creates a new mock instance.
func NewMock() *MockService {
	return &MockService{}
}

func (m *MockService) Record(ctx context.Context, winnerID, loserID int64) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordCalls = append(m.RecordCalls, RecordCall{WinnerID: winnerID, LoserID: loserID})
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, winnerID, loserID)
	}
	if winnerID == loserID {
		return Result{}, ErrSamePlayer
	}
	return Result{
		Match:  Match{ID: int64(len(m.RecordCalls)), WinnerID: winnerID, LoserID: loserID, RecordedAt: time.Now().UTC()},
		Winner: Record{PlayerID: winnerID, Wins: 1, Matches: 1},
		Loser:  Record{PlayerID: loserID, Matches: 1},
	}, nil
}

func (m *MockService) List(ctx context.Context) ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []Match{}, nil
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
