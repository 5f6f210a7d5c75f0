package notifier

import (
	"sync"

	"github.com/mauv0809/swiss-ladder/internal/match"
	"github.com/mauv0809/swiss-ladder/internal/pairing"
	"github.com/mauv0809/swiss-ladder/internal/standings"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendMatchResultCalls []match.Result
	SendStandingsCalls   [][]standings.Standing
	SendPairingsCalls    []pairing.Round
	DryRunCalls          []bool

	// Spies
	SendMatchResultFunc         func(result match.Result, dryRun bool) error
	SendStandingsFunc           func(rows []standings.Standing, dryRun bool) error
	SendPairingsFunc            func(round pairing.Round, dryRun bool) error
	FormatStandingsResponseFunc func(rows []standings.Standing) (any, error)
	FormatPairingsResponseFunc  func(round pairing.Round) (any, error)

	// Call records for format functions
	LastStandingsResponse any
	LastPairingsResponse  any
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = nil
	m.SendStandingsCalls = nil
	m.SendPairingsCalls = nil
	m.DryRunCalls = nil
	m.LastStandingsResponse = nil
	m.LastPairingsResponse = nil
}

func (m *Mock) SendMatchResult(result match.Result, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = append(m.SendMatchResultCalls, result)
	m.DryRunCalls = append(m.DryRunCalls, dryRun)
	if m.SendMatchResultFunc != nil {
		return m.SendMatchResultFunc(result, dryRun)
	}
	return nil
}

func (m *Mock) SendStandings(rows []standings.Standing, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, rows)
	m.DryRunCalls = append(m.DryRunCalls, dryRun)
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(rows, dryRun)
	}
	return nil
}

func (m *Mock) SendPairings(round pairing.Round, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPairingsCalls = append(m.SendPairingsCalls, round)
	m.DryRunCalls = append(m.DryRunCalls, dryRun)
	if m.SendPairingsFunc != nil {
		return m.SendPairingsFunc(round, dryRun)
	}
	return nil
}

func (m *Mock) FormatStandingsResponse(rows []standings.Standing) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var resp any = map[string]any{"standings": rows}
	var err error
	if m.FormatStandingsResponseFunc != nil {
		resp, err = m.FormatStandingsResponseFunc(rows)
	}
	m.LastStandingsResponse = resp
	return resp, err
}

func (m *Mock) FormatPairingsResponse(round pairing.Round) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var resp any = map[string]any{"pairings": round}
	var err error
	if m.FormatPairingsResponseFunc != nil {
		resp, err = m.FormatPairingsResponseFunc(round)
	}
	m.LastPairingsResponse = resp
	return resp, err
}
