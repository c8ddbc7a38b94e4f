package notifier

import (
	"sync"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendRoundStartedCalls []string
	SendHoleResultCalls   []struct {
		RoundID string
		Result  *round.HoleResult
	}
	SendPressCalls []struct {
		RoundID string
		Team    string
		Outcome round.PressOutcome
	}
	SendFinalTallyCalls []struct {
		RoundID  string
		Snapshot round.Snapshot
	}

	FormatStandingsResponseCalls []string

	// Spies
	SendHoleResultFunc          func(roundID string, res *round.HoleResult, dryRun bool) error
	FormatStandingsResponseFunc func(roundID string, snap round.Snapshot) (any, error)
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendRoundStarted(roundID string, snap round.Snapshot, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRoundStartedCalls = append(m.SendRoundStartedCalls, roundID)
	return nil
}

func (m *Mock) SendHoleResult(roundID string, res *round.HoleResult, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendHoleResultCalls = append(m.SendHoleResultCalls, struct {
		RoundID string
		Result  *round.HoleResult
	}{roundID, res})
	if m.SendHoleResultFunc != nil {
		return m.SendHoleResultFunc(roundID, res, dryRun)
	}
	return nil
}

func (m *Mock) SendPress(roundID string, team string, out round.PressOutcome, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPressCalls = append(m.SendPressCalls, struct {
		RoundID string
		Team    string
		Outcome round.PressOutcome
	}{roundID, team, out})
	return nil
}

func (m *Mock) SendFinalTally(roundID string, snap round.Snapshot, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendFinalTallyCalls = append(m.SendFinalTallyCalls, struct {
		RoundID  string
		Snapshot round.Snapshot
	}{roundID, snap})
	return nil
}

func (m *Mock) FormatStandingsResponse(roundID string, snap round.Snapshot) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FormatStandingsResponseCalls = append(m.FormatStandingsResponseCalls, roundID)
	if m.FormatStandingsResponseFunc != nil {
		return m.FormatStandingsResponseFunc(roundID, snap)
	}
	return map[string]string{"text": roundID}, nil
}

// HoleResultCount returns the number of hole results sent.
func (m *Mock) HoleResultCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SendHoleResultCalls)
}
